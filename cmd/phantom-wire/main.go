// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/phantom/lib/codec"
	"github.com/bureau-foundation/phantom/lib/version"
)

const binaryName = "phantom-wire"

func main() {
	if err := run(os.Args[1:], os.Stdout, stderrLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", binaryName, err)
		exitCode := 2
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			exitCode = coder.ExitCode()
		}
		os.Exit(exitCode)
	}
}

// mismatchError reports codecs whose wrapper and bare encodings differ.
type mismatchError struct {
	codecs []string
}

func (e *mismatchError) Error() string {
	return "wrapper encoding differs from bare value: " + strings.Join(e.codecs, ", ")
}

func (e *mismatchError) ExitCode() int { return 1 }

func run(args []string, stdout io.Writer, logger *slog.Logger) error {
	var (
		kind        string
		repr        string
		format      string
		showVersion bool
	)

	flagSet := pflag.NewFlagSet(binaryName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&kind, "kind", "amount", "wrapper variant: amount, instant or id")
	flagSet.StringVar(&repr, "repr", "int64", "representation: int8..int64, uint8..uint64, float32 or float64")
	flagSet.StringVar(&format, "format", "all", "comma-separated codecs ("+strings.Join(codec.Names(), ", ")+") or all")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}
	if showVersion {
		version.Print(stdout, binaryName)
		return nil
	}

	positional := flagSet.Args()
	if len(positional) != 1 {
		return fmt.Errorf("expected exactly one value, got %d", len(positional))
	}

	codecs, err := selectCodecs(format, kind)
	if err != nil {
		return err
	}

	result, err := inspect(request{kind: kind, repr: repr, raw: positional[0], codecs: codecs}, logger)
	if err != nil {
		return err
	}
	printInspection(stdout, result)

	if mismatched := result.Mismatched(); len(mismatched) > 0 {
		logger.Warn("wire mismatch", "kind", kind, "repr", repr, "codecs", mismatched)
		return &mismatchError{codecs: mismatched}
	}
	return nil
}

// selectCodecs resolves --format. "all" skips TOML for identifiers,
// which have no TOML form; naming it explicitly is an error later.
func selectCodecs(format, kind string) ([]codec.Codec, error) {
	if format == "all" {
		var codecs []codec.Codec
		for _, c := range codec.All() {
			if kind == "id" && c.Name() == "toml" {
				continue
			}
			codecs = append(codecs, c)
		}
		return codecs, nil
	}

	var codecs []codec.Codec
	for _, name := range strings.Split(format, ",") {
		c, err := codec.Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, c)
	}
	return codecs, nil
}

func printInspection(w io.Writer, result *inspection) {
	fmt.Fprintf(w, "%s %s %v\n", result.Kind, result.Repr, result.Value)
	for _, c := range result.Comparisons {
		status := "ok"
		if !c.Match() {
			status = "MISMATCH"
		}
		fmt.Fprintf(w, "%-8s %-8s wrapped=%x bare=%x\n", c.Codec, status, c.Wrapped, c.Bare)
	}
	fmt.Fprintf(w, "digest   %s\n", result.Digest)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Compare the encoding of a tagged wrapper with its bare value.

Usage: %s [flags] [--] <value>

Negative values follow "--" so they are not read as flags.

Flags:
%s`, binaryName, flagSet.FlagUsages())
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/bureau-foundation/phantom/lib/codec"
	"github.com/bureau-foundation/phantom/lib/phantom"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runCapture(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	err := run(args, &stdout, discardLogger())
	return stdout.String(), err
}

func TestRunAllCodecsMatch(t *testing.T) {
	cases := [][]string{
		{"1005"},
		{"--kind", "instant", "--repr", "uint32", "1700000000"},
		{"--kind", "id", "--repr", "uint16", "42"},
		{"--repr", "float64", "2.5"},
		{"--repr", "float32", "0.1"},
		{"--repr", "int8", "--", "-128"},
		{"--repr", "uint64", "0xffffffffffffffff"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			output, err := runCapture(t, args...)
			if err != nil {
				t.Fatalf("run: %v\n%s", err, output)
			}
			if strings.Contains(output, "MISMATCH") {
				t.Errorf("output reports a mismatch:\n%s", output)
			}
			if !strings.Contains(output, "digest   ") {
				t.Errorf("output has no digest line:\n%s", output)
			}
		})
	}
}

func TestRunListsEveryCodec(t *testing.T) {
	output, err := runCapture(t, "7")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range codec.Names() {
		if !strings.Contains(output, name+" ") {
			t.Errorf("output is missing codec %s:\n%s", name, output)
		}
	}
}

func TestRunIdentifierSkipsTOML(t *testing.T) {
	output, err := runCapture(t, "--kind", "id", "7")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(output, "toml") {
		t.Errorf("identifier output mentions toml:\n%s", output)
	}

	if _, err := runCapture(t, "--kind", "id", "--format", "toml", "7"); err == nil {
		t.Error("explicit --format toml for an identifier succeeded")
	}
}

func TestRunSelectedFormat(t *testing.T) {
	output, err := runCapture(t, "--format", "json", "--repr", "uint8", "200")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "json     ok       wrapped=323030 bare=323030\n"
	if !strings.Contains(output, want) {
		t.Errorf("output = %q, want line %q", output, want)
	}
	if strings.Contains(output, "cbor") {
		t.Errorf("unselected codec in output:\n%s", output)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"narrowing out of range", []string{"--repr", "uint8", "300"}, phantom.ErrOutOfRange},
		{"negative unsigned", []string{"--repr", "uint32", "--", "-1"}, nil},
		{"unknown codec", []string{"--format", "xml", "1"}, codec.ErrUnknownCodec},
		{"unknown repr", []string{"--repr", "complex64", "1"}, nil},
		{"unknown kind", []string{"--kind", "duration", "1"}, nil},
		{"no value", []string{"--repr", "int32"}, nil},
		{"two values", []string{"1", "2"}, nil},
		{"not a number", []string{"apples"}, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runCapture(t, test.args...)
			if err == nil {
				t.Fatal("run succeeded")
			}
			if test.is != nil && !errors.Is(err, test.is) {
				t.Errorf("error = %v, want %v", err, test.is)
			}
			var mismatch *mismatchError
			if errors.As(err, &mismatch) {
				t.Errorf("usage error reported as mismatch: %v", err)
			}
		})
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	output, err := runCapture(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(output, binaryName+" ") {
		t.Errorf("--version output = %q", output)
	}

	output, err = runCapture(t, "--help")
	if err != nil {
		t.Fatalf("--help: %v", err)
	}
	if !strings.Contains(output, "--format") {
		t.Errorf("help does not list flags:\n%s", output)
	}
}

func TestInspectionMismatched(t *testing.T) {
	result := &inspection{
		Comparisons: []comparison{
			{Codec: "cbor", Wrapped: []byte{1}, Bare: []byte{1}},
			{Codec: "json", Wrapped: []byte("1"), Bare: []byte("2")},
		},
		Digest:     codec.SumBytes([]byte{1}),
		BareDigest: codec.SumBytes([]byte{2}),
	}
	got := result.Mismatched()
	if len(got) != 2 || got[0] != "json" || got[1] != "digest" {
		t.Errorf("Mismatched() = %v, want [json digest]", got)
	}

	err := &mismatchError{codecs: got}
	if err.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", err.ExitCode())
	}
	if !strings.Contains(err.Error(), "json, digest") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var output bytes.Buffer
	logger := newLogger(&output, false, true)
	logger.Debug("encoded", "value", phantom.NewAmount[wire](uint64(9)))
	if !strings.Contains(output.String(), `"value":9`) {
		t.Errorf("JSON log line = %q, want the bare value", output.String())
	}

	output.Reset()
	newLogger(&output, false, false).Debug("hidden")
	if output.Len() != 0 {
		t.Errorf("debug record written without debug enabled: %q", output.String())
	}
}

func TestNewLoggerTerminal(t *testing.T) {
	var output bytes.Buffer
	newLogger(&output, true, false).Warn("wire mismatch", "codec", "json")
	if !strings.Contains(output.String(), "wire mismatch") {
		t.Errorf("tint output = %q", output.String())
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bureau-foundation/phantom/lib/codec"
	"github.com/bureau-foundation/phantom/lib/phantom"
)

// wire is the tag every inspected wrapper carries.
type wire struct{}

// comparison is the outcome of encoding one value with one codec.
type comparison struct {
	Codec   string
	Wrapped []byte
	Bare    []byte
}

// Match reports whether the wrapper and bare encodings are identical.
func (c comparison) Match() bool { return bytes.Equal(c.Wrapped, c.Bare) }

// inspection collects every comparison for one value.
type inspection struct {
	Kind        string
	Repr        string
	Value       any
	Comparisons []comparison
	Digest      codec.Digest
	BareDigest  codec.Digest
}

// Mismatched returns the names of the codecs whose encodings differ,
// including the digest when the CBOR hashes disagree.
func (i *inspection) Mismatched() []string {
	var names []string
	for _, c := range i.Comparisons {
		if !c.Match() {
			names = append(names, c.Codec)
		}
	}
	if i.Digest != i.BareDigest {
		names = append(names, "digest")
	}
	return names
}

// request is a parsed command line.
type request struct {
	kind   string
	repr   string
	raw    string
	codecs []codec.Codec
}

type inspector func(request, *slog.Logger) (*inspection, error)

// representations maps --repr names to their parsers.
var representations = map[string]inspector{
	"int":     inspectSigned[int],
	"int8":    inspectSigned[int8],
	"int16":   inspectSigned[int16],
	"int32":   inspectSigned[int32],
	"int64":   inspectSigned[int64],
	"uint":    inspectUnsigned[uint],
	"uint8":   inspectUnsigned[uint8],
	"uint16":  inspectUnsigned[uint16],
	"uint32":  inspectUnsigned[uint32],
	"uint64":  inspectUnsigned[uint64],
	"float32": inspectFloat[float32],
	"float64": inspectFloat[float64],
}

func inspect(req request, logger *slog.Logger) (*inspection, error) {
	parse, ok := representations[req.repr]
	if !ok {
		return nil, fmt.Errorf("unknown representation %q", req.repr)
	}
	return parse(req, logger)
}

// The parsers read the widest type of their family and narrow through
// the checked conversions, so "300" as uint8 fails instead of wrapping.

func inspectSigned[R phantom.Signed](req request, logger *slog.Logger) (*inspection, error) {
	parsed, err := strconv.ParseInt(req.raw, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", req.raw, err)
	}
	narrowed, err := phantom.ConvertAmount[R](phantom.NewAmount[wire](parsed))
	if err != nil {
		return nil, err
	}
	return inspectValue(req, narrowed.Get(), logger)
}

func inspectUnsigned[R phantom.Unsigned](req request, logger *slog.Logger) (*inspection, error) {
	parsed, err := strconv.ParseUint(req.raw, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", req.raw, err)
	}
	narrowed, err := phantom.ConvertAmount[R](phantom.NewAmount[wire](parsed))
	if err != nil {
		return nil, err
	}
	return inspectValue(req, narrowed.Get(), logger)
}

func inspectFloat[R phantom.Float](req request, logger *slog.Logger) (*inspection, error) {
	bits := 64
	var zero R
	if _, ok := any(zero).(float32); ok {
		bits = 32
	}
	parsed, err := strconv.ParseFloat(req.raw, bits)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", req.raw, err)
	}
	narrowed, err := phantom.ConvertAmountNumber[R](phantom.NewAmount[wire](parsed))
	if err != nil {
		return nil, err
	}
	return inspectValue(req, narrowed.Get(), logger)
}

func inspectValue[R phantom.Number](req request, value R, logger *slog.Logger) (*inspection, error) {
	switch req.kind {
	case "amount":
		return inspectWrapper(req, phantom.NewAmount[wire](value), value, logger)
	case "instant":
		return inspectWrapper(req, phantom.NewInstant[wire](value), value, logger)
	case "id":
		for _, c := range req.codecs {
			if c.Name() == "toml" {
				return nil, fmt.Errorf("identifiers have no TOML encoding; choose another --format")
			}
		}
		return inspectWrapper(req, phantom.NewID[wire](value), value, logger)
	default:
		return nil, fmt.Errorf("unknown kind %q (want amount, instant or id)", req.kind)
	}
}

func inspectWrapper[W, R any](req request, wrapped W, bare R, logger *slog.Logger) (*inspection, error) {
	result := &inspection{
		Kind:  req.kind,
		Repr:  fmt.Sprintf("%T", bare),
		Value: bare,
	}
	logger.Debug("inspecting", "kind", req.kind, "repr", result.Repr, "value", wrapped)

	for _, c := range req.codecs {
		wrappedBytes, err := encode(c, wrapped)
		if err != nil {
			return nil, fmt.Errorf("%s: encoding wrapper: %w", c.Name(), err)
		}
		bareBytes, err := encode(c, bare)
		if err != nil {
			return nil, fmt.Errorf("%s: encoding bare value: %w", c.Name(), err)
		}
		logger.Debug("encoded", "codec", c.Name(),
			"wrapped_bytes", len(wrappedBytes), "bare_bytes", len(bareBytes))
		result.Comparisons = append(result.Comparisons, comparison{
			Codec:   c.Name(),
			Wrapped: wrappedBytes,
			Bare:    bareBytes,
		})
	}

	var err error
	if result.Digest, err = codec.Sum(wrapped); err != nil {
		return nil, err
	}
	if result.BareDigest, err = codec.Sum(bare); err != nil {
		return nil, err
	}
	return result, nil
}

// document is the top-level table TOML needs around a scalar.
type document[V any] struct {
	Value V `toml:"value"`
}

func encode[V any](c codec.Codec, value V) ([]byte, error) {
	if c.Name() == "toml" {
		return c.Marshal(document[V]{Value: value})
	}
	return c.Marshal(value)
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"fmt"

	"github.com/bureau-foundation/phantom/lib/codec"
)

// T is the subset of testing.TB the helpers use.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

// document is the top-level table for codecs without bare scalars.
type document[V any] struct {
	Value V `toml:"value"`
}

func needsDocument(c codec.Codec) bool { return c.Name() == "toml" }

// RequireSameWire encodes wrapped and bare with c and fails the test
// unless the bytes are identical. Returns the encoding.
//
//	testutil.RequireSameWire(t, codec.JSON(), apples, apples.Get())
func RequireSameWire[W, R any](t T, c codec.Codec, wrapped W, bare R, msgAndArgs ...any) []byte {
	t.Helper()
	wrappedBytes := mustMarshal(t, c, wrapped, msgAndArgs)
	bareBytes := mustMarshal(t, c, bare, msgAndArgs)
	if !bytes.Equal(wrappedBytes, bareBytes) {
		t.Fatalf("%s: wrapper encodes as %q, bare value as %q: %s",
			c.Name(), wrappedBytes, bareBytes, formatMessage(msgAndArgs))
	}
	return wrappedBytes
}

// RequireRoundTrip encodes value with c, decodes it into a fresh V
// and fails the test unless the result equals value.
func RequireRoundTrip[V comparable](t T, c codec.Codec, value V, msgAndArgs ...any) V {
	t.Helper()
	data := mustMarshal(t, c, value, msgAndArgs)

	var decoded V
	if needsDocument(c) {
		var wrapper document[V]
		if err := c.Unmarshal(data, &wrapper); err != nil {
			t.Fatalf("%s: Unmarshal(%q): %v: %s", c.Name(), data, err, formatMessage(msgAndArgs))
		}
		decoded = wrapper.Value
	} else if err := c.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("%s: Unmarshal(%q): %v: %s", c.Name(), data, err, formatMessage(msgAndArgs))
	}

	if decoded != value {
		t.Fatalf("%s: round trip of %v produced %v: %s", c.Name(), value, decoded, formatMessage(msgAndArgs))
	}
	return decoded
}

func mustMarshal[V any](t T, c codec.Codec, value V, msgAndArgs []any) []byte {
	t.Helper()
	var (
		data []byte
		err  error
	)
	if needsDocument(c) {
		data, err = c.Marshal(document[V]{Value: value})
	} else {
		data, err = c.Marshal(value)
	}
	if err != nil {
		t.Fatalf("%s: Marshal(%v): %v: %s", c.Name(), value, err, formatMessage(msgAndArgs))
	}
	return data
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}

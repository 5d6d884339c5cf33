// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bureau-foundation/phantom/lib/codec"
)

// recorder captures Fatalf calls. Fatalf panics to stop the helper the
// way runtime.Goexit stops a real test.
type recorder struct {
	failed  bool
	message string
}

type fatal struct{}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
	panic(fatal{})
}

func run(r *recorder, body func()) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if _, ok := recovered.(fatal); !ok {
				panic(recovered)
			}
		}
	}()
	body()
}

// celsius encodes differently from its underlying float.
type celsius float64

func (c celsius) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%gC"`, float64(c))), nil
}

func TestRequireSameWirePasses(t *testing.T) {
	for _, c := range codec.All() {
		data := RequireSameWire(t, c, int64(42), int64(42))
		if len(data) == 0 {
			t.Errorf("%s: empty encoding", c.Name())
		}
	}
}

func TestRequireSameWireFails(t *testing.T) {
	r := &recorder{}
	run(r, func() {
		RequireSameWire(r, codec.JSON(), celsius(21), float64(21), "temperature")
	})
	if !r.failed {
		t.Fatal("RequireSameWire accepted different encodings")
	}
	if !strings.Contains(r.message, "temperature") {
		t.Errorf("failure message %q does not include caller message", r.message)
	}
}

func TestRequireRoundTrip(t *testing.T) {
	for _, c := range codec.All() {
		if got := RequireRoundTrip(t, c, uint32(7)); got != 7 {
			t.Errorf("%s: RequireRoundTrip returned %d", c.Name(), got)
		}
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		args []any
		want string
	}{
		{nil, "(no message)"},
		{[]any{"plain"}, "plain"},
		{[]any{"value %d", 3}, "value 3"},
		{[]any{42}, "42"},
	}
	for _, test := range tests {
		if got := formatMessage(test.args); got != test.want {
			t.Errorf("formatMessage(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}

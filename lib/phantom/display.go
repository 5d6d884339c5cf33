// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"fmt"
	"io"
	"strings"

	"github.com/bureau-foundation/phantom/lib/traitflag"
)

// DisplayerOf is implemented by a tag type that knows how to render
// wrappers of type W. The tag is a stateless formatter: Render is
// called on its zero value.
//
//	type Cents struct{}
//	type Money = phantom.Amount[Cents, uint64]
//
//	func (Cents) Render(m *Money, out io.Writer) error {
//		_, err := fmt.Fprintf(out, "$%d.%02d", m.Get()/100, m.Get()%100)
//		return err
//	}
//
// Wrappers never require their tag to implement DisplayerOf. Only the
// proxy constructors do.
type DisplayerOf[W any] interface {
	Render(w *W, out io.Writer) error
}

// DisplayProxy borrows a wrapper and formats it through tag D.
// Construct one per formatting call and discard it.
type DisplayProxy[W any, D DisplayerOf[W]] struct {
	w *W
}

// NewDisplayProxy returns a proxy rendering w through D. W is inferred
// from the argument: NewDisplayProxy[Cents](&money).
func NewDisplayProxy[D DisplayerOf[W], W any](w *W) DisplayProxy[W, D] {
	return DisplayProxy[W, D]{w: w}
}

// DisplayAmount returns a proxy rendering a through its tag.
func DisplayAmount[F traitflag.Flags, U DisplayerOf[AmountForFlags[F, U, R]], R Number](a *AmountForFlags[F, U, R]) DisplayProxy[AmountForFlags[F, U, R], U] {
	return DisplayProxy[AmountForFlags[F, U, R], U]{w: a}
}

// DisplayID returns a proxy rendering id through its tag.
func DisplayID[F traitflag.Flags, U DisplayerOf[IDForFlags[F, U, R]], R comparable](id *IDForFlags[F, U, R]) DisplayProxy[IDForFlags[F, U, R], U] {
	return DisplayProxy[IDForFlags[F, U, R], U]{w: id}
}

// DisplayInstant returns a proxy rendering t through its tag.
func DisplayInstant[F traitflag.Flags, U DisplayerOf[InstantForFlags[F, U, R]], R Number](t *InstantForFlags[F, U, R]) DisplayProxy[InstantForFlags[F, U, R], U] {
	return DisplayProxy[InstantForFlags[F, U, R], U]{w: t}
}

// Render writes the tag's rendering of the wrapper to out.
func (p DisplayProxy[W, D]) Render(out io.Writer) error {
	var displayer D
	return displayer.Render(p.w, out)
}

// String returns the rendering. A render error is reported inline the
// way fmt reports a panicking String method.
func (p DisplayProxy[W, D]) String() string {
	var builder strings.Builder
	if err := p.Render(&builder); err != nil {
		return "%!v(DISPLAY ERROR: " + err.Error() + ")"
	}
	return builder.String()
}

// Format formats the rendering as a string, honoring width, precision
// and flags: %8v right-aligns it, %q quotes it.
func (p DisplayProxy[W, D]) Format(state fmt.State, verb rune) {
	formatRepr(state, verb, p.String())
}

// formatRepr re-applies the caller's verb and flags to repr.
func formatRepr(state fmt.State, verb rune, repr any) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), repr)
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"log/slog"

	"github.com/bureau-foundation/phantom/lib/traitflag"
)

// AmountForFlags is a quantity of unit U stored as R. Two amounts
// combine only when F, U and R all match.
//
// Amounts add and subtract with each other, scale by a bare R, and
// divide by each other into a bare R ratio. Multiplying two amounts is
// not defined: the product would be a different unit.
//
// The zero-length F array occupies no space, so an amount has exactly
// the size and alignment of R.
type AmountForFlags[F traitflag.Flags, U any, R Number] struct {
	_    [0]F
	repr R
}

// NewAmountForFlags wraps r.
func NewAmountForFlags[F traitflag.Flags, U any, R Number](r R) AmountForFlags[F, U, R] {
	return AmountForFlags[F, U, R]{repr: r}
}

// DefaultAmountForFlags returns the amount holding R's zero value. It
// only instantiates for flags with a default.
func DefaultAmountForFlags[F traitflag.Defaultable, U any, R Number]() AmountForFlags[F, U, R] {
	return AmountForFlags[F, U, R]{}
}

// Get returns the wrapped value.
func (a AmountForFlags[F, U, R]) Get() R { return a.repr }

// Unit returns the zero value of the tag type.
func (a AmountForFlags[F, U, R]) Unit() U {
	var unit U
	return unit
}

// Clone returns a copy of a. It is the way to duplicate a wrapper
// whose flag forbids implicit copies.
func (a *AmountForFlags[F, U, R]) Clone() AmountForFlags[F, U, R] {
	return AmountForFlags[F, U, R]{repr: a.repr}
}

// IsZero reports whether a holds R's zero value.
func (a AmountForFlags[F, U, R]) IsZero() bool { return a.repr == 0 }

// Equal reports whether a and b hold equal values.
func (a AmountForFlags[F, U, R]) Equal(b AmountForFlags[F, U, R]) bool { return a.repr == b.repr }

// Compare returns -1, 0 or +1 like [cmp.Compare] on the wrapped values.
func (a AmountForFlags[F, U, R]) Compare(b AmountForFlags[F, U, R]) int {
	return cmp.Compare(a.repr, b.repr)
}

// Less reports whether a orders before b, like [cmp.Less].
func (a AmountForFlags[F, U, R]) Less(b AmountForFlags[F, U, R]) bool { return cmp.Less(a.repr, b.repr) }

// Hash returns the same hash as maphash.Comparable of the wrapped
// value under seed.
func (a AmountForFlags[F, U, R]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, a.repr)
}

// Add returns the sum a + b.
func (a AmountForFlags[F, U, R]) Add(b AmountForFlags[F, U, R]) AmountForFlags[F, U, R] {
	return AmountForFlags[F, U, R]{repr: a.repr + b.repr}
}

// Sub returns the difference a - b.
func (a AmountForFlags[F, U, R]) Sub(b AmountForFlags[F, U, R]) AmountForFlags[F, U, R] {
	return AmountForFlags[F, U, R]{repr: a.repr - b.repr}
}

// Mul scales a by the bare factor k.
func (a AmountForFlags[F, U, R]) Mul(k R) AmountForFlags[F, U, R] {
	return AmountForFlags[F, U, R]{repr: a.repr * k}
}

// DivScalar divides a by the bare divisor k. Integer division by zero
// panics as it does for R.
func (a AmountForFlags[F, U, R]) DivScalar(k R) AmountForFlags[F, U, R] {
	return AmountForFlags[F, U, R]{repr: a.repr / k}
}

// Div returns the dimensionless ratio a / b.
func (a AmountForFlags[F, U, R]) Div(b AmountForFlags[F, U, R]) R { return a.repr / b.repr }

// AddAssign adds b to a in place.
func (a *AmountForFlags[F, U, R]) AddAssign(b AmountForFlags[F, U, R]) { a.repr += b.repr }

// SubAssign subtracts b from a in place.
func (a *AmountForFlags[F, U, R]) SubAssign(b AmountForFlags[F, U, R]) { a.repr -= b.repr }

// MulAssign scales a by the bare factor k in place.
func (a *AmountForFlags[F, U, R]) MulAssign(k R) { a.repr *= k }

// DivAssign divides a by the bare divisor k in place.
func (a *AmountForFlags[F, U, R]) DivAssign(k R) { a.repr /= k }

// String formats the wrapped value with %v.
func (a AmountForFlags[F, U, R]) String() string { return fmt.Sprint(a.repr) }

// Format applies the verb, flags, width and precision to the wrapped
// value, so %5.2f on an amount prints what it prints on R.
func (a AmountForFlags[F, U, R]) Format(state fmt.State, verb rune) {
	formatRepr(state, verb, a.repr)
}

// LogValue logs the amount as its bare value.
func (a AmountForFlags[F, U, R]) LogValue() slog.Value { return slog.AnyValue(a.repr) }

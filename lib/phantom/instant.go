// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"log/slog"
	"time"

	"github.com/bureau-foundation/phantom/lib/clock"
	"github.com/bureau-foundation/phantom/lib/traitflag"
)

// InstantForFlags is a point on the U axis stored as R. The distance
// between two instants is an [AmountForFlags] of the same unit, and
// an instant moves by adding or subtracting such an amount. Two
// instants never add.
type InstantForFlags[F traitflag.Flags, U any, R Number] struct {
	_    [0]F
	repr R
}

// NewInstantForFlags wraps r.
func NewInstantForFlags[F traitflag.Flags, U any, R Number](r R) InstantForFlags[F, U, R] {
	return InstantForFlags[F, U, R]{repr: r}
}

// DefaultInstantForFlags returns the instant holding R's zero value.
// It only instantiates for flags with a default.
func DefaultInstantForFlags[F traitflag.Defaultable, U any, R Number]() InstantForFlags[F, U, R] {
	return InstantForFlags[F, U, R]{}
}

// InstantAt returns t as nanoseconds since the Unix epoch.
func InstantAt[F traitflag.Flags, U any](t time.Time) InstantForFlags[F, U, int64] {
	return InstantForFlags[F, U, int64]{repr: t.UnixNano()}
}

// NowInstant reads c and returns the current time as nanoseconds since
// the Unix epoch.
func NowInstant[F traitflag.Flags, U any](c clock.Clock) InstantForFlags[F, U, int64] {
	return InstantAt[F, U](c.Now())
}

// Since returns the nanoseconds elapsed on c since start.
func Since[F traitflag.Flags, U any](c clock.Clock, start InstantForFlags[F, U, int64]) AmountForFlags[F, U, int64] {
	now := NowInstant[F, U](c)
	return now.Sub(start)
}

// Get returns the wrapped value.
func (t InstantForFlags[F, U, R]) Get() R { return t.repr }

// Clone returns a copy of t.
func (t *InstantForFlags[F, U, R]) Clone() InstantForFlags[F, U, R] {
	return InstantForFlags[F, U, R]{repr: t.repr}
}

// IsZero reports whether t holds R's zero value.
func (t InstantForFlags[F, U, R]) IsZero() bool { return t.repr == 0 }

// Equal reports whether t and u hold equal values.
func (t InstantForFlags[F, U, R]) Equal(u InstantForFlags[F, U, R]) bool { return t.repr == u.repr }

// Compare returns -1, 0 or +1 like [cmp.Compare] on the wrapped values.
func (t InstantForFlags[F, U, R]) Compare(u InstantForFlags[F, U, R]) int {
	return cmp.Compare(t.repr, u.repr)
}

// Less reports whether t orders before u, like [cmp.Less].
func (t InstantForFlags[F, U, R]) Less(u InstantForFlags[F, U, R]) bool { return cmp.Less(t.repr, u.repr) }

// Before reports whether t is strictly earlier than u.
func (t InstantForFlags[F, U, R]) Before(u InstantForFlags[F, U, R]) bool { return t.repr < u.repr }

// After reports whether t is strictly later than u.
func (t InstantForFlags[F, U, R]) After(u InstantForFlags[F, U, R]) bool { return t.repr > u.repr }

// Hash returns the same hash as maphash.Comparable of the wrapped
// value under seed.
func (t InstantForFlags[F, U, R]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, t.repr)
}

// Sub returns the amount t - u.
func (t InstantForFlags[F, U, R]) Sub(u InstantForFlags[F, U, R]) AmountForFlags[F, U, R] {
	return AmountForFlags[F, U, R]{repr: t.repr - u.repr}
}

// Add returns the instant d after t.
func (t InstantForFlags[F, U, R]) Add(d AmountForFlags[F, U, R]) InstantForFlags[F, U, R] {
	return InstantForFlags[F, U, R]{repr: t.repr + d.repr}
}

// SubAmount returns the instant d before t.
func (t InstantForFlags[F, U, R]) SubAmount(d AmountForFlags[F, U, R]) InstantForFlags[F, U, R] {
	return InstantForFlags[F, U, R]{repr: t.repr - d.repr}
}

// AddAssign moves t forward by d in place.
func (t *InstantForFlags[F, U, R]) AddAssign(d AmountForFlags[F, U, R]) { t.repr += d.repr }

// SubAssign moves t back by d in place.
func (t *InstantForFlags[F, U, R]) SubAssign(d AmountForFlags[F, U, R]) { t.repr -= d.repr }

// String formats the wrapped value with %v.
func (t InstantForFlags[F, U, R]) String() string { return fmt.Sprint(t.repr) }

// Format applies the verb, flags, width and precision to the wrapped
// value.
func (t InstantForFlags[F, U, R]) Format(state fmt.State, verb rune) {
	formatRepr(state, verb, t.repr)
}

// LogValue logs the instant as its bare value.
func (t InstantForFlags[F, U, R]) LogValue() slog.Value { return slog.AnyValue(t.repr) }

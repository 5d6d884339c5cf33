// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bureau-foundation/phantom/lib/traitflag"
)

// IDForFlags is an identifier in namespace U stored as R. Identifiers
// compare, hash and order but never add, subtract or scale: an
// identifier is not a quantity.
type IDForFlags[F traitflag.Flags, U any, R comparable] struct {
	_    [0]F
	repr R
}

// NewIDForFlags wraps r.
func NewIDForFlags[F traitflag.Flags, U any, R comparable](r R) IDForFlags[F, U, R] {
	return IDForFlags[F, U, R]{repr: r}
}

// DefaultIDForFlags returns the identifier holding R's zero value. It
// only instantiates for flags with a default.
func DefaultIDForFlags[F traitflag.Defaultable, U any, R comparable]() IDForFlags[F, U, R] {
	return IDForFlags[F, U, R]{}
}

// NewUUIDv7 returns a fresh time-ordered UUID identifier.
func NewUUIDv7[F traitflag.Flags, U any]() (IDForFlags[F, U, uuid.UUID], error) {
	value, err := uuid.NewV7()
	if err != nil {
		return IDForFlags[F, U, uuid.UUID]{}, fmt.Errorf("generating UUIDv7: %w", err)
	}
	return IDForFlags[F, U, uuid.UUID]{repr: value}, nil
}

// CompareIDs orders identifiers by their wrapped values.
func CompareIDs[F traitflag.Flags, U any, R cmp.Ordered](a, b IDForFlags[F, U, R]) int {
	return cmp.Compare(a.repr, b.repr)
}

// NextID returns the identifier after id. It wraps on overflow exactly
// as R does.
func NextID[F traitflag.Flags, U any, R Integer](id IDForFlags[F, U, R]) IDForFlags[F, U, R] {
	return IDForFlags[F, U, R]{repr: id.repr + 1}
}

// Get returns the wrapped value.
func (id IDForFlags[F, U, R]) Get() R { return id.repr }

// Clone returns a copy of id.
func (id *IDForFlags[F, U, R]) Clone() IDForFlags[F, U, R] {
	return IDForFlags[F, U, R]{repr: id.repr}
}

// IsZero reports whether id holds R's zero value.
func (id IDForFlags[F, U, R]) IsZero() bool {
	var zero R
	return id.repr == zero
}

// Equal reports whether id and other hold equal values.
func (id IDForFlags[F, U, R]) Equal(other IDForFlags[F, U, R]) bool { return id.repr == other.repr }

// Hash returns the same hash as maphash.Comparable of the wrapped
// value under seed.
func (id IDForFlags[F, U, R]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, id.repr)
}

// String formats the wrapped value with %v.
func (id IDForFlags[F, U, R]) String() string { return fmt.Sprint(id.repr) }

// Format applies the verb, flags, width and precision to the wrapped
// value.
func (id IDForFlags[F, U, R]) Format(state fmt.State, verb rune) {
	formatRepr(state, verb, id.repr)
}

// LogValue logs the identifier as its bare value.
func (id IDForFlags[F, U, R]) LogValue() slog.Value { return slog.AnyValue(id.repr) }

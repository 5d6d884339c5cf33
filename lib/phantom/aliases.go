// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"github.com/google/uuid"

	"github.com/bureau-foundation/phantom/lib/traitflag"
)

// Short names fix the flag. The copyable, defaultable combination gets
// the bare name; the other three carry a suffix. The long names spell
// out both capabilities.

// Amount aliases, one per flag.
type (
	Amount[U any, R Number]                = AmountForFlags[traitflag.IsCopyIsDefault, U, R]
	AmountNoCopy[U any, R Number]          = AmountForFlags[traitflag.NoCopyIsDefault, U, R]
	AmountNoDefault[U any, R Number]       = AmountForFlags[traitflag.IsCopyNoDefault, U, R]
	AmountNoCopyNoDefault[U any, R Number] = AmountForFlags[traitflag.NoCopyNoDefault, U, R]

	AmountIsCopyIsDefault[U any, R Number] = AmountForFlags[traitflag.IsCopyIsDefault, U, R]
	AmountIsCopyNoDefault[U any, R Number] = AmountForFlags[traitflag.IsCopyNoDefault, U, R]
	AmountNoCopyIsDefault[U any, R Number] = AmountForFlags[traitflag.NoCopyIsDefault, U, R]
)

// Identifier aliases, one per flag.
type (
	ID[U any, R comparable]                = IDForFlags[traitflag.IsCopyIsDefault, U, R]
	IDNoCopy[U any, R comparable]          = IDForFlags[traitflag.NoCopyIsDefault, U, R]
	IDNoDefault[U any, R comparable]       = IDForFlags[traitflag.IsCopyNoDefault, U, R]
	IDNoCopyNoDefault[U any, R comparable] = IDForFlags[traitflag.NoCopyNoDefault, U, R]

	IDIsCopyIsDefault[U any, R comparable] = IDForFlags[traitflag.IsCopyIsDefault, U, R]
	IDIsCopyNoDefault[U any, R comparable] = IDForFlags[traitflag.IsCopyNoDefault, U, R]
	IDNoCopyIsDefault[U any, R comparable] = IDForFlags[traitflag.NoCopyIsDefault, U, R]
)

// Instant aliases, one per flag.
type (
	Instant[U any, R Number]                = InstantForFlags[traitflag.IsCopyIsDefault, U, R]
	InstantNoCopy[U any, R Number]          = InstantForFlags[traitflag.NoCopyIsDefault, U, R]
	InstantNoDefault[U any, R Number]       = InstantForFlags[traitflag.IsCopyNoDefault, U, R]
	InstantNoCopyNoDefault[U any, R Number] = InstantForFlags[traitflag.NoCopyNoDefault, U, R]

	InstantIsCopyIsDefault[U any, R Number] = InstantForFlags[traitflag.IsCopyIsDefault, U, R]
	InstantIsCopyNoDefault[U any, R Number] = InstantForFlags[traitflag.IsCopyNoDefault, U, R]
	InstantNoCopyIsDefault[U any, R Number] = InstantForFlags[traitflag.NoCopyIsDefault, U, R]
)

// NewAmount wraps r: NewAmount[Apples](uint64(3)).
func NewAmount[U any, R Number](r R) Amount[U, R] {
	return Amount[U, R]{repr: r}
}

// NewAmountNoCopy wraps r in an amount that copies only through Clone.
func NewAmountNoCopy[U any, R Number](r R) AmountNoCopy[U, R] {
	return AmountNoCopy[U, R]{repr: r}
}

// NewAmountNoDefault wraps r in a copyable amount without a default constructor.
func NewAmountNoDefault[U any, R Number](r R) AmountNoDefault[U, R] {
	return AmountNoDefault[U, R]{repr: r}
}

// NewAmountNoCopyNoDefault wraps r in an amount with neither capability.
func NewAmountNoCopyNoDefault[U any, R Number](r R) AmountNoCopyNoDefault[U, R] {
	return AmountNoCopyNoDefault[U, R]{repr: r}
}

// DefaultAmount returns the zero amount. There is no default
// constructor for the NoDefault flags.
func DefaultAmount[U any, R Number]() Amount[U, R] {
	return DefaultAmountForFlags[traitflag.IsCopyIsDefault, U, R]()
}

// DefaultAmountNoCopy returns the zero no-copy amount.
func DefaultAmountNoCopy[U any, R Number]() AmountNoCopy[U, R] {
	return DefaultAmountForFlags[traitflag.NoCopyIsDefault, U, R]()
}

// NewID wraps r: NewID[Users](int64(7)).
func NewID[U any, R comparable](r R) ID[U, R] {
	return ID[U, R]{repr: r}
}

// NewIDNoCopy wraps r in an identifier that copies only through Clone.
func NewIDNoCopy[U any, R comparable](r R) IDNoCopy[U, R] {
	return IDNoCopy[U, R]{repr: r}
}

// NewIDNoDefault wraps r in a copyable identifier without a default constructor.
func NewIDNoDefault[U any, R comparable](r R) IDNoDefault[U, R] {
	return IDNoDefault[U, R]{repr: r}
}

// NewIDNoCopyNoDefault wraps r in an identifier with neither capability.
func NewIDNoCopyNoDefault[U any, R comparable](r R) IDNoCopyNoDefault[U, R] {
	return IDNoCopyNoDefault[U, R]{repr: r}
}

// DefaultID returns the zero identifier.
func DefaultID[U any, R comparable]() ID[U, R] {
	return DefaultIDForFlags[traitflag.IsCopyIsDefault, U, R]()
}

// DefaultIDNoCopy returns the zero no-copy identifier.
func DefaultIDNoCopy[U any, R comparable]() IDNoCopy[U, R] {
	return DefaultIDForFlags[traitflag.NoCopyIsDefault, U, R]()
}

// NewUUID returns a fresh time-ordered UUID identifier in namespace U.
func NewUUID[U any]() (ID[U, uuid.UUID], error) {
	return NewUUIDv7[traitflag.IsCopyIsDefault, U]()
}

// NewInstant wraps r: NewInstant[Ticks](uint64(10)).
func NewInstant[U any, R Number](r R) Instant[U, R] {
	return Instant[U, R]{repr: r}
}

// NewInstantNoCopy wraps r in an instant that copies only through Clone.
func NewInstantNoCopy[U any, R Number](r R) InstantNoCopy[U, R] {
	return InstantNoCopy[U, R]{repr: r}
}

// NewInstantNoDefault wraps r in a copyable instant without a default constructor.
func NewInstantNoDefault[U any, R Number](r R) InstantNoDefault[U, R] {
	return InstantNoDefault[U, R]{repr: r}
}

// NewInstantNoCopyNoDefault wraps r in an instant with neither capability.
func NewInstantNoCopyNoDefault[U any, R Number](r R) InstantNoCopyNoDefault[U, R] {
	return InstantNoCopyNoDefault[U, R]{repr: r}
}

// DefaultInstant returns the zero instant.
func DefaultInstant[U any, R Number]() Instant[U, R] {
	return DefaultInstantForFlags[traitflag.IsCopyIsDefault, U, R]()
}

// DefaultInstantNoCopy returns the zero no-copy instant.
func DefaultInstantNoCopy[U any, R Number]() InstantNoCopy[U, R] {
	return DefaultInstantForFlags[traitflag.NoCopyIsDefault, U, R]()
}

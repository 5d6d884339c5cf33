// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

// Signed is satisfied by the signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by the unsigned integer kinds, excluding
// uintptr.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is satisfied by every signed and unsigned integer kind.
type Integer interface {
	Signed | Unsigned
}

// Float is satisfied by the floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Number is the representation constraint for amounts and instants:
// every kind that supports +, -, *, / and ordering.
type Number interface {
	Integer | Float
}

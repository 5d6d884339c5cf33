// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package phantom provides zero-cost tagged wrappers that keep values
// of the same representation but different meaning from mixing.
//
// A tag is any otherwise unused type. It is a type parameter of the
// wrapper and never stored:
//
//	type Apples struct{}
//	type Oranges struct{}
//
//	apples := phantom.NewAmount[Apples](uint64(3))
//	oranges := phantom.NewAmount[Oranges](uint64(3))
//	apples.Add(oranges) // compile error: mismatched tags
//
// Three variants cover the common shapes of tagged data:
//
//   - [AmountForFlags]: a quantity. Adds and subtracts with amounts of
//     the same tag, scales by a bare value, and divides by another
//     amount into a bare ratio.
//   - [IDForFlags]: an identifier. Equality, hashing, ordering and
//     increment; no arithmetic.
//   - [InstantForFlags]: a point on an axis. Two instants subtract into
//     an amount; an instant plus an amount is an instant.
//
// Each wrapper has exactly the size of its representation and compiles
// to the same operations on it.
//
// # Capability flags
//
// The first type parameter is a flag from package traitflag choosing
// whether the wrapper copies implicitly and whether it has a default
// constructor. The short names fix the flag: [Amount] is copyable with
// a default, [AmountNoCopy], [AmountNoDefault] and
// [AmountNoCopyNoDefault] drop one or both capabilities. Identifiers
// and instants follow the same scheme.
//
// Default constructors such as [DefaultAmountForFlags] only accept the
// has-default flags, so asking for the default of a NoDefault wrapper
// does not compile. Go always has zero values; the flag controls the
// API, not the language.
//
// No-copy wrappers carry a marker that go vet's copylocks check
// reports on implicit copies. Duplicate them explicitly with Clone:
//
//	total.AddAssign(payment.Clone())
//
// # Display
//
// A tag may implement [DisplayerOf] to render its wrappers, for
// example cents as dollars. [DisplayAmount], [DisplayID] and
// [DisplayInstant] borrow a wrapper and return a proxy that formats
// through the tag.
//
// # Encoding
//
// Wrappers encode as their bare representation in JSON, CBOR, YAML,
// MessagePack, TOML (amounts and instants) and SQL, and log through
// slog as their bare value. Encoding a wrapper produces the same bytes
// as encoding the value it holds, with two limits: CBOR identity holds
// under lib/codec's deterministic mode, since the hook always encodes
// in that mode, and JSON identity holds for the default HTML escaping
// of string identifiers.
//
// # Conversions
//
// [ConvertAmount], [ConvertAmountNumber], [RoundAmount] and the
// instant and identifier forms change the representation and keep the
// tag. They fail with [ErrOutOfRange] when the value does not survive;
// the Cast forms follow Go conversion rules instead.
//
// An explicit Go conversion between two tags of the same variant and
// representation compiles, since their struct types are identical
// apart from type arguments. It is the one way to retag a value.
package phantom

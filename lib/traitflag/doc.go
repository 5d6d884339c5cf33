// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package traitflag defines the closed set of capability flags that
// select which optional capabilities a phantom wrapper type carries.
//
// Two capabilities vary independently: implicit copying and a named
// default constructor. Each combination is a distinct zero-size type:
//
//	IsCopyIsDefault   copyable, has a default constructor
//	IsCopyNoDefault   copyable, no default constructor
//	NoCopyIsDefault   explicit Clone only, has a default constructor
//	NoCopyNoDefault   explicit Clone only, no default constructor
//
// A flag is always a type parameter of the wrapper, never a field, so
// it costs nothing at runtime. The [Flags] constraint is sealed by an
// unexported method: a type declared elsewhere satisfies it only by
// embedding one of the four. APIs that require a capability constrain
// their flag parameter with [Copyable] or [Defaultable], and
// instantiating them with a flag that lacks the capability is a
// compile error.
//
// Go cannot forbid copying a value. The no-copy flags hold a marker
// with Lock and Unlock methods, so the copylocks analyzer in go vet
// reports implicit copies of any wrapper instantiated with them.
package traitflag

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package traitflag

// IsCopyIsDefault marks a wrapper that copies implicitly and has a
// default constructor. This is the flag behind the short wrapper
// names (Amount, ID, Instant).
type IsCopyIsDefault struct {
	flag
	copyTrait
	defaultTrait
}

// IsCopyNoDefault marks a wrapper that copies implicitly and has no
// default constructor.
type IsCopyNoDefault struct {
	flag
	copyTrait
}

// NoCopyIsDefault marks a wrapper that must be duplicated with Clone
// and has a default constructor.
type NoCopyIsDefault struct {
	flag
	defaultTrait
	_ noCopy
}

// NoCopyNoDefault marks a wrapper that must be duplicated with Clone
// and has no default constructor.
type NoCopyNoDefault struct {
	flag
	_ noCopy
}

// Flags is satisfied by the four flag types. Its method is unexported,
// so types outside this package satisfy it only by embedding one of
// them.
type Flags interface {
	comparable
	isFlag()
}

// Copyable is satisfied by the flags whose wrappers copy implicitly.
type Copyable interface {
	Flags
	isCopyable()
}

// Defaultable is satisfied by the flags whose wrappers have a default
// constructor.
type Defaultable interface {
	Flags
	isDefaultable()
}

// Capability methods are declared on the traits and promoted, never on
// a type holding a noCopy.

type flag struct{}

func (flag) isFlag() {}

type copyTrait struct{}

func (copyTrait) isCopyable() {}

type defaultTrait struct{}

func (defaultTrait) isDefaultable() {}

// noCopy is recognized by go vet's copylocks check through its Lock
// and Unlock methods. It has no size.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

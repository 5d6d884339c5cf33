// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package traitflag

// Descriptor is the runtime view of a flag type: which capabilities it
// enables. It exists for diagnostics and tests; capability checks
// themselves happen at compile time through the constraints.
type Descriptor struct {
	Copy    bool
	Default bool
}

// String returns the canonical name of the flag combination, for
// example "is-copy+no-default".
func (d Descriptor) String() string {
	copyPart := "no-copy"
	if d.Copy {
		copyPart = "is-copy"
	}
	defaultPart := "no-default"
	if d.Default {
		defaultPart = "is-default"
	}
	return copyPart + "+" + defaultPart
}

// Describe returns the descriptor of flag type F.
func Describe[F Flags]() Descriptor {
	var flag F
	_, copyable := any(flag).(interface{ isCopyable() })
	_, defaultable := any(flag).(interface{ isDefaultable() })
	return Descriptor{Copy: copyable, Default: defaultable}
}

// All returns the descriptors of the four flag types in declaration
// order.
func All() []Descriptor {
	return []Descriptor{
		Describe[IsCopyIsDefault](),
		Describe[IsCopyNoDefault](),
		Describe[NoCopyIsDefault](),
		Describe[NoCopyNoDefault](),
	}
}

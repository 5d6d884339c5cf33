// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/bureau-foundation/phantom/lib/traitflag"
)

// ErrOutOfRange is wrapped by every checked conversion that would lose
// range, sign or precision.
var ErrOutOfRange = safecast.ErrOutOfRange

// Conversions change the representation of a wrapper but never its tag
// or flag. Checked forms return an error wrapping [ErrOutOfRange] when
// the value does not survive the trip; Cast forms follow Go's
// conversion rules and never fail.

// ConvertAmount converts between integer representations.
func ConvertAmount[To Integer, F traitflag.Flags, U any, From Integer](a AmountForFlags[F, U, From]) (AmountForFlags[F, U, To], error) {
	converted, err := safecast.Conv[To](a.repr)
	if err != nil {
		return AmountForFlags[F, U, To]{}, conversionError[To](a.repr, err)
	}
	return AmountForFlags[F, U, To]{repr: converted}, nil
}

// MustConvertAmount is ConvertAmount for values known to fit. It
// panics otherwise.
func MustConvertAmount[To Integer, F traitflag.Flags, U any, From Integer](a AmountForFlags[F, U, From]) AmountForFlags[F, U, To] {
	converted, err := ConvertAmount[To](a)
	if err != nil {
		panic(err)
	}
	return converted
}

// ConvertAmountNumber converts between any numeric representations,
// for example uint32 to float64. A float converts to an integer only
// when it has no fractional part. Use ConvertAmount between two
// integer types: this form rejects the largest int64 and uint64 values
// even when converting them to themselves.
func ConvertAmountNumber[To Number, F traitflag.Flags, U any, From Number](a AmountForFlags[F, U, From]) (AmountForFlags[F, U, To], error) {
	converted, err := safecast.Convert[To](a.repr)
	if err != nil {
		return AmountForFlags[F, U, To]{}, conversionError[To](a.repr, err)
	}
	return AmountForFlags[F, U, To]{repr: converted}, nil
}

// RoundAmount rounds a float amount to the nearest value of To, half
// away from zero.
func RoundAmount[To Number, F traitflag.Flags, U any, From Float](a AmountForFlags[F, U, From]) (AmountForFlags[F, U, To], error) {
	converted, err := safecast.Round[To](a.repr)
	if err != nil {
		return AmountForFlags[F, U, To]{}, conversionError[To](a.repr, err)
	}
	return AmountForFlags[F, U, To]{repr: converted}, nil
}

// CastAmount converts with Go conversion semantics: integers truncate
// or wrap, floats truncate toward zero.
func CastAmount[To Number, F traitflag.Flags, U any, From Number](a AmountForFlags[F, U, From]) AmountForFlags[F, U, To] {
	return AmountForFlags[F, U, To]{repr: To(a.repr)}
}

// ConvertInstant converts between integer representations.
func ConvertInstant[To Integer, F traitflag.Flags, U any, From Integer](t InstantForFlags[F, U, From]) (InstantForFlags[F, U, To], error) {
	converted, err := safecast.Conv[To](t.repr)
	if err != nil {
		return InstantForFlags[F, U, To]{}, conversionError[To](t.repr, err)
	}
	return InstantForFlags[F, U, To]{repr: converted}, nil
}

// ConvertInstantNumber converts between any numeric representations
// with the same rules as ConvertAmountNumber.
func ConvertInstantNumber[To Number, F traitflag.Flags, U any, From Number](t InstantForFlags[F, U, From]) (InstantForFlags[F, U, To], error) {
	converted, err := safecast.Convert[To](t.repr)
	if err != nil {
		return InstantForFlags[F, U, To]{}, conversionError[To](t.repr, err)
	}
	return InstantForFlags[F, U, To]{repr: converted}, nil
}

// CastInstant converts with Go conversion semantics.
func CastInstant[To Number, F traitflag.Flags, U any, From Number](t InstantForFlags[F, U, From]) InstantForFlags[F, U, To] {
	return InstantForFlags[F, U, To]{repr: To(t.repr)}
}

// ConvertID converts between integer identifier representations.
func ConvertID[To Integer, F traitflag.Flags, U any, From Integer](id IDForFlags[F, U, From]) (IDForFlags[F, U, To], error) {
	converted, err := safecast.Conv[To](id.repr)
	if err != nil {
		return IDForFlags[F, U, To]{}, conversionError[To](id.repr, err)
	}
	return IDForFlags[F, U, To]{repr: converted}, nil
}

// CastID converts an integer identifier with Go conversion semantics.
func CastID[To Integer, F traitflag.Flags, U any, From Integer](id IDForFlags[F, U, From]) IDForFlags[F, U, To] {
	return IDForFlags[F, U, To]{repr: To(id.repr)}
}

func conversionError[To Number, From Number](value From, err error) error {
	var target To
	return fmt.Errorf("converting %v (%T) to %T: %w", value, value, target, err)
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// TOML has only integer and float scalars, so the TOML hooks exist for
// amounts and instants but not for identifiers. Encoding writes the
// same text BurntSushi/toml writes for a bare R; decoding narrows the
// int64 or float64 the decoder supplies into R with a range check.

// MarshalTOML writes the amount as the TOML number text of its bare value.
func (a AmountForFlags[F, U, R]) MarshalTOML() ([]byte, error) { return marshalTOMLNumber(a.repr), nil }

// UnmarshalTOML narrows a decoded TOML integer or float into the amount.
func (a *AmountForFlags[F, U, R]) UnmarshalTOML(data any) error {
	return unmarshalTOMLNumber(data, &a.repr)
}

// MarshalTOML writes the instant as the TOML number text of its bare value.
func (t InstantForFlags[F, U, R]) MarshalTOML() ([]byte, error) { return marshalTOMLNumber(t.repr), nil }

// UnmarshalTOML narrows a decoded TOML integer or float into the instant.
func (t *InstantForFlags[F, U, R]) UnmarshalTOML(data any) error {
	return unmarshalTOMLNumber(data, &t.repr)
}

func marshalTOMLNumber[R Number](r R) []byte {
	value := reflect.ValueOf(r)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return []byte(strconv.FormatInt(value.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return []byte(strconv.FormatUint(value.Uint(), 10))
	}

	f := value.Float()
	switch {
	case math.IsNaN(f):
		return []byte("nan")
	case math.IsInf(f, 1):
		return []byte("+inf")
	case math.IsInf(f, -1):
		return []byte("-inf")
	}
	text := strconv.FormatFloat(f, 'f', -1, value.Type().Bits())
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return []byte(text)
}

func unmarshalTOMLNumber[R Number](data any, dst *R) error {
	switch value := data.(type) {
	case int64:
		converted := R(value)
		if int64(converted) != value || (value < 0) != (converted < 0) {
			return fmt.Errorf("TOML integer %d does not fit %T: %w", value, converted, ErrOutOfRange)
		}
		*dst = converted
		return nil
	case float64:
		converted, err := safecast.Convert[R](value)
		if err != nil {
			return fmt.Errorf("TOML float %v does not fit %T: %w", value, converted, err)
		}
		*dst = converted
		return nil
	default:
		return fmt.Errorf("cannot decode TOML %T into %T", data, *dst)
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"errors"
	"math"
	"testing"

	"github.com/bureau-foundation/phantom/lib/traitflag"
)

func TestConvertAmountIntegers(t *testing.T) {
	widened, err := ConvertAmount[int64](NewAmount[Apples](uint32(math.MaxUint32)))
	if err != nil {
		t.Fatalf("widening: %v", err)
	}
	if widened.Get() != math.MaxUint32 {
		t.Errorf("widened = %d", widened.Get())
	}

	tests := []struct {
		name string
		run  func() error
	}{
		{"uint64 300 to uint8", func() error {
			_, err := ConvertAmount[uint8](NewAmount[Apples](uint64(300)))
			return err
		}},
		{"int64 -1 to uint64", func() error {
			_, err := ConvertAmount[uint64](NewAmount[Apples](int64(-1)))
			return err
		}},
		{"uint64 max to int64", func() error {
			_, err := ConvertAmount[int64](NewAmount[Apples](uint64(math.MaxUint64)))
			return err
		}},
		{"int16 -129 to int8", func() error {
			_, err := ConvertAmount[int8](NewAmount[Apples](int16(-129)))
			return err
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.run(); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("error = %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestConvertAmountKeepsFlag(t *testing.T) {
	source := NewAmountNoCopyNoDefault[Apples](uint16(9))
	converted, err := ConvertAmount[uint64](source.Clone())
	if err != nil {
		t.Fatalf("ConvertAmount: %v", err)
	}
	var want AmountForFlags[traitflag.NoCopyNoDefault, Apples, uint64] = NewAmountNoCopyNoDefault[Apples](uint64(9))
	if !converted.Equal(want.Clone()) {
		t.Errorf("converted = %v", converted.Get())
	}
}

func TestMustConvertAmount(t *testing.T) {
	if got := MustConvertAmount[int32](NewAmount[Apples](uint8(200))); got.Get() != 200 {
		t.Errorf("MustConvertAmount = %d", got.Get())
	}
	defer func() {
		recovered := recover()
		err, ok := recovered.(error)
		if !ok || !errors.Is(err, ErrOutOfRange) {
			t.Errorf("panic value = %v, want an ErrOutOfRange error", recovered)
		}
	}()
	MustConvertAmount[uint8](NewAmount[Apples](int64(-5)))
}

func TestConvertAmountNumber(t *testing.T) {
	asFloat, err := ConvertAmountNumber[float64](NewAmount[Meters](int32(7)))
	if err != nil || asFloat.Get() != 7 {
		t.Errorf("int32 7 to float64: %v, %v", asFloat.Get(), err)
	}
	whole, err := ConvertAmountNumber[int64](NewAmount[Meters](4.0))
	if err != nil || whole.Get() != 4 {
		t.Errorf("4.0 to int64: %v, %v", whole.Get(), err)
	}
	if _, err := ConvertAmountNumber[int64](NewAmount[Meters](4.5)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("4.5 to int64: error %v, want ErrOutOfRange", err)
	}
	if _, err := ConvertAmountNumber[float32](NewAmount[Meters](uint64(1<<53 + 1))); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("2^53+1 to float32: error %v, want ErrOutOfRange", err)
	}
}

func TestRoundAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{2.4, 2},
		{2.5, 3},
		{-2.5, -3},
		{0, 0},
	}
	for _, test := range tests {
		got, err := RoundAmount[int32](NewAmount[Meters](test.in))
		if err != nil {
			t.Fatalf("RoundAmount(%v): %v", test.in, err)
		}
		if got.Get() != test.want {
			t.Errorf("RoundAmount(%v) = %d, want %d", test.in, got.Get(), test.want)
		}
	}
	if _, err := RoundAmount[uint8](NewAmount[Meters](300.2)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RoundAmount(300.2) to uint8: error %v, want ErrOutOfRange", err)
	}
}

func TestCastAmount(t *testing.T) {
	if got := CastAmount[uint8](NewAmount[Apples](uint64(300))); got.Get() != 44 {
		t.Errorf("CastAmount(300) to uint8 = %d, want 44", got.Get())
	}
	if got := CastAmount[int64](NewAmount[Meters](-2.9)); got.Get() != -2 {
		t.Errorf("CastAmount(-2.9) to int64 = %d, want -2", got.Get())
	}
}

func TestConvertInstant(t *testing.T) {
	narrowed, err := ConvertInstant[int32](NewInstant[Ticks](int64(1000)))
	if err != nil || narrowed.Get() != 1000 {
		t.Errorf("ConvertInstant(1000) = %v, %v", narrowed.Get(), err)
	}
	if _, err := ConvertInstant[int32](NewInstant[Ticks](int64(math.MaxInt64))); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ConvertInstant(MaxInt64) error %v, want ErrOutOfRange", err)
	}
	seconds, err := ConvertInstantNumber[float64](NewInstant[Ticks](uint16(90)))
	if err != nil || seconds.Get() != 90 {
		t.Errorf("ConvertInstantNumber(90) = %v, %v", seconds.Get(), err)
	}
	if got := CastInstant[int8](NewInstant[Ticks](int64(257))); got.Get() != 1 {
		t.Errorf("CastInstant(257) to int8 = %d, want 1", got.Get())
	}
}

func TestConvertID(t *testing.T) {
	id, err := ConvertID[uint16](NewID[Orders](int64(65535)))
	if err != nil || id.Get() != 65535 {
		t.Errorf("ConvertID(65535) = %v, %v", id.Get(), err)
	}
	if _, err := ConvertID[uint16](NewID[Orders](int64(65536))); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ConvertID(65536) error %v, want ErrOutOfRange", err)
	}
	if got := CastID[uint8](NewID[Orders](int32(-1))); got.Get() != 255 {
		t.Errorf("CastID(-1) to uint8 = %d, want 255", got.Get())
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"slices"
	"testing"
)

type inventory struct {
	Item  string `json:"item" yaml:"item" msgpack:"item" toml:"item"`
	Count int64  `json:"count" yaml:"count" msgpack:"count" toml:"count"`
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"cbor", "json", "yaml", "msgpack", "toml"} {
		codec, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if codec.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, codec.Name())
		}
		if codec.ContentType() != "application/"+name {
			t.Errorf("%s content type = %q", name, codec.ContentType())
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("xml")
	if !errors.Is(err, ErrUnknownCodec) {
		t.Fatalf("Lookup(xml) error = %v, want ErrUnknownCodec", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() = %v, not sorted", names)
	}
	if len(All()) != len(names) {
		t.Errorf("All() has %d codecs, Names() has %d", len(All()), len(names))
	}
}

func TestCodecRoundtrip(t *testing.T) {
	original := inventory{Item: "apples", Count: 42}
	for _, codec := range All() {
		t.Run(codec.Name(), func(t *testing.T) {
			data, err := codec.Marshal(original)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var decoded inventory
			if err := codec.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal(%q): %v", data, err)
			}
			if decoded != original {
				t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
			}
		})
	}
}

func TestJSONAcceptsComments(t *testing.T) {
	input := []byte(`{
		// stock on hand
		"item": "pears",
		"count": 7, /* trailing comma follows */
	}`)

	var decoded inventory
	if err := JSON().Unmarshal(input, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != (inventory{Item: "pears", Count: 7}) {
		t.Errorf("decoded %+v", decoded)
	}
}

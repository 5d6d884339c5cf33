// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package phantom

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/phantom/lib/codec"
)

// Every wrapper encodes as its bare representation and decodes by
// reading a bare representation. Decode errors are the
// representation's own.
//
// The hooks cannot see the caller's encoder settings. JSON output is
// what json.Marshal writes for the bare value, and CBOR output is what
// lib/codec's deterministic mode writes, whichever mode the caller
// encodes with.

// MarshalJSON encodes the amount as json.Marshal encodes its bare value.
func (a AmountForFlags[F, U, R]) MarshalJSON() ([]byte, error) { return json.Marshal(a.repr) }

// UnmarshalJSON decodes a bare JSON value into the amount.
func (a *AmountForFlags[F, U, R]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &a.repr)
}

// MarshalCBOR encodes the amount as its bare value in lib/codec's
// deterministic mode. The bytes match codec.Marshal of the bare value,
// not cbor.Marshal or another EncMode: a float that fits half
// precision is written in two bytes here.
func (a AmountForFlags[F, U, R]) MarshalCBOR() ([]byte, error) { return codec.Marshal(a.repr) }

// UnmarshalCBOR decodes a bare CBOR value into the amount.
func (a *AmountForFlags[F, U, R]) UnmarshalCBOR(data []byte) error {
	return codec.Unmarshal(data, &a.repr)
}

// MarshalYAML hands the bare value to the YAML encoder.
func (a AmountForFlags[F, U, R]) MarshalYAML() (any, error) { return a.repr, nil }

// UnmarshalYAML decodes a bare YAML scalar into the amount.
func (a *AmountForFlags[F, U, R]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&a.repr)
}

// EncodeMsgpack encodes the amount as its bare value.
func (a AmountForFlags[F, U, R]) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return encoder.Encode(a.repr)
}

// DecodeMsgpack decodes a bare MessagePack value into the amount.
func (a *AmountForFlags[F, U, R]) DecodeMsgpack(decoder *msgpack.Decoder) error {
	return decoder.Decode(&a.repr)
}

// MarshalJSON encodes the identifier as json.Marshal encodes its bare
// value. String identifiers always have <, > and & escaped, even under
// an Encoder with SetEscapeHTML(false), which leaves a bare string
// unescaped.
func (id IDForFlags[F, U, R]) MarshalJSON() ([]byte, error) { return json.Marshal(id.repr) }

// UnmarshalJSON decodes a bare JSON value into the identifier.
func (id *IDForFlags[F, U, R]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &id.repr)
}

// MarshalCBOR encodes the identifier as its bare value in lib/codec's
// deterministic mode. The bytes match codec.Marshal of the bare value,
// not cbor.Marshal or another EncMode: a float that fits half
// precision is written in two bytes here.
func (id IDForFlags[F, U, R]) MarshalCBOR() ([]byte, error) { return codec.Marshal(id.repr) }

// UnmarshalCBOR decodes a bare CBOR value into the identifier.
func (id *IDForFlags[F, U, R]) UnmarshalCBOR(data []byte) error {
	return codec.Unmarshal(data, &id.repr)
}

// MarshalYAML hands the bare value to the YAML encoder.
func (id IDForFlags[F, U, R]) MarshalYAML() (any, error) { return id.repr, nil }

// UnmarshalYAML decodes a bare YAML scalar into the identifier.
func (id *IDForFlags[F, U, R]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&id.repr)
}

// EncodeMsgpack encodes the identifier as its bare value.
func (id IDForFlags[F, U, R]) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return encoder.Encode(id.repr)
}

// DecodeMsgpack decodes a bare MessagePack value into the identifier.
func (id *IDForFlags[F, U, R]) DecodeMsgpack(decoder *msgpack.Decoder) error {
	return decoder.Decode(&id.repr)
}

// MarshalJSON encodes the instant as json.Marshal encodes its bare value.
func (t InstantForFlags[F, U, R]) MarshalJSON() ([]byte, error) { return json.Marshal(t.repr) }

// UnmarshalJSON decodes a bare JSON value into the instant.
func (t *InstantForFlags[F, U, R]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.repr)
}

// MarshalCBOR encodes the instant as its bare value in lib/codec's
// deterministic mode. The bytes match codec.Marshal of the bare value,
// not cbor.Marshal or another EncMode: a float that fits half
// precision is written in two bytes here.
func (t InstantForFlags[F, U, R]) MarshalCBOR() ([]byte, error) { return codec.Marshal(t.repr) }

// UnmarshalCBOR decodes a bare CBOR value into the instant.
func (t *InstantForFlags[F, U, R]) UnmarshalCBOR(data []byte) error {
	return codec.Unmarshal(data, &t.repr)
}

// MarshalYAML hands the bare value to the YAML encoder.
func (t InstantForFlags[F, U, R]) MarshalYAML() (any, error) { return t.repr, nil }

// UnmarshalYAML decodes a bare YAML scalar into the instant.
func (t *InstantForFlags[F, U, R]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&t.repr)
}

// EncodeMsgpack encodes the instant as its bare value.
func (t InstantForFlags[F, U, R]) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return encoder.Encode(t.repr)
}

// DecodeMsgpack decodes a bare MessagePack value into the instant.
func (t *InstantForFlags[F, U, R]) DecodeMsgpack(decoder *msgpack.Decoder) error {
	return decoder.Decode(&t.repr)
}

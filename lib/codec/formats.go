// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type cborCodec struct{}

func (cborCodec) Name() string                       { return "cbor" }
func (cborCodec) ContentType() string                { return "application/cbor" }
func (cborCodec) Marshal(v any) ([]byte, error)      { return Marshal(v) }
func (cborCodec) Unmarshal(data []byte, v any) error { return Unmarshal(data, v) }

type jsonCodec struct{}

func (jsonCodec) Name() string                  { return "json" }
func (jsonCodec) ContentType() string           { return "application/json" }
func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal strips JSONC comments and trailing commas before decoding.
// Plain JSON passes through unchanged.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(jsonc.ToJSON(data), v)
}

type yamlCodec struct{}

func (yamlCodec) Name() string                       { return "yaml" }
func (yamlCodec) ContentType() string                { return "application/yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

type msgpackCodec struct{}

func (msgpackCodec) Name() string                       { return "msgpack" }
func (msgpackCodec) ContentType() string                { return "application/msgpack" }
func (msgpackCodec) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (msgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

type tomlCodec struct{}

func (tomlCodec) Name() string        { return "toml" }
func (tomlCodec) ContentType() string { return "application/toml" }

// Marshal encodes v as a TOML document. Pass a struct or a map with
// string keys: a scalar is written bare, which no TOML parser accepts
// as a document.
func (tomlCodec) Marshal(v any) ([]byte, error) {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(v); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (tomlCodec) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCodec is returned by [Lookup] for names with no registered
// codec.
var ErrUnknownCodec = errors.New("unknown codec")

// Codec provides content-type aware marshaling.
type Codec interface {
	// Name is the short lowercase name used on command lines.
	Name() string

	// ContentType returns the MIME type for this codec.
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

var registry = map[string]Codec{
	"cbor":    cborCodec{},
	"json":    jsonCodec{},
	"yaml":    yamlCodec{},
	"msgpack": msgpackCodec{},
	"toml":    tomlCodec{},
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	codec, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownCodec, name, Names())
	}
	return codec, nil
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered codec, ordered by name.
func All() []Codec {
	names := Names()
	codecs := make([]Codec, len(names))
	for i, name := range names {
		codecs[i] = registry[name]
	}
	return codecs
}

// CBOR returns the deterministic CBOR codec.
func CBOR() Codec { return cborCodec{} }

// JSON returns the JSON codec.
func JSON() Codec { return jsonCodec{} }

// YAML returns the YAML codec.
func YAML() Codec { return yamlCodec{} }

// MessagePack returns the MessagePack codec.
func MessagePack() Codec { return msgpackCodec{} }

// TOML returns the TOML codec.
func TOML() Codec { return tomlCodec{} }

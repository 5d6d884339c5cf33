// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the wire formats that phantom wrappers
// participate in, and the shared deterministic CBOR configuration.
//
// A phantom wrapper serializes exactly as its bare representation. The
// wrappers' CBOR hooks encode through this package, so a wrapper and
// its representation produce identical bytes whenever both go through
// [Marshal]. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// # Codecs
//
// [Codec] gives the text and binary formats a common shape so tools
// and tests can iterate over them:
//
//   - cbor: this package's deterministic mode (application/cbor)
//   - json: encoding/json; decoding also accepts JSONC comments and
//     trailing commas (application/json)
//   - yaml: gopkg.in/yaml.v3 (application/yaml)
//   - msgpack: vmihailenco/msgpack (application/msgpack)
//   - toml: BurntSushi/toml; the top-level value must be a table
//     (application/toml)
//
// [Sum] fingerprints a value as the BLAKE3 keyed hash of its
// deterministic CBOR encoding. Because wrappers encode as their
// representation, a wrapper and its bare value have the same digest.
package codec

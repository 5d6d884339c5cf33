// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 keyed hash of a value's deterministic
// CBOR encoding.
type Digest [32]byte

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// valueDomainKey is the ASCII domain name zero-padded to the 32 bytes
// BLAKE3 keyed mode requires. Changing it changes every digest.
var valueDomainKey = [32]byte{
	'p', 'h', 'a', 'n', 't', 'o', 'm', '.', 'c', 'o', 'd', 'e', 'c', '.',
	'v', 'a', 'l', 'u', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Sum encodes v with [Marshal] and returns the keyed BLAKE3 digest of
// the encoding.
func Sum(v any) (Digest, error) {
	data, err := Marshal(v)
	if err != nil {
		return Digest{}, fmt.Errorf("encoding value for digest: %w", err)
	}
	return SumBytes(data), nil
}

// SumBytes returns the keyed BLAKE3 digest of already-encoded CBOR.
func SumBytes(data []byte) Digest {
	hasher, err := blake3.NewKeyed(valueDomainKey[:])
	if err != nil {
		// Only a wrong key length fails, and the key is a fixed array.
		panic("codec: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

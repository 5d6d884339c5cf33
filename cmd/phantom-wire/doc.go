// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// phantom-wire checks that a tagged wrapper encodes exactly like the
// value it holds.
//
// It parses a value into the requested representation, wraps it as an
// amount, instant or identifier, and encodes both the wrapper and the
// bare value with every selected codec. Each line of output shows the
// codec, both encodings in hex and whether they match. The final line
// is the BLAKE3 digest of the CBOR encoding.
//
//	phantom-wire --kind instant --repr uint32 1700000000
//	phantom-wire --format json,cbor --repr float64 2.5
//
// The exit status is 0 when every codec produced identical bytes, 1 on
// a mismatch and 2 on a usage or parse error. Set PHANTOM_DEBUG=1 to
// log each encoding.
package main

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for phantom packages.
//
// [RequireSameWire] asserts that a wrapper and its bare representation
// encode to identical bytes under a codec. [RequireRoundTrip] asserts
// that a value survives encode and decode unchanged. Both wrap the
// value in a one-field document for codecs that cannot encode a bare
// scalar at the top level (TOML).
//
// All helpers call t.Fatalf on failure rather than returning errors.
package testutil

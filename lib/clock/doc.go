// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable wall-clock source.
//
// Code that stamps phantom instants from the current time accepts a
// Clock instead of calling time.Now directly. Production code passes
// Real(); tests pass Fake() and move time explicitly:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	start := phantom.NowInstant[traitflag.IsCopyIsDefault, Nanos](c)
//	c.Advance(5 * time.Second)
//	elapsed := phantom.Since(c, start) // 5e9
package clock

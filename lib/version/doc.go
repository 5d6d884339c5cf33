// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for phantom
// binaries.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string
//
// They default to "unknown" / "0.1.0-dev" in development builds and
// test runs. A binary installed with "go install" from a checkout still
// reports its commit: [Info] falls back to the VCS stamp in the
// embedded build information.
package version

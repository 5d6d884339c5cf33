// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Set via -ldflags, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/phantom/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	GitCommit = "unknown"
	GitDirty  = "false"
	BuildTime = "unknown"
	Version   = "0.1.0-dev"
)

// stamp is the source revision a binary was built from.
type stamp struct {
	commit string
	dirty  bool
	time   string
}

// Info returns "<version> (<commit>[-dirty], <build time>)". When the
// commit was not injected, the VCS settings the go command embeds in
// module builds are used instead.
func Info() string {
	current := stamp{commit: GitCommit, dirty: GitDirty == "true", time: BuildTime}
	if current.commit == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if embedded, ok := stampFromSettings(info.Settings); ok {
				current = embedded
			}
		}
	}
	return current.String()
}

func (s stamp) String() string {
	dirty := ""
	if s.dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, s.commit, dirty, s.time)
}

// stampFromSettings reads vcs.revision, vcs.modified and vcs.time.
// The revision is shortened to 12 characters. Reports false when no
// revision is recorded, as in test binaries and builds outside a
// repository.
func stampFromSettings(settings []debug.BuildSetting) (stamp, bool) {
	result := stamp{time: "unknown"}
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			result.commit = setting.Value
			if len(result.commit) > 12 {
				result.commit = result.commit[:12]
			}
		case "vcs.modified":
			result.dirty = setting.Value == "true"
		case "vcs.time":
			result.time = setting.Value
		}
	}
	return result, result.commit != ""
}

// Full returns Info plus the Go toolchain version and platform.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Print writes the --version output for the named binary to w.
func Print(w io.Writer, binary string) {
	fmt.Fprintf(w, "%s %s\n", binary, Full())
}

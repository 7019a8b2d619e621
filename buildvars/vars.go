// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time, e.g.
//
//	go build -ldflags "-X github.com/aerocode/aerocode/buildvars.Version=1.2.3"
//
// They are empty for local or development builds.
package buildvars

var (
	Version string
	Commit  string
	Date    string // RFC3339
)

// VersionOrDefault returns Version if set, otherwise def.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}

// CommitOrDefault returns Commit if set, otherwise def.
func CommitOrDefault(def string) string {
	if len(Commit) > 0 {
		return Commit
	}
	return def
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds small value types shared by the dbconf binary.
package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags.
// Empty values are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.date
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.commit
}

// String formats the build info on one line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("dbconf %s (commit %s, built %s)", a.version, a.commit, a.date)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

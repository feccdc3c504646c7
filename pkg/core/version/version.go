// ============================================================================
// dayx - calendar-aware date-time toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information for the dayx binaries
// Author:      dayx team
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Name of the command line tool
const Name = "dayx"

// Version of the dayx module
const Version = "0.2.0"

// Build metadata, overridden with -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Name:      Name,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns "dayx v0.2.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("%s v%s (%s)", i.Name, i.Version, i.GitCommit)
}

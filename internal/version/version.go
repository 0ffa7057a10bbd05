// Package version holds build information injected with ldflags:
//
//	go build -ldflags "-X github.com/jmylchreest/huepoint/internal/version.Version=x.y.z \
//	  -X github.com/jmylchreest/huepoint/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/huepoint/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import (
	"fmt"
	"runtime"
)

const (
	unknown     = "unknown"
	shortCommit = 8
)

var (
	// Version is the semantic version of the application.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = unknown

	// Date is the build date in RFC3339 format.
	Date = unknown
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version line.
func (i Info) String() string {
	if i.Commit != unknown && i.Date != unknown {
		commit := i.Commit
		if len(commit) > shortCommit {
			commit = commit[:shortCommit]
		}
		return fmt.Sprintf("huepoint version %s (commit: %s, built: %s, %s, %s)",
			i.Version, commit, i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("huepoint version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
}

// String returns the human-readable version line for this build.
func String() string {
	return GetInfo().String()
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}

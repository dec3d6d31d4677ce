// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/pyrolayout/boardplan/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/pyrolayout/boardplan/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/pyrolayout/boardplan/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	// Set via ldflags: -X github.com/pyrolayout/boardplan/pkg/buildinfo.Version=...
	Version = "v0.0.1-dev"

	// Commit is the git commit SHA.
	// Set via ldflags: -X github.com/pyrolayout/boardplan/pkg/buildinfo.Commit=...
	Commit = "none"

	// Date is the build timestamp.
	// Set via ldflags: -X github.com/pyrolayout/boardplan/pkg/buildinfo.Date=...
	Date = "unknown"
)

// Info is the JSON shape served by the HTTP API's version endpoint.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Current returns the build information as a value.
func Current() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

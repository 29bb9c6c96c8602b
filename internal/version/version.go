// Package version holds the gomoi build metadata.
package version

import "fmt"

// Set with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/gomoi/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const (
	Name   = "gomoi"
	Author = "Alexius Academia"
	Year   = "2026"
)

// String returns the one-line build description printed by `gomoi version`.
func String() string {
	return fmt.Sprintf("%s v%s (commit %s, built %s)", Name, Version, GitCommit, BuildTime)
}

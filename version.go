package edat

import "fmt"

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// Commit is the source revision, set via ldflags.
	Commit = "none"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// VersionString formats the build variables for display.
func VersionString() string {
	return fmt.Sprintf("edat %s (commit %s, built %s)", Version, Commit, CompiledAt)
}

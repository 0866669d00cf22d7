// Package version provides build-time version information.
package version

import "fmt"

// Set with -ldflags "-X github.com/javanstorm/vzconf/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a one-line summary.
func String() string {
	return fmt.Sprintf("vzconf %s (commit %s, built %s)", Version, Commit, BuildDate)
}

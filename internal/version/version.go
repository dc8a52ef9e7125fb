// Package version carries the build identity stamped in by the linker.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build identity for the --version flag.
func String() string {
	if CommitHash == "unknown" && BuildDate == "unknown" {
		return fmt.Sprintf("eo %s", Version)
	}
	return fmt.Sprintf("eo %s (%s, built %s)", Version, CommitHash, BuildDate)
}

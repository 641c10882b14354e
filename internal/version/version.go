// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "0.1.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// BuildInfo describes the build the binary came from.
func BuildInfo() string {
	return fmt.Sprintf("commit %s, built %s", GitCommit, BuildTime)
}

// String returns the program name with its version and build info.
func String(program string) string {
	return fmt.Sprintf("%s %s (%s)", program, Version, BuildInfo())
}

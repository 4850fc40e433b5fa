// Package version provides build-time version information.
// The variables are set via ldflags during build.
package version

// Service is the service name reported by the health endpoint.
const Service = "Chonost Manuscript OS API"

// These variables are set at build time via -ldflags
var (
	// Version is the semantic version
	Version = "3.0.0"

	// GitCommit is the short git commit hash
	GitCommit = "unknown"

	// BuildTime is the build timestamp in RFC3339 format
	BuildTime = "unknown"
)

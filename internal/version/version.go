// Package version holds build-time identifiers. The values are overridden
// at build time via -ldflags "-X ...=...".
package version

var (
	// Version is the released version, or "dev" for local builds.
	Version = "dev"
	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the build timestamp, set by the release process.
	BuildDate = "unknown"
)

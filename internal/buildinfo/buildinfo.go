// Package buildinfo holds the CLI's own version string. Default is "dev";
// release builds set it via:
//
//	go build -ldflags "-X github.com/cueme/release-tools/internal/buildinfo.Version=v0.3.0"
package buildinfo

// Version is the cueme-release CLI version. Set at build time for releases.
var Version = "dev"

// Commit is the short git commit hash. Set at build time via ldflags.
var Commit = ""

// String returns the version string for display. Dev builds with a commit
// show "dev (abc1234)".
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}

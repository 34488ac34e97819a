// Package version holds build metadata, set with
// -ldflags "-X github.com/eloqagency/website/internal/version.Version=...".
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
)

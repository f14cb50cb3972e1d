package buildinfo

// Set with -ldflags "-X github.com/cleared-dev/koinlyconv/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build info for --version.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}

package buildconfig

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version
func Version() string {
	return version
}

// Commit returns the git commit hash
func Commit() string {
	return commit
}

// String returns "version (commit)" for CLI display
func String() string {
	return version + " (" + commit + ")"
}

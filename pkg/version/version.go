// Package version exposes build metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/rshade/countrytable/pkg/version.version=v1.2.3"
package version

//nolint:gochecknoglobals // Overridden with -ldflags -X.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line summary for --version output.
func String() string {
	return version + " (commit " + commit + ", built " + buildDate + ")"
}

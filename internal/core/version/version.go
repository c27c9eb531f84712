// Package version provides information about the build version of the binaries.
package version

// BuildInfo holds version information about the build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The variables below are intended to be
// set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'pkgstats/internal/core/version.version=v0.1.0'
	// -X 'pkgstats/internal/core/version.commit=abcd' -X 'pkgstats/internal/core/version.date=2025-09-02'"
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	service = "pkgstats-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

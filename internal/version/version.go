// Package version holds build information of the builder-generator CLI.
package version

import "github.com/fatih/color"

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	nameColor    = color.New(color.FgCyan, color.Bold)
	versionColor = color.New(color.FgGreen, color.Bold)
)

// String renders the version line, colored unless color output is disabled.
func String() string {
	s := nameColor.Sprint("builder-generator") + " " + versionColor.Sprint(Version)
	if GitCommit != "" {
		s += " (" + GitCommit + ")"
	}

	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

package version

import "github.com/fatih/color"

// Build metadata for the gdspec CLI. All of it can be stamped at build
// time with -ldflags "-X gdspec/internal/version.Version=...".

var (
	majorStyle = color.New(color.FgYellow, color.Bold)
	minorStyle = color.New(color.FgGreen, color.Bold)
	patchStyle = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version reported by the CLI, with each
	// segment colored separately.
	Version = majorStyle.Sprint("0") + "." + minorStyle.Sprint("1") + "." + patchStyle.Sprint("0") + "-dev"

	// GitCommit holds the commit hash of the build, when stamped.
	GitCommit = ""

	// BuildDate holds the ISO-8601 build timestamp, when stamped.
	BuildDate = ""
)

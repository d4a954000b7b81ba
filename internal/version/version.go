// Package version holds build metadata for the venturecode CLI.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"slices"
	"strings"

	"github.com/fatih/color"
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.3.1"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored returns Version with major, minor and patch in distinct colors.
// Anything that is not a plain x.y.z triple is returned unchanged.
func Colored() string {
	major, minor, patch, ok := split(Version)
	if !ok {
		return Version
	}
	return versionMajorColor.Sprint(major) + "." + versionMinorColor.Sprint(minor) + "." + versionPatchColor.Sprint(patch)
}

func split(v string) (major, minor, patch string, ok bool) {
	parts := strings.Split(v, ".")
	if len(parts) != 3 || slices.Contains(parts, "") {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// Package version reports the version of the program. The version number is
// set by the makefile with the linker flag:
//
//	-X github.com/jetsetilly/simon/version.number=v1.0.0
//
// Builds without a version number report the vcs revision instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Simon"

// set by the linker. empty if the project was not built using the makefile
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is a
// numbered "release" version.
//
// The version string is "unreleased" for a manual build with vcs information
// and "local" when there is no vcs information, for example with "go run .".
// A revision string with a "+dirty" suffix means that the build contains
// uncommitted changes
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns a string that can be used in a window title
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

// vcsInfo returns the revision recorded in the build information. The ok
// value is false if there is no vcs information at all
func vcsInfo() (rev string, ok bool) {
	info, found := debug.ReadBuildInfo()
	if !found {
		return "", false
	}

	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			ok = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if rev != "" && modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	return rev, ok
}

func init() {
	rev, vcs := vcsInfo()

	revision = rev
	if revision == "" {
		revision = "no revision information"
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}

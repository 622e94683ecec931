// Package version reports the build version of spree.
package version

import "runtime/debug"

var (
	// Version is set via ldflags during build
	Version = "dev"
)

// Short returns the version string. Builds installed with go install report
// the module version when no ldflags value was given.
func Short() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// Long returns the program name with its version.
func Long() string {
	return "spree " + Short()
}

// Package version reports the ciicalc build version.
package version

import "runtime/debug"

// Set at build time with
// -ldflags "-X github.com/etivemor/ciicalc/pkg/version.Version=v1.0.0 -X ...Commit=abc123".
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	Version = ""
	Commit  = ""
)

//nolint:gochecknoglobals // Replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the linker-provided version, then the module version
// from the build info, then the commit, and finally "dev".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	if Commit != "" {
		return "commit-" + Commit
	}
	return "dev"
}

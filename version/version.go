package version

import "runtime/debug"

// Set with -ldflags "-X github.com/bulga138/cellpad/version.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// GetVersion returns the stamped version, or the module version recorded
// by `go install` when the binary was not built with ldflags.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

func GetFullVersion() string {
	return GetVersion() + " (" + Commit + ") built at " + BuildTime
}

package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/faizmokh/hari/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info reports the build metadata, falling back to the module version
// recorded by `go install` when no ldflags were given.
func Info() string {
	return format(Version, Commit, Date, readBuildInfo)
}

func format(v, commit, date string, read func() (*debug.BuildInfo, bool)) string {
	if v == "dev" {
		if info, ok := read(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", v, commit, date)
}

var readBuildInfo = debug.ReadBuildInfo

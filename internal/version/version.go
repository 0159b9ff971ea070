// Package version reports the rowguard build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func init() {
	// "go install github.com/pthm/rowguard/cmd/rowguard@v1.2.3" leaves the
	// ldflags unset but records the module version and VCS stamps.
	if Version != "dev" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) {
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			Commit = shortRevision(setting.Value)
		case "vcs.time":
			Date = setting.Value
		}
	}
}

func shortRevision(rev string) string {
	if len(rev) >= 7 {
		return rev[:7]
	}
	return rev
}

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf("rowguard %s (commit: %s, built: %s) %s",
		Version, Commit, Date, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	return Version
}

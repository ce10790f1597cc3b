// Package version reports how the blend binary was built.
//
// Release builds set Version, Commit and Date with ldflags, e.g.
//
//	-ldflags "-X github.com/jmylchreest/blend/internal/version.Version=x.y.z"
//
// Builds without them (go install, go build in a checkout) fall back to the
// module version and VCS stamps the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

// Set at link time.
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get resolves the build information. Link-time values take precedence over
// embedded build settings.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the information for `blend version`.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "blend version %s (", i.Version)
	if i.Commit != unknown {
		commit := i.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		if i.Modified {
			commit += "-dirty"
		}
		fmt.Fprintf(&b, "commit: %s, ", commit)
	}
	if i.Date != unknown {
		fmt.Fprintf(&b, "built: %s, ", i.Date)
	}
	fmt.Fprintf(&b, "%s, %s)", i.GoVersion, i.Platform)
	return b.String()
}

// String returns the version line for the running binary.
func String() string {
	return Get().String()
}

// Short returns the bare version, used by --version.
func Short() string {
	return Get().Version
}

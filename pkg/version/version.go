// Package version reports how the ctxpack binary was built.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time, e.g.
// go build -ldflags "-X 'ctxpack/pkg/version.Version=1.2.3' -X 'ctxpack/pkg/version.Commit=abcdefg'"
// Values left at their defaults are filled from the module build info when
// the binary was built with `go install` or from a VCS checkout.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	Modified  bool // Built from a checkout with uncommitted changes.
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary.
func Get() Info {
	i := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := readBuildInfo(); ok {
		i.merge(bi)
	}
	return i
}

// merge fills fields still at their defaults from the module build info.
func (i *Info) merge(bi *debug.BuildInfo) {
	if i.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.GitCommit == "none" && s.Value != "" {
				i.GitCommit = s.Value
				if len(i.GitCommit) > 12 {
					i.GitCommit = i.GitCommit[:12]
				}
			}
		case "vcs.time":
			if i.BuildTime == "unknown" && s.Value != "" {
				i.BuildTime = s.Value
			}
		case "vcs.modified":
			i.Modified = s.Value == "true"
		}
	}
}

// String formats the information on one line, e.g.
// ctxpack version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	commit := i.GitCommit
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("ctxpack version %s (commit: %s) built at %s with %s on %s",
		i.Version, commit, i.BuildTime, i.GoVersion, i.Platform)
}

package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	i := Info{Version: "1.2.3", GitCommit: "abc", BuildTime: "now", GoVersion: "go1.23.1", Platform: "linux/amd64"}
	assert.Equal(t, "ctxpack version 1.2.3 (commit: abc) built at now with go1.23.1 on linux/amd64", i.String())

	i.Modified = true
	assert.Contains(t, i.String(), "(commit: abc-dirty)")
}

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestGetWithoutBuildInfo(t *testing.T) {
	stubBuildInfo(t, nil)

	i := Get()
	assert.Equal(t, Version, i.Version)
	assert.Equal(t, Commit, i.GitCommit)
	assert.Equal(t, runtime.Version(), i.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, i.Platform)
}

func TestGetFillsDefaultsFromBuildInfo(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T10:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	i := Get()
	assert.Equal(t, "v0.3.0", i.Version)
	assert.Equal(t, "0123456789ab", i.GitCommit)
	assert.Equal(t, "2026-10-01T10:00:00Z", i.BuildTime)
	assert.True(t, i.Modified)
}

func TestGetKeepsLinkerValues(t *testing.T) {
	origVersion, origCommit := Version, Commit
	Version, Commit = "1.2.3", "feedbee"
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })
	stubBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
	})

	i := Get()
	assert.Equal(t, "1.2.3", i.Version)
	assert.Equal(t, "feedbee", i.GitCommit)
}

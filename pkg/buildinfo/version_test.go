package buildinfo

import (
	"runtime/debug"
	"testing"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	old := [3]string{Version, Commit, Date}
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })
}

func TestTemplate(t *testing.T) {
	stamp(t, "v1.2.3", "abc123", "2026-01-02")

	if got, want := Template(), "{{.Name}} v1.2.3 (commit abc123, built 2026-01-02)\n"; got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
	if got := ServerHeader(); got != "capview/v1.2.3" {
		t.Errorf("ServerHeader() = %q", got)
	}
}

func TestFromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
		},
	}

	tests := []struct {
		name                          string
		version, commit, date         string
		wantVer, wantCommit, wantDate string
	}{
		{"unstamped", "dev", "none", "unknown", "v0.4.0", "0123456789ab", "2026-03-01T10:00:00Z"},
		{"ldflags win", "v9.9.9", "feed", "today", "v9.9.9", "feed", "today"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamp(t, tt.version, tt.commit, tt.date)
			fromBuildInfo(info)
			if Version != tt.wantVer || Commit != tt.wantCommit || Date != tt.wantDate {
				t.Errorf("got %s %s %s, want %s %s %s", Version, Commit, Date, tt.wantVer, tt.wantCommit, tt.wantDate)
			}
		})
	}

	stamp(t, "dev", "none", "unknown")
	fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" {
		t.Errorf("(devel) replaced Version: %q", Version)
	}
}

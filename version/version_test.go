package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func saveAndRestore(t *testing.T) {
	t.Helper()
	v, c, b, bt, g := Version, GitCommit, GitBranch, BuildTime, GoVersion
	t.Cleanup(func() {
		Version, GitCommit, GitBranch, BuildTime, GoVersion = v, c, b, bt, g
	})
}

func set(version, commit, branch, buildTime string) {
	Version, GitCommit, GitBranch, BuildTime, GoVersion = version, commit, branch, buildTime, "go1.26.0"
}

func TestGetVersionInfoDefaults(t *testing.T) {
	saveAndRestore(t)
	set("dev", "", "", "")

	info := GetVersionInfo()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
	if info.BuildDate.IsZero() {
		t.Error("BuildDate should not be zero")
	}
}

func TestGetVersionInfoWithBuildTime(t *testing.T) {
	saveAndRestore(t)
	set("1.0.0", "abc1234", "main", "2024-01-15T10:30:00Z")

	info := GetVersionInfo()
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.GitCommit != "abc1234" || info.GoVersion != "go1.26.0" {
		t.Errorf("unexpected info %+v", info)
	}
	if info.BuildDate.Year() != 2024 || info.BuildDate.Month() != 1 {
		t.Errorf("unexpected build date %v", info.BuildDate)
	}
}

func TestGetVersionInfoDirtyVersion(t *testing.T) {
	saveAndRestore(t)
	set("1.0.0-dirty", "", "", "")
	if GetVersionInfo().IsRelease {
		t.Error("a dirty version should not be a release")
	}
}

func TestApplyBuildInfo(t *testing.T) {
	info := &Info{}
	info.applyBuildInfo(&debug.BuildInfo{
		GoVersion: "go1.26.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-03-01T12:00:00Z"},
		},
	})
	if info.GitCommit != "0123456" {
		t.Errorf("expected short revision, got %q", info.GitCommit)
	}
	if !info.IsDirty || info.GoVersion != "go1.26.0" || info.BuildTime != "2026-03-01T12:00:00Z" {
		t.Errorf("unexpected info %+v", info)
	}

	pinned := &Info{GitCommit: "fixed", BuildTime: "2024-01-01T00:00:00Z"}
	pinned.applyBuildInfo(&debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc"},
		{Key: "vcs.time", Value: "2026-03-01T12:00:00Z"},
	}})
	if pinned.GitCommit != "fixed" || pinned.BuildTime != "2024-01-01T00:00:00Z" {
		t.Errorf("linker values must win, got %+v", pinned)
	}
}

func TestGetShortVersion(t *testing.T) {
	saveAndRestore(t)
	set("1.2.0", "abc1234", "", "")
	if got := GetShortVersion(); !strings.HasPrefix(got, "1.2.0-abc1234") {
		t.Errorf("unexpected short version %q", got)
	}
}

func TestGetFullVersion(t *testing.T) {
	saveAndRestore(t)
	tests := []struct {
		name     string
		branch   string
		contains string
		absent   string
	}{
		{"main branch", "main", "1.0.0-abc1234", "main"},
		{"feature branch", "feat/x", "1.0.0-abc1234-feat/x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set("1.0.0", "abc1234", tt.branch, "2024-01-15T10:30:00Z")
			got := GetFullVersion()
			if !strings.Contains(got, tt.contains) {
				t.Errorf("%q should contain %q", got, tt.contains)
			}
			if tt.absent != "" && strings.Contains(got, tt.absent) {
				t.Errorf("%q should not contain %q", got, tt.absent)
			}
			if !strings.Contains(got, "(built 2024-01-15T10:30:00Z)") {
				t.Errorf("%q should contain the build date", got)
			}
		})
	}
}

func TestInfoFields(t *testing.T) {
	f := (&Info{Version: "1.0.0", IsRelease: true}).Fields()
	if f["version"] != "1.0.0" || f["is_release"] != true {
		t.Errorf("unexpected fields %v", f)
	}
}

package version

import (
	"strings"
	"testing"
)

func saveBuildInfo(t *testing.T) {
	t.Helper()
	version, commit, date := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		SetBuildInfo(version, commit, date)
	})
}

func TestValidateVersion(t *testing.T) {
	saveBuildInfo(t)

	tests := []struct {
		name        string
		version     string
		expectError bool
	}{
		{
			name:        "valid version",
			version:     "1.2.3",
			expectError: false,
		},
		{
			name:        "valid version with prerelease",
			version:     "1.2.3-alpha.1",
			expectError: false,
		},
		{
			name:        "invalid version",
			version:     "invalid",
			expectError: true,
		},
		{
			name:        "empty version",
			version:     "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			err := ValidateVersion()
			if (err != nil) != tt.expectError {
				t.Errorf("ValidateVersion() error = %v, expectError %v", err, tt.expectError)
			}
		})
	}
}

func TestGetDetailedVersion(t *testing.T) {
	saveBuildInfo(t)
	SetBuildInfo("0.3.0-rc.1", "0123456789abcdef", "2026-10-01")

	detailed := GetDetailedVersion()
	for _, want := range []string{"v0.3.0-rc.1", "Prerelease: rc.1", "Git Commit: 0123456", "Build Date: 2026-10-01", "Go Version: go"} {
		if !strings.Contains(detailed, want) {
			t.Errorf("GetDetailedVersion() = %q, missing %q", detailed, want)
		}
	}
}

func TestGetDetailedVersion_DevelopmentBuild(t *testing.T) {
	saveBuildInfo(t)

	SetBuildInfo("0.3.0", "unknown", "unknown")
	if got := GetDetailedVersion(); !strings.Contains(got, "Build: development") {
		t.Errorf("GetDetailedVersion() = %q, want development marker", got)
	}

	SetBuildInfo("0.3.0", "0123456789abcdef", "2026-10-01")
	if got := GetDetailedVersion(); strings.Contains(got, "Build: development") {
		t.Errorf("GetDetailedVersion() = %q, stamped build marked as development", got)
	}
}

func TestGetDetailedVersion_Invalid(t *testing.T) {
	saveBuildInfo(t)
	Version = "not-a-version"

	if got := GetDetailedVersion(); !strings.Contains(got, "error:") {
		t.Errorf("GetDetailedVersion() = %q, want error marker", got)
	}
}

func TestIsDevelopment(t *testing.T) {
	saveBuildInfo(t)

	SetBuildInfo("0.1.0", "unknown", "unknown")
	if !IsDevelopment() {
		t.Error("IsDevelopment() = false for unknown build info")
	}

	SetBuildInfo("0.1.0", "abc1234", "2026-10-01")
	if IsDevelopment() {
		t.Error("IsDevelopment() = true for stamped build")
	}
}

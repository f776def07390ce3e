package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	saved := [3]string{Version, GitCommit, BuildDate}
	t.Cleanup(func() { Version, GitCommit, BuildDate = saved[0], saved[1], saved[2] })

	Version = "dev"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion() = %q, want %q", got, "dev")
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-01-02"
	want := "1.2.0 (commit abc123, built 2026-01-02)"
	if got := GetFullVersion(); got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
	if got := GetVersion(); got != "1.2.0" {
		t.Errorf("GetVersion() = %q, want %q", got, "1.2.0")
	}
}

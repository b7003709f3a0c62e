package version

import "testing"

func TestFormatVersion(t *testing.T) {
	if got := FormatVersion("dev", "none", "unknown"); got != "dev (development build)" {
		t.Errorf("unexpected dev format: %q", got)
	}

	got := FormatVersion("v1.2.0", "abc1234", "2025-06-01")
	want := "v1.2.0 (commit: abc1234, built: 2025-06-01)"
	if got != want {
		t.Errorf("FormatVersion = %q, want %q", got, want)
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("expected non-empty version string")
	}
}

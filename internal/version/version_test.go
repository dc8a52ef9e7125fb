package version

import "testing"

func TestString_DevBuild(t *testing.T) {
	if got, want := String(), "eo dev"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestString_StampedBuild(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, CommitHash, BuildDate
	defer func() {
		Version, CommitHash, BuildDate = oldVersion, oldCommit, oldDate
	}()

	Version = "1.2.0"
	CommitHash = "abc1234"
	BuildDate = "2026-08-01"

	if got, want := String(), "eo 1.2.0 (abc1234, built 2026-08-01)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

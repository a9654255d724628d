package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })

	Version = "v1.2.3"
	got := String()
	if !strings.HasPrefix(got, "v1.2.3 (commit ") {
		t.Errorf("unexpected version string %q", got)
	}
	if !strings.Contains(got, CommitSHA) {
		t.Errorf("expected commit in %q", got)
	}
}

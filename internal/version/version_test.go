package version

import (
	"runtime/debug"
	"testing"
)

func TestFormatPrefersLinkedVersion(t *testing.T) {
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, true
	}
	got := format("v1.2.0", "abc123", "2024-05-01", read)
	if got != "v1.2.0 (commit abc123, built 2024-05-01)" {
		t.Fatalf("format = %q", got)
	}
}

func TestFormatFallsBackToModuleVersion(t *testing.T) {
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, true
	}
	if got := format("dev", "none", "unknown", read); got != "v0.9.0 (commit none, built unknown)" {
		t.Fatalf("format = %q", got)
	}

	devel := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	}
	if got := format("dev", "none", "unknown", devel); got != "dev (commit none, built unknown)" {
		t.Fatalf("format = %q", got)
	}
}

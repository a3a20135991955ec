package sse

import (
	"runtime"
	"testing"
)

func TestSupported(t *testing.T) {
	// SSE2 is part of the amd64 baseline, so the CPUID probe must agree.
	if runtime.GOARCH == "amd64" && !Supported() {
		t.Error("Supported() = false on amd64")
	}
	if runtime.GOARCH != "amd64" && Supported() {
		t.Errorf("Supported() = true on %s", runtime.GOARCH)
	}
}

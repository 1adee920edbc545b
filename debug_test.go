package layerkit

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestDebugLogfSilentByDefault(t *testing.T) {
	debugGesturesEnabled = false
	out := captureStderr(t, func() {
		debugLogf("hello %d", 1)
	})
	if out != "" {
		t.Errorf("debugLogf with tracing off wrote %q, want nothing", out)
	}
}

func TestDebugLogfWritesWhenEnabled(t *testing.T) {
	debugGesturesEnabled = true
	defer func() { debugGesturesEnabled = false }()

	out := captureStderr(t, func() {
		debugLogf("captured %d", 42)
	})
	if !strings.Contains(out, "captured 42") {
		t.Errorf("debugLogf output = %q, want it to contain %q", out, "captured 42")
	}
	if !strings.HasPrefix(out, "[layerkit] ") {
		t.Errorf("debugLogf output = %q, want the [layerkit] prefix", out)
	}
}

func TestNewLayerRootEnablesTracingFromConfig(t *testing.T) {
	debugGesturesEnabled = false
	cfg := DefaultGesturesConfiguration()
	cfg.DebugGestures = true
	NewLayerRoot(cfg)

	if !debugGesturesEnabled {
		t.Error("expected NewLayerRoot to turn on debugGesturesEnabled when the config requests it")
	}
	debugGesturesEnabled = false
}

package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisabledByDefault(t *testing.T) {
	Close()
	if IsEnabled() {
		t.Fatal("Expected debug logging to be disabled")
	}

	// Must not panic or write anywhere.
	Log("ignored %d", 1)
	Timed("noop")()
}

func TestEnableWritesLogFile(t *testing.T) {
	var errBuf bytes.Buffer
	orig := stderr
	stderr = &errBuf
	defer func() { stderr = orig }()

	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}

	Log("selected haiku %d", 3)
	Warn("widget refresh failed", "err", "no tmux")
	Timed("render")()
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	log := string(data)

	for _, want := range []string{"debug logging enabled", "selected haiku 3", "widget refresh failed", "render completed"} {
		if !strings.Contains(log, want) {
			t.Errorf("Log file missing %q:\n%s", want, log)
		}
	}

	if !strings.Contains(errBuf.String(), "widget refresh failed") {
		t.Errorf("Expected warning on stderr, got %q", errBuf.String())
	}
	if strings.Contains(errBuf.String(), "selected haiku") {
		t.Errorf("Debug records should not reach stderr, got %q", errBuf.String())
	}

	if IsEnabled() {
		t.Error("Expected debug logging to be disabled after Close")
	}
}

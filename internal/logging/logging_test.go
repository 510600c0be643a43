package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("ignored", nil)
	SetTraceEnabled(true)
	Trace("tabs.select", map[string]interface{}{"value": "Artist"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one trace line, got %d: %q", len(lines), data)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected valid json, got %v", err)
	}
	if entry.Event != "tabs.select" || entry.Payload["value"] != "Artist" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestErrorAppendsMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("boom"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	if !strings.Contains(string(data), "error: boom") {
		t.Fatalf("expected error line, got %q", data)
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected nil error to be skipped, got %q", data)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("")
	if got := Path(); got != defaultLogFile {
		t.Fatalf("expected %q, got %q", defaultLogFile, got)
	}
}

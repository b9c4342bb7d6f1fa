package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(Options{Verbose: tt.verbose, Console: &buf})
			l.Debug("debug message")
			l.Info("info message")
			_ = l.Sync()

			out := buf.String()
			if !strings.Contains(out, "info message") {
				t.Errorf("expected info output, got %q", out)
			}
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug output = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdftable.log")
	l := New(Options{File: path})
	l.Debug("written to file")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", data, err)
	}
	if entry["message"] != "written to file" || entry["level"] != "DEBUG" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNopWithoutOutputs(t *testing.T) {
	l := New(Options{})
	l.Info("nowhere")
	if err := l.Sync(); err != nil {
		t.Errorf("expected no error from a no-op logger, got %v", err)
	}
}

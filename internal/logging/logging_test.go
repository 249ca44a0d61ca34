package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"info", log.InfoLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("brickgame", "warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "score", 1500)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "score=1500") {
		t.Errorf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "brickgame") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "brickgame.log")

	logger, closer, err := OpenFile("brickgame", "info", path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Info("game ended", "score", 300)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "game ended") {
		t.Errorf("log file content = %q", data)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	logger, closer, err := OpenFile("brickgame", "debug", "")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Debug("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

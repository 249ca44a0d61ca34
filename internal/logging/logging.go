// Package logging builds the charmbracelet loggers used by the driver and the
// SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-game/internal/config"
)

// ParseLevel maps debug, info, warn and error to a log level. Anything else,
// including the empty string, is info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a timestamped logger writing to w.
func New(prefix, level string, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
		Level:           ParseLevel(level),
	})
}

// OpenFile creates a logger appending to path. The returned closer releases
// the file. An empty path discards all output.
func OpenFile(prefix, level, path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return New(prefix, level, io.Discard), io.NopCloser(nil), nil
	}

	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return New(prefix, level, f), f, nil
}

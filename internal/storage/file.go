package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/brick-game/internal/config"
)

// FileStore keeps a single high score as a decimal integer in a file.
// SaveHighScore is serialized, so sessions sharing one FileStore never
// lower the stored value.
type FileStore struct {
	Path string

	mu sync.Mutex
}

// NewFileStore returns a store for path; a leading ~ is expanded.
func NewFileStore(path string) (*FileStore, error) {
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{Path: path}, nil
}

// LoadHighScore reads the stored score. A missing file yields 0 and no
// error; unparsable content is an error.
func (f *FileStore) LoadHighScore() (int, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: invalid high score %q: %w", text, err)
	}
	return score, nil
}

// SaveHighScore writes score unless the file already holds a higher value.
// The file is replaced atomically.
func (f *FileStore) SaveHighScore(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if current, err := f.LoadHighScore(); err == nil && current >= score {
		return nil
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".high_score-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("storage: cannot replace high score file: %w", err)
	}
	return nil
}

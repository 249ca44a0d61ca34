package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExpandPath resolves a leading ~ to the user's home directory. Config
// values for the database, high score file and log file all go through it.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

package storage

import (
	"fmt"

	"github.com/vovakirdan/brick-game/internal/config"
)

// HighScoreStore loads and saves a single best score.
// Both *Keeper and *FileStore implement it.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

var (
	_ HighScoreStore = (*Keeper)(nil)
	_ HighScoreStore = (*FileStore)(nil)
)

// OpenBackend opens the persistence selected by cfg. With the sqlite backend
// the returned Store also records run history; with the file backend it is
// nil and only the high score is kept.
func OpenBackend(cfg config.StorageConfig, gameID string) (*Store, HighScoreStore, error) {
	switch cfg.Backend {
	case config.BackendFile:
		fs, err := NewFileStore(cfg.HighScoreFile)
		if err != nil {
			return nil, nil, err
		}
		return nil, fs, nil
	case config.BackendSQLite, "":
		store, err := Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Keeper(gameID), nil
	default:
		return nil, nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}

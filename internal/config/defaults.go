package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hard-coded configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		TickRate: 60,
		Hold: HoldConfig{
			Threshold: 5,
			GapMS:     150,
		},
		Storage: StorageConfig{
			Backend:       BackendSQLite,
			DBPath:        "~/.brickgame/scores.db",
			HighScoreFile: "~/.brickgame/high_score.dat",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.brickgame/brickgame.log",
		},
	}
}

// Package config provides YAML-based configuration for the brickgame driver:
// tick rate, hold detection, persistence backend and logging.
package config

import (
	"fmt"
	"time"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// TetrisConfig is the complete driver configuration.
type TetrisConfig struct {
	TickRate int           `yaml:"tick_rate"`
	Hold     HoldConfig    `yaml:"hold"`
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
}

// HoldConfig controls when repeated key presses count as a held key.
type HoldConfig struct {
	Threshold int `yaml:"threshold"` // repeats before a key counts as held
	GapMS     int `yaml:"gap_ms"`    // max milliseconds between repeats
}

// Gap returns the repeat gap as a duration.
func (h HoldConfig) Gap() time.Duration {
	return time.Duration(h.GapMS) * time.Millisecond
}

// StorageConfig selects where the high score lives.
type StorageConfig struct {
	Backend       string `yaml:"backend"`
	DBPath        string `yaml:"db_path"`
	HighScoreFile string `yaml:"high_score_file"`
}

// LogConfig sets the logger level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// TickInterval returns the duration of one simulation tick.
func (c TetrisConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Validate clamps out-of-range values to usable ones and rejects an unknown
// storage backend.
func (c *TetrisConfig) Validate() error {
	def := DefaultTetrisConfig()

	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.TickRate > 1000 {
		c.TickRate = 1000
	}
	if c.Hold.Threshold < 1 {
		c.Hold.Threshold = 1
	}
	if c.Hold.GapMS <= 0 {
		c.Hold.GapMS = def.Hold.GapMS
	}

	switch c.Storage.Backend {
	case "":
		c.Storage.Backend = def.Storage.Backend
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.Storage.HighScoreFile == "" {
		c.Storage.HighScoreFile = def.Storage.HighScoreFile
	}

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	return nil
}

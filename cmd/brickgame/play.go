package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-game/internal/core"
	"github.com/vovakirdan/brick-game/internal/games/tetris"
	"github.com/vovakirdan/brick-game/internal/logging"
	"github.com/vovakirdan/brick-game/internal/platform/tui"
	"github.com/vovakirdan/brick-game/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game in the current terminal.

Controls:
  Enter/R          - Start / restart
  A/Left, D/Right  - Move
  S/Down           - Drop (hold to hard drop)
  W/Up/Space       - Rotate
  P                - Pause
  Q/Esc/Ctrl+C     - Quit
  Ctrl+S           - Save screenshot

Examples:
  brickgame play
  brickgame play --seed 42
  brickgame play --backend file --high-score-file ./hs.dat`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fail("%v", err)
	}
}

// play runs one terminal session. Deferred cleanup runs before any error
// reaches fail, which exits the process.
func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile("brickgame", cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer closer.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     viper.GetInt64("seed"),
	}

	// The game still runs when storage is unavailable.
	store, keeper, err := storage.OpenBackend(cfg.Storage, tetris.GameID)
	if err != nil {
		logger.Warn("could not open score storage", "backend", cfg.Storage.Backend, "error", err)
	}
	if store != nil {
		defer store.Close()
	}

	rec := tui.NewRecorder(tetris.GameID, keeper, store, logger)
	game := tui.NewTetris(rec, runtime.Seed)
	hold := core.NewHoldTracker(cfg.Hold.Threshold, cfg.Hold.Gap())

	if err := tui.Run(game, rec, runtime, hold); err != nil {
		logger.Error("program exited with error", "err", err)
		return err
	}
	return nil
}

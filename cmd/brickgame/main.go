// brickgame is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	brickgame play           - Play a game
//	brickgame scores         - Show recorded runs
//	brickgame serve          - Start SSH server for remote play
//	brickgame config         - Print the effective configuration
//	brickgame version        - Print build information
//
// Global flags:
//
//	--fps <rate>               - Set tick rate (default: 60)
//	--seed <value>             - Set RNG seed for reproducible gameplay
//	--db <path>                - Set database path (default: ~/.brickgame/scores.db)
//	--high-score-file <path>   - High score file for the file backend
//	--backend <sqlite|file>    - Persistence backend
//	--log-level <level>        - debug, info, warn or error
//	--config <path>            - Path to a YAML config file
//
// Every flag can also be set through a BRICKGAME_ environment variable,
// e.g. BRICKGAME_FPS=30 or BRICKGAME_HIGH_SCORE_FILE=/tmp/hs.dat.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/brick-game/internal/config"

	// Register games
	_ "github.com/vovakirdan/brick-game/internal/games/tetris"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - falling blocks in your terminal",
	Long: `Brick Game is the classic handheld falling-block puzzle, played in
your terminal or over SSH.

Available commands:
  play     - Play a game
  scores   - View recorded runs and the high score
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  brickgame play
  brickgame play --seed 42
  brickgame scores --limit 20
  brickgame serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 60, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", "", "Path to scores database")
	flags.String("high-score-file", "", "Path to the high score file (file backend)")
	flags.String("backend", "", "Persistence backend: sqlite or file")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("config", "", "Path to custom config YAML")

	viper.SetEnvPrefix("brickgame")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the YAML config and applies flag and environment
// overrides on top of it.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(viper.GetString("config"))
	if err != nil {
		return cfg, err
	}

	if viper.IsSet("fps") {
		cfg.TickRate = viper.GetInt("fps")
	}
	if v := viper.GetString("backend"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := viper.GetString("db"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := viper.GetString("high-score-file"); v != "" {
		cfg.Storage.HighScoreFile = v
	}
	if v := viper.GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

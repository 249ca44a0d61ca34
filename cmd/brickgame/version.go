package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-game/internal/config"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		v := version
		if info, ok := debug.ReadBuildInfo(); ok && v == "dev" && info.Main.Version != "" {
			v = info.Main.Version
		}
		fmt.Printf("brickgame %s\n", v)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, the config file, flags and
BRICKGAME_ environment variables have been applied.

Redirect the output to ~/.brickgame/configs/tetris.yaml to start a
custom config.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := loadConfig()
		if err != nil {
			fail("%v", err)
		}
		out, err := config.Marshal(cfg)
		if err != nil {
			fail("%v", err)
		}
		os.Stdout.Write(out)
	},
}

// mousetris is a falling-block puzzle played with mouse clicks and the
// scroll wheel, drawn on the OLED screen of a SteelSeries mouse.
//
// Usage:
//
//	mousetris play           - Play with a terminal preview as the mouse input
//	mousetris serve          - Start SSH server for remote play
//	mousetris scores         - Show high scores
//	mousetris sinks          - List display sinks
//	mousetris frame          - Render a sample frame for device bring-up
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.mousetris, ./configs)
//	--tps <rate>       - Set tick rate (default: 15)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.mousetris/scores.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mousetris/internal/config"

	// Import sinks to register them
	_ "github.com/vovakirdan/mousetris/internal/gamesense"
)

var (
	// Global flags
	flagConfig   string
	flagTPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mousetris",
	Short: "Mousetris - Tetris on your mouse's OLED screen",
	Long: `Mousetris is a falling-block puzzle controlled entirely with the mouse:
left click moves left, right click moves right, scrolling up rotates and
scrolling down drops. The board is drawn on the 128x36 screen of a
SteelSeries mouse through the GameSense engine.

Available commands:
  play     - Play in the terminal, mirrored to the mouse
  serve    - Start SSH server for remote play
  scores   - View high scores
  sinks    - List display sinks
  frame    - Render a sample frame

Examples:
  mousetris play
  mousetris play --sink discard
  mousetris serve --ssh :2222
  mousetris frame --format canvas`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Tick rate (ticks per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time-based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(sinksCmd)
	rootCmd.AddCommand(frameCmd)
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagTPS > 0 {
		cfg.Game.TickRate = flagTPS
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger creates the root logger at the configured level.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mousetris",
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

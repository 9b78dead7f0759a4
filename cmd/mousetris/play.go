package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mousetris/internal/assets"
	"github.com/vovakirdan/mousetris/internal/platform/tui"
	"github.com/vovakirdan/mousetris/internal/registry"
	"github.com/vovakirdan/mousetris/internal/storage"
)

var (
	flagSink   string
	flagAssets string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game. The terminal shows what the mouse screen shows, and
mouse events inside the terminal drive the game.

Controls:
  Left click    - Move left
  Right click   - Move right
  Wheel up      - Rotate clockwise
  Wheel down    - Soft drop
  R             - Restart (after game over)
  ?             - Toggle help
  Q/Ctrl+C      - Quit

Examples:
  mousetris play
  mousetris play --sink discard
  mousetris play --sink file
  mousetris play --assets ./assets --tps 20`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSink, "sink", "", "Display sink (default from config; see 'mousetris sinks')")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with glyph images (default: built-in)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal.")
		fmt.Fprintln(os.Stderr, "Run 'mousetris serve' to play over SSH instead.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSink != "" {
		cfg.Display.Sink = flagSink
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	logger := newLogger(cfg)

	if !registry.Exists(cfg.Display.Sink) {
		fmt.Fprintf(os.Stderr, "Error: unknown sink %q\n", cfg.Display.Sink)
		fmt.Fprintln(os.Stderr, "Run 'mousetris sinks' to see available sinks.")
		os.Exit(1)
	}

	res, err := assets.LoadOrDefault(cfg.Assets.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Open the display; without a device the preview still works
	out, err := registry.Create(ctx, cfg.Display.Sink, registry.Deps{Config: cfg, Logger: logger})
	if err != nil {
		logger.Warn("display unavailable, preview only", "sink", cfg.Display.Sink, "error", err)
		out = registry.Output{}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := out.Shutdown(shutdownCtx); err != nil {
			logger.Warn("display shutdown failed", "error", err)
		}
	}()

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	sum, finished, err := tui.Run(tui.Options{
		Runtime:   cfg.Runtime(),
		Resources: res,
		Sink:      out.Sink,
		Vibrator:  out.Vibrator,
		Store:     store,
		Logger:    logger,
		Context:   ctx,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if finished {
		fmt.Printf("Final score: %d (level %d, %d rows)\n", sum.Score, sum.Level, sum.Rows)
		if store != nil {
			if high, err := store.HighScore(gameID); err == nil && high > 0 {
				fmt.Printf("Best: %d\n", high)
			}
		}
	}
}

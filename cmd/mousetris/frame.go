package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mousetris/internal/assets"
	"github.com/vovakirdan/mousetris/internal/config"
	"github.com/vovakirdan/mousetris/internal/core"
	"github.com/vovakirdan/mousetris/internal/games/tetris"
	"github.com/vovakirdan/mousetris/internal/registry"
	"github.com/vovakirdan/mousetris/internal/render"
)

var (
	flagShape    string
	flagGameOver bool
	flagFormat   string
	flagSend     bool
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Render a sample frame",
	Long: `Render one frame and print it. Useful when bringing up a new device or
checking the bit layout.

Formats:
  hex     - Hex dump of the 576 packed bytes
  canvas  - The 36x128 canvas, X for lit pixels
  ints    - Comma-separated byte values, as sent to GameSense

Examples:
  mousetris frame
  mousetris frame --shape t --format canvas
  mousetris frame --game-over --send`,
	Args: cobra.NoArgs,
	Run:  runFrame,
}

func init() {
	frameCmd.Flags().StringVar(&flagShape, "shape", "line", "Piece to spawn: line, square, l, l_mirror, s, z, t")
	frameCmd.Flags().BoolVar(&flagGameOver, "game-over", false, "Render the end screen instead")
	frameCmd.Flags().StringVar(&flagFormat, "format", "hex", "Output format: hex, canvas, ints")
	frameCmd.Flags().BoolVar(&flagSend, "send", false, "Also send the frame to the configured sink")
}

func runFrame(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shape, ok := tetris.ShapeByName(flagShape)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown shape %q\n", flagShape)
		os.Exit(1)
	}

	res, err := assets.LoadOrDefault(cfg.Assets.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}
	r, err := render.New(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f := sampleFrame(r, shape, flagGameOver)

	switch flagFormat {
	case "hex":
		fmt.Print(hex.Dump(f[:]))
	case "canvas":
		fmt.Println(render.Unpack(f).String())
	case "ints":
		vals := f.Ints()
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = fmt.Sprint(v)
		}
		fmt.Println(strings.Join(parts, ","))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", flagFormat)
		os.Exit(1)
	}

	if flagSend {
		sendFrame(cmd.Context(), cfg, f)
	}
}

// sampleFrame spawns one piece of the given shape, or plays squares with
// full soft drop until the stack reaches the top.
func sampleFrame(r *render.Renderer, shape tetris.Shape, gameOver bool) render.Frame {
	if !gameOver {
		g := tetris.NewWithSpawner(tetris.NewSequenceSpawner(shape))
		g.Step(core.InputDelta{})
		return render.Pack(r.DrawGame(g.State()))
	}

	g := tetris.NewWithSpawner(tetris.NewSequenceSpawner(shape))
	for !g.Status().GameOver {
		g.Step(core.InputDelta{SoftDrop: tetris.BoardH})
	}
	return render.Pack(r.DrawGameOver(g.State()))
}

func sendFrame(ctx context.Context, cfg config.Config, f render.Frame) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cfg)

	out, err := registry.Create(ctx, cfg.Display.Sink, registry.Deps{Config: cfg, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer out.Shutdown(ctx)

	if err := out.Sink.Display(ctx, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending frame: %v\n", err)
		return
	}
	logger.Info("frame sent", "sink", cfg.Display.Sink)
}

package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/mousetris/internal/core"
)

//go:embed defaults/mousetris.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickRate: core.DefaultTickRate,
		},
		Display: DisplayConfig{
			Sink:     "gamesense",
			FilePath: "~/.mousetris/frames.bin",
		},
		GameSense: GameSenseConfig{
			GameID:       "TETRIS_MOUSE",
			DisplayName:  "Tetris Mouse",
			Timeout:      2 * time.Second,
			EventTimeout: 200 * time.Millisecond,
		},
		Haptics: HapticsConfig{
			Enabled: true,
			Policy:  "ignore",
		},
		Storage: StorageConfig{
			DBPath: "~/.mousetris/scores.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Package config provides YAML-based configuration loading for mousetris.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mousetris/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Display   DisplayConfig   `yaml:"display"`
	GameSense GameSenseConfig `yaml:"gamesense"`
	Haptics   HapticsConfig   `yaml:"haptics"`
	Assets    AssetsConfig    `yaml:"assets"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

// GameConfig controls the simulation.
type GameConfig struct {
	TickRate int   `yaml:"tick_rate"` // Ticks per second
	Seed     int64 `yaml:"seed"`      // 0 = time-based
}

// DisplayConfig selects where frames go.
type DisplayConfig struct {
	Sink     string `yaml:"sink"`      // Registered sink name
	FilePath string `yaml:"file_path"` // Used by the "file" sink
}

// GameSenseConfig configures the SteelSeries engine client.
type GameSenseConfig struct {
	Address      string        `yaml:"address"`    // host:port; empty = read core_props
	CoreProps    string        `yaml:"core_props"` // Override for coreProps.json location
	GameID       string        `yaml:"game_id"`
	DisplayName  string        `yaml:"display_name"`
	Timeout      time.Duration `yaml:"timeout"`       // Registration and removal
	EventTimeout time.Duration `yaml:"event_timeout"` // Each frame or vibration
}

// HapticsConfig controls vibration feedback.
type HapticsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Policy  string `yaml:"policy"` // "ignore" or "propagate"
}

// AssetsConfig points at external glyph images.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // Empty = built-in images
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// MaxTickRate bounds game.tick_rate.
const MaxTickRate = 1000

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Game.TickRate <= 0 || c.Game.TickRate > MaxTickRate {
		return fmt.Errorf("config: game.tick_rate must be in 1..%d, got %d", MaxTickRate, c.Game.TickRate)
	}
	if c.Display.Sink == "" {
		return fmt.Errorf("config: display.sink is empty")
	}
	switch c.Haptics.Policy {
	case "", "ignore", "propagate":
	default:
		return fmt.Errorf("config: haptics.policy must be ignore or propagate, got %q", c.Haptics.Policy)
	}
	if c.GameSense.Timeout < 0 {
		return fmt.Errorf("config: gamesense.timeout is negative")
	}
	if c.GameSense.EventTimeout < 0 {
		return fmt.Errorf("config: gamesense.event_timeout is negative")
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	return nil
}

// Runtime returns the engine-facing settings. A zero seed is replaced with
// one derived from the current time.
func (c Config) Runtime() core.RuntimeConfig {
	seed := c.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{TickRate: c.Game.TickRate, Seed: seed}
}

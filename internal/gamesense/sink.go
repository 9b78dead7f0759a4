package gamesense

import (
	"context"

	"github.com/vovakirdan/mousetris/internal/haptics"
	"github.com/vovakirdan/mousetris/internal/registry"
)

func init() {
	registry.Register("gamesense", "SteelSeries GameSense OLED screen and haptics", open)
}

// open discovers the engine, registers the game and hands back a client
// that unregisters on Close.
func open(ctx context.Context, deps registry.Deps) (registry.Output, error) {
	cfg := deps.Config.GameSense

	addr := cfg.Address
	if addr == "" {
		var err error
		if addr, err = DiscoverAddress(cfg.CoreProps); err != nil {
			return registry.Output{}, err
		}
	}

	c, err := NewClient(Options{
		Address:      addr,
		GameID:       cfg.GameID,
		DisplayName:  cfg.DisplayName,
		Timeout:      cfg.Timeout,
		EventTimeout: cfg.EventTimeout,
		Logger:       deps.Logger,
	})
	if err != nil {
		return registry.Output{}, err
	}
	if err := c.Register(ctx); err != nil {
		return registry.Output{}, err
	}

	out := registry.Output{Sink: c, Close: c.Unregister}
	if deps.Config.Haptics.Enabled {
		policy, err := haptics.ParsePolicy(deps.Config.Haptics.Policy)
		if err != nil {
			return registry.Output{}, err
		}
		out.Vibrator = haptics.Apply(policy, c, deps.Logger)
	}
	return out, nil
}

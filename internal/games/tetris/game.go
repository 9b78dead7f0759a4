// Package tetris implements the falling-block game: the piece catalog, the
// pure state transition and a stateful Game wrapper driven by the scheduler.
package tetris

import (
	"github.com/vovakirdan/mousetris/internal/core"
)

// Game owns a State and the spawner feeding it, and counts ticks.
// It is not safe for concurrent use; the tick loop is its only caller.
type Game struct {
	spawner Spawner
	state   State
	tick    uint64
}

// New creates a game with a random spawner seeded from cfg.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{}
	g.Reset(cfg)
	return g
}

// NewWithSpawner creates a game that draws shapes from sp.
func NewWithSpawner(sp Spawner) *Game {
	return &Game{spawner: sp, state: NewState()}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Mouse Tetris"
}

// Reset starts a new game with a fresh random spawner.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.spawner = NewRandomSpawner(cfg.Seed)
	g.state = NewState()
	g.tick = 0
}

// Step advances the simulation by one tick.
// Once the game is over the tick counter stops.
func (g *Game) Step(in core.InputDelta) core.StepResult {
	over := g.state.GameOver()
	var res core.StepResult
	g.state, res = g.state.Step(in, g.spawner)
	if !over {
		g.tick++
	}
	return res
}

// State returns a pointer to the current state for read-only access.
// It remains valid until the next Step or Reset.
func (g *Game) State() *State {
	return &g.state
}

// Status returns the current score, level and game-over flag.
func (g *Game) Status() core.GameState {
	return g.state.Status()
}

// Ticks returns the number of steps executed.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Package engine runs the fixed-rate loop that drives a game: it drains
// input, steps the state, renders changed states and hands packed frames
// to a Sink.
package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mousetris/internal/core"
	"github.com/vovakirdan/mousetris/internal/games/tetris"
	"github.com/vovakirdan/mousetris/internal/haptics"
	"github.com/vovakirdan/mousetris/internal/render"
)

// Drainer yields the input accumulated since the previous call.
type Drainer interface {
	Drain() core.InputDelta
}

// Options tune a Scheduler. Zero values select defaults.
type Options struct {
	TickRate int
	Logger   *log.Logger
	Vibrator haptics.Vibrator
}

// Summary describes a finished game.
type Summary struct {
	Score int
	Level int
	Rows  int
	Ticks uint64
}

// Scheduler owns a game for the duration of Run.
type Scheduler struct {
	game     *tetris.Game
	input    Drainer
	renderer *render.Renderer
	sink     Sink
	period   time.Duration
	logger   *log.Logger
	vibrator haptics.Vibrator
}

// New creates a scheduler. The game must not be touched by anyone else
// while Run is in progress.
func New(game *tetris.Game, input Drainer, r *render.Renderer, sink Sink, opts Options) *Scheduler {
	rate := opts.TickRate
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	vib := opts.Vibrator
	if vib == nil {
		vib = haptics.Nop{}
	}
	if sink == nil {
		sink = Discard
	}

	return &Scheduler{
		game:     game,
		input:    input,
		renderer: r,
		sink:     sink,
		period:   time.Second / time.Duration(rate),
		logger:   logger,
		vibrator: vib,
	}
}

// Run executes ticks until the game ends or ctx is cancelled. Tick n is due
// at start + n*period; a late loop runs one tick per iteration without
// catching up. When the game ends the end screen is delivered once and Run
// returns a nil error. On cancellation it returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	var n uint64

	for {
		if err := ctx.Err(); err != nil {
			return s.summary(), err
		}

		deadline := start.Add(time.Duration(n) * s.period)
		if time.Now().Before(deadline) {
			if err := sleep(ctx, s.period/5); err != nil {
				return s.summary(), err
			}
			continue
		}

		res := s.game.Step(s.input.Drain())

		if res.State.GameOver {
			s.logger.Debug("game over", "score", res.State.Score, "level", res.State.Level, "tick", n)
			s.buzz(ctx, haptics.Grand)
			s.display(ctx, s.renderer.DrawGameOver(s.game.State()), n)
			return s.summary(), nil
		}

		s.buzz(ctx, haptics.ForStep(res))
		if res.Changed || n == 0 {
			s.display(ctx, s.renderer.DrawGame(s.game.State()), n)
		}
		n++
	}
}

// display hands a frame to the sink. A failing or panicking sink is logged
// and the game goes on.
func (s *Scheduler) display(ctx context.Context, c *core.Canvas, tick uint64) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("display panicked", "tick", tick, "panic", r)
		}
	}()

	if err := s.sink.Display(ctx, render.Pack(c)); err != nil {
		s.logger.Warn("display failed", "tick", tick, "error", err)
	}
}

func (s *Scheduler) buzz(ctx context.Context, p haptics.Pattern) {
	if p == haptics.None {
		return
	}
	if err := haptics.Play(ctx, s.vibrator, p); err != nil {
		s.logger.Warn("vibration failed", "pattern", p, "error", err)
	}
}

func (s *Scheduler) summary() Summary {
	st := s.game.Status()
	return Summary{
		Score: st.Score,
		Level: st.Level,
		Rows:  st.RowsCleared,
		Ticks: s.game.Ticks(),
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

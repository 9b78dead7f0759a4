// Package haptics defines the vibration capability a peripheral may offer
// and the policies for handling its failures.
package haptics

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mousetris/internal/core"
)

// Vibrator plays the three vibration patterns.
type Vibrator interface {
	ShortBuzz(ctx context.Context) error
	LongBuzz(ctx context.Context) error
	GrandBuzz(ctx context.Context) error
}

// Nop is a Vibrator that does nothing.
type Nop struct{}

func (Nop) ShortBuzz(context.Context) error { return nil }
func (Nop) LongBuzz(context.Context) error  { return nil }
func (Nop) GrandBuzz(context.Context) error { return nil }

// Pattern selects one of the vibrations.
type Pattern int

const (
	None Pattern = iota
	Short
	Long
	Grand
)

func (p Pattern) String() string {
	switch p {
	case Short:
		return "short"
	case Long:
		return "long"
	case Grand:
		return "grand"
	default:
		return "none"
	}
}

// ForStep picks the pattern for a tick: grand on game over, long on a
// four-row clear, short on any smaller clear.
func ForStep(res core.StepResult) Pattern {
	switch {
	case res.State.GameOver:
		return Grand
	case res.RowsRemoved >= 4:
		return Long
	case res.RowsRemoved > 0:
		return Short
	default:
		return None
	}
}

// Play fires pattern p on v.
func Play(ctx context.Context, v Vibrator, p Pattern) error {
	switch p {
	case Short:
		return v.ShortBuzz(ctx)
	case Long:
		return v.LongBuzz(ctx)
	case Grand:
		return v.GrandBuzz(ctx)
	default:
		return nil
	}
}

// Policy decides what happens to vibration errors.
type Policy string

const (
	// PolicyIgnore logs errors and reports success.
	PolicyIgnore Policy = "ignore"
	// PolicyPropagate returns errors to the caller.
	PolicyPropagate Policy = "propagate"
)

// ParsePolicy validates a policy name. Empty means ignore.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyIgnore:
		return PolicyIgnore, nil
	case PolicyPropagate:
		return PolicyPropagate, nil
	}
	return "", fmt.Errorf("haptics: unknown policy %q", s)
}

// Apply wraps v according to p.
func Apply(p Policy, v Vibrator, logger *log.Logger) Vibrator {
	if p == PolicyPropagate {
		return v
	}
	return IgnoreErrors(v, logger)
}

// IgnoreErrors returns a Vibrator that logs failures from v at warn level
// and always succeeds.
func IgnoreErrors(v Vibrator, logger *log.Logger) Vibrator {
	return ignoring{v: v, logger: logger}
}

type ignoring struct {
	v      Vibrator
	logger *log.Logger
}

func (i ignoring) ShortBuzz(ctx context.Context) error {
	i.report(Short, i.v.ShortBuzz(ctx))
	return nil
}

func (i ignoring) LongBuzz(ctx context.Context) error {
	i.report(Long, i.v.LongBuzz(ctx))
	return nil
}

func (i ignoring) GrandBuzz(ctx context.Context) error {
	i.report(Grand, i.v.GrandBuzz(ctx))
	return nil
}

func (i ignoring) report(p Pattern, err error) {
	if err != nil && i.logger != nil {
		i.logger.Warn("vibration failed", "pattern", p, "error", err)
	}
}

package tetris

import (
	"testing"

	"github.com/vovakirdan/mousetris/internal/core"
)

var zeroInput = core.InputDelta{}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{Seed: 12345, TickRate: core.DefaultTickRate}

	g1 := New(cfg)
	g2 := New(cfg)

	for i := 0; i < 600; i++ {
		in := zeroInput
		if i%7 == 0 {
			in.Left = 1
		}
		if i%11 == 0 {
			in.RotateCW = 1
		}
		if i%5 == 0 {
			in.SoftDrop = 2
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestGameRunsToGameOver(t *testing.T) {
	// Squares stacked in the same column fill it after ten pieces.
	g := NewWithSpawner(NewSequenceSpawner(Shapes[1]))

	var res core.StepResult
	locks := 0
	for i := 0; i < 100000 && !res.State.GameOver; i++ {
		res = g.Step(core.InputDelta{SoftDrop: 20})
		if res.Locked {
			locks++
		}
	}

	if !res.State.GameOver {
		t.Fatal("game never ended")
	}
	if locks != 10 {
		t.Errorf("locked %d squares, expected 10", locks)
	}
	if snap := g.Snapshot(); snap.Phase != PhaseGameOver {
		t.Errorf("Phase = %s, expected %s", snap.Phase, PhaseGameOver)
	}
	if g.Status().Score == 0 {
		t.Error("soft drops should have earned points")
	}
}

func TestResetStartsFresh(t *testing.T) {
	g := New(core.RuntimeConfig{Seed: 1})
	for i := 0; i < 50; i++ {
		g.Step(core.InputDelta{SoftDrop: 3})
	}
	g.Reset(core.RuntimeConfig{Seed: 1})

	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.Locked != 0 || snap.Phase != PhaseNoActivePiece {
		t.Errorf("Reset() left state behind: %+v", snap)
	}
	if snap.FallDelay != 11 {
		t.Errorf("FallDelay = %d, expected 11", snap.FallDelay)
	}
}

func TestStepAfterGameOverIsFrozen(t *testing.T) {
	g := NewWithSpawner(NewSequenceSpawner(Shapes[1]))
	for i := 0; i < 100000 && !g.Status().GameOver; i++ {
		g.Step(core.InputDelta{SoftDrop: 20})
	}
	if !g.Status().GameOver {
		t.Fatal("game never ended")
	}

	before := g.Snapshot()
	for i := 0; i < 5; i++ {
		g.Step(core.InputDelta{Left: 1, RotateCW: 1, SoftDrop: 1})
	}

	if after := g.Snapshot(); after != before {
		t.Errorf("snapshot changed after game over:\n%+v\n%+v", before, after)
	}
	if g.Ticks() != before.Tick {
		t.Errorf("Ticks() = %d, expected %d", g.Ticks(), before.Tick)
	}
}

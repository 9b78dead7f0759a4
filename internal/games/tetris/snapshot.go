package tetris

// Phase names the state machine's current state.
type Phase string

const (
	PhaseNoActivePiece Phase = "no_active_piece"
	PhaseFalling       Phase = "falling"
	PhaseGameOver      Phase = "game_over"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       int
	Level       int
	RowsCleared int
	FallDelay   int
	SoftDropped int
	ActiveX     int
	ActiveY     int
	Locked      int // Number of locked cells on the board
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.state
	phase := PhaseNoActivePiece
	switch {
	case s.gameOver:
		phase = PhaseGameOver
	case s.hasActive:
		phase = PhaseFalling
	}

	return Snapshot{
		Tick:        g.tick,
		Phase:       phase,
		Score:       s.score,
		Level:       s.level,
		RowsCleared: s.rowsCleared,
		FallDelay:   s.fallDelay,
		SoftDropped: s.softDropped,
		ActiveX:     s.x,
		ActiveY:     s.y,
		Locked:      s.board.Count(),
	}
}

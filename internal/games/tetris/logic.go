package tetris

import "github.com/vovakirdan/mousetris/internal/core"

// Step advances the state by one tick and returns the new state.
// Illegal moves are dropped silently; the only terminal condition is a
// spawn with no legal placement.
func (s State) Step(in core.InputDelta, sp Spawner) (State, core.StepResult) {
	var res core.StepResult
	if s.gameOver {
		res.State = s.Status()
		return s, res
	}

	if !s.hasActive {
		res.Changed = true
		if !s.spawn(sp.Next()) {
			s.gameOver = true
			res.State = s.Status()
			return s, res
		}
	}

	if s.applyInput(in) {
		res.Changed = true
	}

	s.fallDelay--
	if s.fallDelay > 0 {
		res.State = s.Status()
		return s, res
	}

	if s.Legal(s.active, s.x, s.y+1) {
		s.y++
	} else {
		res.Locked = true
		res.RowsRemoved = s.lock()
	}
	s.fallDelay = FallDelayFor(s.level)
	res.Changed = true
	res.State = s.Status()
	return s, res
}

// spawn places a new piece at the top of the board.
// Returns false when the spawn position is already blocked.
func (s *State) spawn(shape Shape) bool {
	p := NewPiece(shape)
	x, y := SpawnX, -shape.MinRow()
	if !s.Legal(p, x, y) {
		return false
	}
	s.active, s.x, s.y, s.hasActive = p, x, y, true
	return true
}

// applyInput applies the tick's actions in fixed order: left, right, rotate,
// soft drop. Each kind stops at its first illegal unit.
func (s *State) applyInput(in core.InputDelta) bool {
	if in.IsZero() {
		return false
	}
	changed := false

	for i := 0; i < in.Left; i++ {
		if !s.Legal(s.active, s.x-1, s.y) {
			break
		}
		s.x--
		changed = true
	}
	for i := 0; i < in.Right; i++ {
		if !s.Legal(s.active, s.x+1, s.y) {
			break
		}
		s.x++
		changed = true
	}
	for i := 0; i < in.RotateCW; i++ {
		rotated := s.active.Rotate()
		if !s.Legal(rotated, s.x, s.y) {
			break
		}
		s.active = rotated
		changed = true
	}
	for i := 0; i < in.SoftDrop; i++ {
		if !s.Legal(s.active, s.x, s.y+1) {
			break
		}
		s.y++
		s.softDropped++
		changed = true
	}
	return changed
}

// Legal reports whether p anchored at (x, y) lies inside the board without
// touching a locked cell. The active piece's own footprint is not considered.
func (s *State) Legal(p Piece, x, y int) bool {
	for tx := 0; tx < p.size; tx++ {
		for ty := 0; ty < p.size; ty++ {
			if !p.cells[tx][ty] {
				continue
			}
			bx, by := x+tx, y+ty
			if bx < 0 || bx >= BoardW {
				return false
			}
			if by < 0 || by >= BoardH {
				return false
			}
			if s.board[bx][by] {
				return false
			}
		}
	}
	return true
}

// lock merges the active piece into the board, clears full rows and updates
// score and level. Returns the number of rows removed.
func (s *State) lock() int {
	for _, c := range s.active.Cells() {
		s.board[s.x+c.X][s.y+c.Y] = true
	}
	s.active, s.hasActive = Piece{}, false

	var removed int
	s.board, removed = s.board.ClearFullRows()
	s.rowsCleared += removed
	s.score += ScoreFor(removed, s.level, s.softDropped)
	s.level = LevelFor(s.rowsCleared)
	s.softDropped = 0
	return removed
}

// ClearFullRows returns the board with every full row removed, surviving rows
// shifted down in their original order, and the number of rows removed.
func (b Board) ClearFullRows() (Board, int) {
	var next Board
	write := BoardH - 1
	for read := BoardH - 1; read >= 0; read-- {
		if b.RowFull(read) {
			continue
		}
		for x := 0; x < BoardW; x++ {
			next[x][write] = b[x][read]
		}
		write--
	}
	// Rows 0..write stay empty, one for each removed row.
	return next, write + 1
}

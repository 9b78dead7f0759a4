package tetris

import "github.com/vovakirdan/mousetris/internal/core"

// Board geometry and progression constants.
const (
	BoardW = 10
	BoardH = 20

	// SpawnX is the column of a new piece's bounding box.
	SpawnX = 3

	initialFallDelay = 11
	MaxLevel         = initialFallDelay - 1
	rowsPerLevel     = 10
)

// baseScores is indexed by the number of rows removed in a single lock.
var baseScores = [...]int{0, 40, 100, 300, 1200}

// Board holds the locked cells, indexed [x][y] with the origin top-left.
type Board [BoardW][BoardH]bool

// Occupied reports whether (x, y) holds a locked cell.
// Cells outside the board are never occupied.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= BoardW || y < 0 || y >= BoardH {
		return false
	}
	return b[x][y]
}

// RowFull reports whether every column of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for x := 0; x < BoardW; x++ {
		if !b[x][y] {
			return false
		}
	}
	return true
}

// Count returns the number of locked cells.
func (b *Board) Count() int {
	n := 0
	for x := range b {
		for y := range b[x] {
			if b[x][y] {
				n++
			}
		}
	}
	return n
}

// State is the complete simulation state. It is a value: Step returns a new
// State and never mutates its receiver.
type State struct {
	board Board

	active    Piece
	hasActive bool
	x, y      int // Anchor: top-left of the active piece's rotation space

	fallDelay   int
	score       int
	level       int
	rowsCleared int
	softDropped int // Soft-drop rows since the last lock
	gameOver    bool
}

// NewState returns the state of a fresh game.
func NewState() State {
	return State{fallDelay: initialFallDelay}
}

// Board returns a copy of the locked cells.
func (s *State) Board() Board {
	return s.board
}

// Active returns the falling piece and its anchor.
// ok is false between a lock and the next spawn.
func (s *State) Active() (p Piece, x, y int, ok bool) {
	return s.active, s.x, s.y, s.hasActive
}

// Score returns the cumulative score.
func (s *State) Score() int {
	return s.score
}

// Level returns the current level.
func (s *State) Level() int {
	return s.level
}

// RowsCleared returns the cumulative number of removed rows.
func (s *State) RowsCleared() int {
	return s.rowsCleared
}

// FallDelay returns the ticks left until the next automatic descent.
func (s *State) FallDelay() int {
	return s.fallDelay
}

// SoftDropped returns the soft-drop rows accumulated since the last lock.
func (s *State) SoftDropped() int {
	return s.softDropped
}

// GameOver reports whether a spawn has failed.
func (s *State) GameOver() bool {
	return s.gameOver
}

// Status summarizes the state for the platform layer.
func (s *State) Status() core.GameState {
	return core.GameState{
		Score:       s.score,
		Level:       s.level,
		RowsCleared: s.rowsCleared,
		GameOver:    s.gameOver,
	}
}

// LevelFor returns the level reached after clearing rows in total.
func LevelFor(rows int) int {
	return min(rows/rowsPerLevel, MaxLevel)
}

// FallDelayFor returns the ticks between automatic descents at a level.
func FallDelayFor(level int) int {
	return max(1, initialFallDelay-level)
}

// ScoreFor returns the points awarded for a lock.
func ScoreFor(rowsRemoved, level, softDropped int) int {
	return baseScores[rowsRemoved]*(level+1) + softDropped
}

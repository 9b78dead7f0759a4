package tetris

// maxPieceSize is the largest rotation space in the catalog.
const maxPieceSize = 4

// Piece is an occupancy matrix for the current orientation of a falling
// piece, indexed [x][y] within its Size x Size rotation space.
type Piece struct {
	size  int
	cells [maxPieceSize][maxPieceSize]bool
}

// NewPiece builds a piece in spawn orientation.
func NewPiece(s Shape) Piece {
	p := Piece{size: s.Size}
	for _, c := range s.Cells {
		p.cells[c.X][c.Y] = true
	}
	return p
}

// Size returns the side of the rotation space.
func (p Piece) Size() int {
	return p.size
}

// Filled reports whether the cell (x, y) of the rotation space is occupied.
func (p Piece) Filled(x, y int) bool {
	if x < 0 || x >= p.size || y < 0 || y >= p.size {
		return false
	}
	return p.cells[x][y]
}

// Cells returns the occupied offsets in column-major order.
func (p Piece) Cells() []Point {
	pts := make([]Point, 0, 4)
	for x := 0; x < p.size; x++ {
		for y := 0; y < p.size; y++ {
			if p.cells[x][y] {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Rotate returns the piece turned 90 degrees clockwise within its space.
func (p Piece) Rotate() Piece {
	r := Piece{size: p.size}
	n := p.size
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			r.cells[x][y] = p.cells[y][n-1-x]
		}
	}
	return r
}

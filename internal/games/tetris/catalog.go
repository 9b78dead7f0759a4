package tetris

import "math/rand"

// Point is a cell offset inside a piece's rotation space.
type Point struct {
	X, Y int
}

// Shape is an immutable piece definition: the side of its square rotation
// space and the cells it occupies at spawn orientation.
type Shape struct {
	Name  string
	Size  int
	Cells []Point
}

// MinRow returns the smallest occupied row offset of the shape.
func (s Shape) MinRow() int {
	minY := s.Size
	for _, c := range s.Cells {
		minY = min(minY, c.Y)
	}
	return minY
}

// Shapes is the catalog of the seven pieces.
var Shapes = [...]Shape{
	{Name: "line", Size: 4, Cells: []Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
	{Name: "square", Size: 2, Cells: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{Name: "l", Size: 3, Cells: []Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
	{Name: "l_mirror", Size: 3, Cells: []Point{{0, 1}, {1, 1}, {2, 1}, {0, 2}}},
	{Name: "s", Size: 3, Cells: []Point{{0, 1}, {1, 1}, {1, 0}, {2, 0}}},
	{Name: "z", Size: 3, Cells: []Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	{Name: "t", Size: 3, Cells: []Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
}

// ShapeByName looks up a catalog shape.
func ShapeByName(name string) (Shape, bool) {
	for _, s := range Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// Spawner chooses the shape of each new piece.
type Spawner interface {
	Next() Shape
}

// RandomSpawner picks shapes uniformly at random.
type RandomSpawner struct {
	rng *rand.Rand
}

// NewRandomSpawner creates a spawner seeded for reproducible sequences.
func NewRandomSpawner(seed int64) *RandomSpawner {
	return &RandomSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen catalog shape.
func (s *RandomSpawner) Next() Shape {
	return Shapes[s.rng.Intn(len(Shapes))]
}

// SequenceSpawner replays a fixed list of shapes, cycling when exhausted.
// Useful for scripted scenarios and tests.
type SequenceSpawner struct {
	shapes []Shape
	next   int
}

// NewSequenceSpawner creates a spawner that returns shapes in order.
func NewSequenceSpawner(shapes ...Shape) *SequenceSpawner {
	return &SequenceSpawner{shapes: shapes}
}

// Next returns the next shape in the sequence.
func (s *SequenceSpawner) Next() Shape {
	shape := s.shapes[s.next%len(s.shapes)]
	s.next++
	return shape
}

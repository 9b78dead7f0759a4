package core

// InputDelta is the input accumulated since the previous tick.
// Every field is a count of discrete unit actions.
type InputDelta struct {
	Left     int // Left clicks: shift one column left each
	Right    int // Right clicks: shift one column right each
	RotateCW int // Scroll-up units: rotate 90 degrees clockwise each
	SoftDrop int // Scroll-down units: drop one row each
}

// IsZero reports whether the delta carries no actions.
func (d InputDelta) IsZero() bool {
	return d == InputDelta{}
}

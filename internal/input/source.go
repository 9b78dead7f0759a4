package input

import "context"

// Kind identifies a pointer event.
type Kind int

const (
	KindLeftPress Kind = iota
	KindRightPress
	KindWheel
)

// String returns a human-readable name for the event kind.
func (k Kind) String() string {
	switch k {
	case KindLeftPress:
		return "LeftPress"
	case KindRightPress:
		return "RightPress"
	case KindWheel:
		return "Wheel"
	default:
		return "Unknown"
	}
}

// Event is one discrete pointer event.
type Event struct {
	Kind Kind
	// Delta is the wheel rotation for KindWheel; negative scrolls up.
	Delta int
}

// ChanSource is a Source fed by pushing events onto a buffered channel.
// The UI layer pushes; an attached aggregator consumes.
type ChanSource struct {
	events chan Event
}

// NewChanSource creates a channel source.
// bufferSize controls how many events can queue before Push drops them.
func NewChanSource(bufferSize int) *ChanSource {
	if bufferSize < 1 {
		bufferSize = 64 // Default buffer size
	}
	return &ChanSource{events: make(chan Event, bufferSize)}
}

// Push queues an event. It never blocks; when the buffer is full the event
// is dropped and Push returns false.
func (s *ChanSource) Push(evt Event) bool {
	select {
	case s.events <- evt:
		return true
	default:
		return false
	}
}

// Listen forwards queued events to ev until ctx is cancelled.
func (s *ChanSource) Listen(ctx context.Context, ev Events) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt := <-s.events:
			Dispatch(evt, ev)
		}
	}
}

// Dispatch applies a single event to ev.
func Dispatch(evt Event, ev Events) {
	switch evt.Kind {
	case KindLeftPress:
		ev.LeftClick()
	case KindRightPress:
		ev.RightClick()
	case KindWheel:
		ev.Scroll(evt.Delta)
	}
}

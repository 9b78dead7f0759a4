// Package input bridges an asynchronous pointer-event source and the tick
// loop. Producers bump per-axis counters from any goroutine; the tick loop
// drains them once per tick.
package input

import (
	"context"
	"errors"
	"sync"

	"github.com/vovakirdan/mousetris/internal/core"
)

// Events is the producer side of the aggregator.
type Events interface {
	LeftClick()
	RightClick()
	// Scroll records a wheel rotation; negative values scroll up.
	Scroll(delta int)
}

// Source delivers pointer events until ctx is cancelled.
type Source interface {
	Listen(ctx context.Context, ev Events) error
}

// counter is one independently locked input axis.
type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) add(n int) {
	c.mu.Lock()
	c.n += n
	c.mu.Unlock()
}

func (c *counter) take() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.n
	c.n = 0
	return n
}

// Aggregator accumulates pointer events between ticks.
// Each axis has its own lock, so a burst on one never blocks another.
type Aggregator struct {
	left       counter
	right      counter
	scrollUp   counter
	scrollDown counter

	mu     sync.Mutex // guards the attachment below
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// NewAggregator creates an aggregator with all counters at zero.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// LeftClick records one left button press.
func (a *Aggregator) LeftClick() {
	a.left.add(1)
}

// RightClick records one right button press.
func (a *Aggregator) RightClick() {
	a.right.add(1)
}

// Scroll records a wheel rotation, split into up and down units.
func (a *Aggregator) Scroll(delta int) {
	switch {
	case delta < 0:
		a.scrollUp.add(-delta)
	case delta > 0:
		a.scrollDown.add(delta)
	}
}

// Drain returns the counts accumulated since the previous drain and resets
// them to zero.
func (a *Aggregator) Drain() core.InputDelta {
	return core.InputDelta{
		Left:     a.left.take(),
		Right:    a.right.take(),
		RotateCW: a.scrollUp.take(),
		SoftDrop: a.scrollDown.take(),
	}
}

// reset zeroes every counter.
func (a *Aggregator) reset() {
	a.left.take()
	a.right.take()
	a.scrollUp.take()
	a.scrollDown.take()
}

// Attach zeroes the counters and starts src feeding this aggregator.
// Attaching while a source is already attached is a no-op.
func (a *Aggregator) Attach(ctx context.Context, src Source) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		return
	}
	a.reset()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.cancel, a.done, a.err = cancel, done, nil

	go func() {
		defer close(done)
		err := src.Listen(ctx, a)
		a.mu.Lock()
		a.err = err
		a.mu.Unlock()
	}()
}

// Attached reports whether a source is currently attached.
func (a *Aggregator) Attached() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

// Detach stops the attached source and waits for it to return.
// It returns the source's error, if any; context cancellation is not an error.
func (a *Aggregator) Detach() error {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done

	a.mu.Lock()
	defer a.mu.Unlock()
	err := a.err
	a.cancel, a.done, a.err = nil, nil, nil
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

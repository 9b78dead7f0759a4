package engine

import (
	"context"
	"errors"

	"github.com/vovakirdan/mousetris/internal/render"
)

// Sink receives packed frames. Display is called on the tick goroutine and
// must not retain f beyond the call unless it copies it.
type Sink interface {
	Display(ctx context.Context, f render.Frame) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, f render.Frame) error

// Display calls fn(ctx, f).
func (fn SinkFunc) Display(ctx context.Context, f render.Frame) error {
	return fn(ctx, f)
}

// Discard drops every frame.
var Discard Sink = SinkFunc(func(context.Context, render.Frame) error { return nil })

// Tee delivers each frame to every sink in order. All sinks are called even
// if some fail; their errors are joined.
func Tee(sinks ...Sink) Sink {
	switch len(sinks) {
	case 0:
		return Discard
	case 1:
		return sinks[0]
	}
	return SinkFunc(func(ctx context.Context, f render.Frame) error {
		var errs []error
		for _, s := range sinks {
			if err := s.Display(ctx, f); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/vovakirdan/mousetris/internal/render"
)

// ErrFramesClosed is returned by Display after Close.
var ErrFramesClosed = errors.New("tui: frame channel closed")

// FrameChannel is an engine sink that hands frames to the Bubble Tea loop.
// It never blocks the tick goroutine: when the buffer is full the oldest
// frame is dropped, so the preview always catches up to the latest state.
type FrameChannel struct {
	mu     sync.Mutex
	frames chan render.Frame
	closed bool
}

// NewFrameChannel creates a frame channel.
// bufferSize controls how many frames can be buffered before dropping.
func NewFrameChannel(bufferSize int) *FrameChannel {
	if bufferSize < 1 {
		bufferSize = 4 // Default buffer size
	}
	return &FrameChannel{frames: make(chan render.Frame, bufferSize)}
}

// Display queues f for the preview.
func (c *FrameChannel) Display(_ context.Context, f render.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrFramesClosed
	}

	select {
	case c.frames <- f:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-c.frames:
		default:
		}
		select {
		case c.frames <- f:
		default:
		}
	}
	return nil
}

// Frames returns the channel the preview reads from. It is closed by Close
// after any buffered frames.
func (c *FrameChannel) Frames() <-chan render.Frame {
	return c.frames
}

// Close stops accepting frames.
// Safe to call multiple times.
func (c *FrameChannel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.frames)
	}
}

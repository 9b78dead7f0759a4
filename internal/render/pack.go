package render

import "github.com/vovakirdan/mousetris/internal/core"

// FrameSize is the packed length of one 128x36 frame: one bit per pixel.
const FrameSize = CanvasW * CanvasH / 8

// Frame is one packed display buffer in the peripheral's layout.
type Frame [FrameSize]byte

// BitIndex maps canvas pixel (cx, cy) to its bit in a Frame.
// The device is the canvas turned 90 degrees: canvas rows become device
// columns and canvas columns become device rows in reverse.
func BitIndex(cx, cy int) int {
	x := cy
	y := CanvasW - cx - 1
	return x + y*CanvasH
}

// Pack serializes a CanvasW x CanvasH canvas, most significant bit first.
func Pack(c *core.Canvas) Frame {
	var f Frame
	for x := 0; x < CanvasH; x++ {
		for y := 0; y < CanvasW; y++ {
			if !c.Get(CanvasW-y-1, x) {
				continue
			}
			bit := x + y*CanvasH
			f[bit/8] |= 0x80 >> (bit % 8)
		}
	}
	return f
}

// Bit reports whether bit b (0 = MSB of byte 0) is set.
func (f *Frame) Bit(b int) bool {
	return f[b/8]&(0x80>>(b%8)) != 0
}

// Unpack rebuilds the canvas a frame was packed from.
func Unpack(f Frame) *core.Canvas {
	c := core.NewCanvas(CanvasW, CanvasH)
	for cx := 0; cx < CanvasW; cx++ {
		for cy := 0; cy < CanvasH; cy++ {
			if f.Bit(BitIndex(cx, cy)) {
				c.Set(cx, cy, true)
			}
		}
	}
	return c
}

// Ints returns the frame as the integer array the display protocol expects.
func (f *Frame) Ints() []int {
	out := make([]int, len(f))
	for i, b := range f {
		out[i] = int(b)
	}
	return out
}

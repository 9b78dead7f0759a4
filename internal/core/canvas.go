package core

import (
	"image"
	"image/color"
	"strings"
)

// Canvas is a monochrome pixel buffer.
// The renderer draws into it in logical orientation; packing into the
// device layout happens elsewhere.
type Canvas struct {
	width  int
	height int
	pixels []bool // column-major: index x*height + y
}

// NewCanvas creates a cleared canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas area as a Rect at the origin.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// Clear turns every pixel off.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Set turns the pixel at (x, y) on or off.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, on bool) {
	if !c.Bounds().Contains(x, y) {
		return
	}
	c.pixels[x*c.height+y] = on
}

// Get returns whether the pixel at (x, y) is on.
// Returns false for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) bool {
	if !c.Bounds().Contains(x, y) {
		return false
	}
	return c.pixels[x*c.height+y]
}

// Count returns the number of pixels that are on.
func (c *Canvas) Count() int {
	n := 0
	for _, on := range c.pixels {
		if on {
			n++
		}
	}
	return n
}

// DrawRect draws a 1-pixel outline around r.
func (c *Canvas) DrawRect(r Rect) {
	if r.Empty() {
		return
	}
	for x := r.X; x < r.Right(); x++ {
		c.Set(x, r.Y, true)
		c.Set(x, r.Bottom()-1, true)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		c.Set(r.X, y, true)
		c.Set(r.Right()-1, y, true)
	}
}

// FillRect turns on every pixel inside r.
func (c *Canvas) FillRect(r Rect) {
	for x := r.X; x < r.Right(); x++ {
		for y := r.Y; y < r.Bottom(); y++ {
			c.Set(x, y, true)
		}
	}
}

// DrawImage copies the src area of img onto the canvas with its top-left
// corner at (x, y). A pixel is turned on iff its colour equals fg; other
// pixels leave the canvas untouched.
func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, fg color.Color, x, y int) {
	src = src.Intersect(img.Bounds())
	fr, fgG, fb, fa := fg.RGBA()
	for px := src.Min.X; px < src.Max.X; px++ {
		for py := src.Min.Y; py < src.Max.Y; py++ {
			r, g, b, a := img.At(px, py).RGBA()
			if r == fr && g == fgG && b == fb && a == fa {
				c.Set(x+px-src.Min.X, y+py-src.Min.Y, true)
			}
		}
	}
}

// String renders the canvas row by row, 'X' for on and '.' for off.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.width + 1) * c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			if c.Get(x, y) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

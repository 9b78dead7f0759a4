package core

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(36, 128)

	if c.Width() != 36 {
		t.Errorf("Width() = %d, expected 36", c.Width())
	}
	if c.Height() != 128 {
		t.Errorf("Height() = %d, expected 128", c.Height())
	}
	if c.Count() != 0 {
		t.Errorf("New canvas should be blank, got %d pixels on", c.Count())
	}
}

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(5, 7, true)
	if !c.Get(5, 7) {
		t.Error("Get(5, 7) = false, expected true")
	}
	if c.Get(7, 5) {
		t.Error("Get(7, 5) = true, axes must not be swapped")
	}

	// Out of bounds should be silent
	c.Set(-1, 0, true)
	c.Set(100, 0, true)
	c.Set(0, -1, true)
	c.Set(0, 100, true)

	if c.Count() != 1 {
		t.Errorf("Count() = %d after out-of-bounds writes, expected 1", c.Count())
	}
	if c.Get(-1, 0) || c.Get(100, 0) {
		t.Error("Out of bounds Get should return false")
	}

	c.Set(5, 7, false)
	if c.Get(5, 7) {
		t.Error("Set(false) should turn the pixel off")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(c.Bounds())
	if c.Count() != 100 {
		t.Fatalf("FillRect(Bounds) lit %d pixels, expected 100", c.Count())
	}

	c.Clear()
	if c.Count() != 0 {
		t.Errorf("Clear() left %d pixels on", c.Count())
	}
}

func TestCanvasDrawRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawRect(NewRect(1, 1, 4, 3))

	expected := strings.Join([]string{
		"..........",
		".XXXX.....",
		".X..X.....",
		".XXXX.....",
		"..........",
	}, "\n")
	got := strings.Join(strings.Split(c.String(), "\n")[:5], "\n")
	if got != expected {
		t.Errorf("DrawRect produced:\n%s\nexpected:\n%s", got, expected)
	}
	if c.Count() != 10 {
		t.Errorf("Count() = %d, expected 10 outline pixels", c.Count())
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(NewRect(2, 3, 3, 3))

	if c.Count() != 9 {
		t.Errorf("Count() = %d, expected 9", c.Count())
	}
	for x := 2; x < 5; x++ {
		for y := 3; y < 6; y++ {
			if !c.Get(x, y) {
				t.Errorf("pixel (%d, %d) should be on", x, y)
			}
		}
	}
}

func TestCanvasDrawImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	img.SetGray(2, 0, color.Gray{Y: 0})
	img.SetGray(3, 1, color.Gray{Y: 0})

	c := NewCanvas(10, 10)
	// Copy only the right half of the image.
	c.DrawImage(img, image.Rect(2, 0, 4, 2), color.Black, 5, 5)

	if c.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", c.Count())
	}
	if !c.Get(5, 5) || !c.Get(6, 6) {
		t.Errorf("expected pixels at (5,5) and (6,6), got:\n%s", c.String())
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0, true)
	c.Set(2, 1, true)

	result := c.String()
	expected := "X..\n..X"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

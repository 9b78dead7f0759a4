package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mousetris/internal/core"
)

func TestFrameSize(t *testing.T) {
	assert.Equal(t, 576, FrameSize)
	assert.Len(t, Frame{}, 576)
}

func TestBitIndex(t *testing.T) {
	cases := []struct {
		cx, cy int
		bit    int
	}{
		{0, 0, 35 * 128},
		{35, 0, 0},
		{35, 127, 127},
		{0, 127, 35*128 + 127},
		{34, 1, 128 + 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.bit, BitIndex(tc.cx, tc.cy), "BitIndex(%d, %d)", tc.cx, tc.cy)
	}
}

func TestPackSinglePixel(t *testing.T) {
	c := core.NewCanvas(CanvasW, CanvasH)
	c.Set(0, 0, true)

	f := Pack(c)
	assert.Equal(t, byte(0x80), f[560])
	for i, b := range f {
		if i != 560 {
			require.Zerof(t, b, "byte %d", i)
		}
	}
}

func TestPackBitOrder(t *testing.T) {
	c := core.NewCanvas(CanvasW, CanvasH)
	c.Set(35, 0, true)   // bit 0
	c.Set(35, 7, true)   // bit 7
	c.Set(35, 127, true) // bit 127

	f := Pack(c)
	assert.Equal(t, byte(0x81), f[0])
	assert.Equal(t, byte(0x01), f[15])
	assert.True(t, f.Bit(0))
	assert.True(t, f.Bit(7))
	assert.False(t, f.Bit(1))
}

func TestPackEmptyCanvas(t *testing.T) {
	assert.Equal(t, Frame{}, Pack(core.NewCanvas(CanvasW, CanvasH)))
}

func TestPackFullCanvas(t *testing.T) {
	c := core.NewCanvas(CanvasW, CanvasH)
	c.FillRect(c.Bounds())

	f := Pack(c)
	for i, b := range f {
		require.Equalf(t, byte(0xff), b, "byte %d", i)
	}
}

func TestUnpackRoundTrip(t *testing.T) {
	c := core.NewCanvas(CanvasW, CanvasH)
	c.DrawRect(core.NewRect(0, 0, 32, 62))
	c.FillRect(core.NewRect(10, 1, 3, 3))
	c.Set(35, 127, true)

	got := Unpack(Pack(c))
	assert.Equal(t, c.String(), got.String())
}

func TestFrameInts(t *testing.T) {
	var f Frame
	f[0] = 0xff
	f[575] = 0x01

	ints := f.Ints()
	require.Len(t, ints, FrameSize)
	assert.Equal(t, 255, ints[0])
	assert.Equal(t, 1, ints[575])
	assert.Equal(t, 0, ints[1])
}

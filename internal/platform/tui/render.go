package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mousetris/internal/render"
)

// Physical display size, landscape as mounted on the mouse.
const (
	displayW = render.CanvasH
	displayH = render.CanvasW
)

var (
	pixelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// halfBlocks indexes glyphs by (top, bottom) pixel state.
var halfBlocks = [2][2]rune{
	{' ', '▄'},
	{'▀', '█'},
}

// RenderFrame draws a packed frame as it appears on the device, two pixel
// rows per text line.
func RenderFrame(f render.Frame) string {
	var sb strings.Builder
	sb.Grow((displayW*3 + 1) * displayH / 2)

	for y := 0; y < displayH; y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < displayW; x++ {
			top := f.Bit(x + y*displayW)
			bottom := y+1 < displayH && f.Bit(x+(y+1)*displayW)
			sb.WriteRune(halfBlocks[b2i(top)][b2i(bottom)])
		}
	}
	return sb.String()
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// renderPanel wraps a rendered frame in the styled border.
func renderPanel(f render.Frame) string {
	return frameStyle.Render(pixelStyle.Render(RenderFrame(f)))
}

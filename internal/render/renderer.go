// Package render projects game state onto the peripheral's 36x128
// monochrome canvas and packs it into the device's byte layout.
package render

import (
	"image"
	"strconv"

	"github.com/vovakirdan/mousetris/internal/core"
	"github.com/vovakirdan/mousetris/internal/games/tetris"
)

// Canvas geometry. The display is modelled tall and thin.
const (
	CanvasW = 36  // Short axis
	CanvasH = 128 // Long axis

	BlockSize   = 3
	BorderWidth = 1

	// MaxScore is the largest score that fits in six digits.
	MaxScore = 999999

	labelPadding    = 2
	gameOverPadding = 20
	levelInset      = 2
)

// Renderer draws game compositions. It reuses one canvas, so a returned
// canvas is only valid until the next Draw call.
type Renderer struct {
	res    Resources
	canvas *core.Canvas
}

// New creates a renderer over validated resources.
func New(res Resources) (*Renderer, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		res:    res,
		canvas: core.NewCanvas(CanvasW, CanvasH),
	}, nil
}

// boardFrame is the outline around the playfield.
func boardFrame() core.Rect {
	return core.NewRect(0, 0,
		tetris.BoardW*BlockSize+BorderWidth*2,
		tetris.BoardH*BlockSize+BorderWidth*2)
}

// cellRect is the canvas area of board cell (x, y).
func cellRect(x, y int) core.Rect {
	return core.NewRect(x*BlockSize+BorderWidth, y*BlockSize+BorderWidth, BlockSize, BlockSize)
}

// DrawGame renders the playfield: the frame, the falling piece as filled
// blocks, locked cells as outlined blocks, and the score below.
func (r *Renderer) DrawGame(st *tetris.State) *core.Canvas {
	c := r.canvas
	c.Clear()

	c.DrawRect(boardFrame())

	if p, ax, ay, ok := st.Active(); ok {
		for _, cell := range p.Cells() {
			c.FillRect(cellRect(ax+cell.X, ay+cell.Y))
		}
	}

	board := st.Board()
	for x := 0; x < tetris.BoardW; x++ {
		for y := 0; y < tetris.BoardH; y++ {
			if board[x][y] {
				c.DrawRect(cellRect(x, y))
			}
		}
	}

	scoreY := (tetris.BoardH + 2) * BlockSize
	r.drawImage(r.res.ScoreLabel, 0, scoreY)
	r.drawScore(st.Score(), scoreY+r.res.ScoreLabel.Bounds().Dy()+labelPadding)

	return c
}

// DrawGameOver renders the end screen: banner, score and level.
func (r *Renderer) DrawGameOver(st *tetris.State) *core.Canvas {
	c := r.canvas
	c.Clear()

	y := 0
	r.drawImage(r.res.GameOver, 0, y)
	y += r.res.GameOver.Bounds().Dy() + gameOverPadding

	r.drawImage(r.res.ScoreLabel, 0, y)
	y += r.res.ScoreLabel.Bounds().Dy() + labelPadding
	r.drawScore(st.Score(), y)
	y += GlyphH + labelPadding

	r.drawImage(r.res.LevelLabel, 0, y)
	digits := strconv.Itoa(st.Level())
	r.drawNumber(digits, CanvasW-levelInset-len(digits)*GlyphW, y+r.res.LevelLabel.Bounds().Dy()+labelPadding)

	return c
}

// drawScore draws the score right-aligned to the canvas edge.
func (r *Renderer) drawScore(score, y int) {
	digits := strconv.Itoa(core.Clamp(score, 0, MaxScore))
	r.drawNumber(digits, CanvasW-len(digits)*GlyphW, y)
}

func (r *Renderer) drawNumber(digits string, x, y int) {
	for i, ch := range digits {
		d := int(ch - '0')
		r.canvas.DrawImage(r.res.Glyphs, r.res.glyph(d), r.res.Foreground, x+i*GlyphW, y)
	}
}

func (r *Renderer) drawImage(img image.Image, x, y int) {
	r.canvas.DrawImage(img, img.Bounds(), r.res.Foreground, x, y)
}

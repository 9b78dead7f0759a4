package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Glyph sheet geometry: ten digit tiles laid out left to right.
const (
	GlyphW      = 6
	GlyphH      = 12
	glyphDigits = 10
)

// Resources are the pre-decoded, read-only images the renderer draws.
// A pixel belongs to an image's foreground iff it equals Foreground.
type Resources struct {
	Glyphs     image.Image // Digit sheet, at least 60x12
	ScoreLabel image.Image
	LevelLabel image.Image
	GameOver   image.Image // Banner for the end screen
	Foreground color.Color
}

// ErrMissingResource is returned when a required image is nil.
var ErrMissingResource = errors.New("render: missing resource")

// Validate checks that every image is present and the glyph sheet is large
// enough to hold all ten digits.
func (r Resources) Validate() error {
	for name, img := range map[string]image.Image{
		"glyphs":      r.Glyphs,
		"score label": r.ScoreLabel,
		"level label": r.LevelLabel,
		"game over":   r.GameOver,
	} {
		if img == nil {
			return fmt.Errorf("%w: %s", ErrMissingResource, name)
		}
	}
	if r.Foreground == nil {
		return fmt.Errorf("%w: foreground colour", ErrMissingResource)
	}

	b := r.Glyphs.Bounds()
	if b.Dx() < GlyphW*glyphDigits || b.Dy() < GlyphH {
		return fmt.Errorf("render: glyph sheet is %dx%d, need at least %dx%d",
			b.Dx(), b.Dy(), GlyphW*glyphDigits, GlyphH)
	}
	return nil
}

// glyph returns the sheet area holding digit d.
func (r Resources) glyph(d int) image.Rectangle {
	min := r.Glyphs.Bounds().Min
	return image.Rect(min.X+d*GlyphW, min.Y, min.X+(d+1)*GlyphW, min.Y+GlyphH)
}

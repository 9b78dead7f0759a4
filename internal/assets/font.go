// Package assets supplies the renderer's read-only images: a built-in set
// drawn from bitmap art, or sheets decoded from disk.
package assets

import (
	"image"
	"image/color"
	"strings"

	"github.com/vovakirdan/mousetris/internal/render"
)

// Palette used by every built-in image; index 1 is the foreground.
var palette = color.Palette{color.White, color.Black}

// Foreground is the colour of lit pixels in the built-in images.
var Foreground color.Color = color.Black

// digitArt holds the 5x10 body of each digit; bitmap pads it into a 6x12 tile.
var digitArt = [10][]string{
	{".###.", "#...#", "#...#", "#..##", "#.#.#", "##..#", "#...#", "#...#", "#...#", ".###."},
	{"..#..", ".##..", "#.#..", "..#..", "..#..", "..#..", "..#..", "..#..", "..#..", "#####"},
	{".###.", "#...#", "....#", "....#", "...#.", "..#..", ".#...", "#....", "#....", "#####"},
	{".###.", "#...#", "....#", "....#", "..##.", "....#", "....#", "....#", "#...#", ".###."},
	{"...#.", "..##.", ".#.#.", "#..#.", "#..#.", "#####", "...#.", "...#.", "...#.", "...#."},
	{"#####", "#....", "#....", "####.", "....#", "....#", "....#", "....#", "#...#", ".###."},
	{".###.", "#...#", "#....", "#....", "####.", "#...#", "#...#", "#...#", "#...#", ".###."},
	{"#####", "....#", "....#", "...#.", "...#.", "..#..", "..#..", ".#...", ".#...", ".#..."},
	{".###.", "#...#", "#...#", "#...#", ".###.", "#...#", "#...#", "#...#", "#...#", ".###."},
	{".###.", "#...#", "#...#", "#...#", "#...#", ".####", "....#", "....#", "#...#", ".###."},
}

// letterArt is a 3x5 capital font covering the label and banner text.
var letterArt = map[rune][]string{
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'C': {"###", "#..", "#..", "#..", "###"},
	'E': {"###", "#..", "##.", "#..", "###"},
	'G': {"###", "#..", "#.#", "#.#", "###"},
	'L': {"#..", "#..", "#..", "#..", "###"},
	'M': {"#.#", "###", "###", "#.#", "#.#"},
	'O': {"###", "#.#", "#.#", "#.#", "###"},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'S': {"###", "#..", "###", "..#", "###"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	' ': {"...", "...", "...", "...", "..."},
}

const (
	letterW = 3
	letterH = 5
)

// bitmap paints art rows into img with the art's top-left corner at
// (ox, oy). '#' marks a foreground pixel.
func bitmap(img *image.Paletted, rows []string, ox, oy, scale int) {
	for y, row := range rows {
		for x, ch := range row {
			if ch != '#' {
				continue
			}
			for sx := 0; sx < scale; sx++ {
				for sy := 0; sy < scale; sy++ {
					img.SetColorIndex(ox+x*scale+sx, oy+y*scale+sy, 1)
				}
			}
		}
	}
}

// GlyphSheet returns the built-in 60x12 digit sheet.
func GlyphSheet() image.Image {
	img := image.NewPaletted(image.Rect(0, 0, render.GlyphW*10, render.GlyphH), palette)
	for d, art := range digitArt {
		// One blank row above each digit and a blank column to its right.
		bitmap(img, art, d*render.GlyphW, 1, 1)
	}
	return img
}

// Text renders upper-case text in the built-in font. Lines are separated by
// '\n' and spaced lineGap pixels apart; every pixel is scaled by scale.
func Text(s string, scale, lineGap int) image.Image {
	lines := strings.Split(strings.ToUpper(s), "\n")
	cols := 0
	for _, l := range lines {
		cols = max(cols, len([]rune(l)))
	}
	advance := (letterW + 1) * scale
	w := max(cols*advance-scale, 1)
	lineH := letterH * scale
	h := len(lines)*lineH + (len(lines)-1)*lineGap

	img := image.NewPaletted(image.Rect(0, 0, w, h), palette)
	for li, l := range lines {
		for ci, ch := range []rune(l) {
			art, ok := letterArt[ch]
			if !ok {
				continue
			}
			bitmap(img, art, ci*advance, li*(lineH+lineGap), scale)
		}
	}
	return img
}

// Default returns the built-in resources.
func Default() render.Resources {
	return render.Resources{
		Glyphs:     GlyphSheet(),
		ScoreLabel: Text("SCORE", 1, 0),
		LevelLabel: Text("LVL", 1, 0),
		GameOver:   Text("GAME\nOVER", 2, 4),
		Foreground: Foreground,
	}
}

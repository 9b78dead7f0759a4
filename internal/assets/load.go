package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/mousetris/internal/render"
)

// File names looked up by Load, without extension.
const (
	GlyphsName   = "char_map_6x12"
	ScoreName    = "text_score"
	LevelName    = "text_lvl"
	GameOverName = "game_over"
)

// Load decodes resources from dir. Each image is read from <name>.bmp, or
// <name>.png if no BMP exists. Black is the foreground colour.
func Load(dir string) (render.Resources, error) {
	var res render.Resources
	targets := []struct {
		name string
		dst  *image.Image
	}{
		{GlyphsName, &res.Glyphs},
		{ScoreName, &res.ScoreLabel},
		{LevelName, &res.LevelLabel},
		{GameOverName, &res.GameOver},
	}

	for _, t := range targets {
		img, err := loadImage(dir, t.name)
		if err != nil {
			return render.Resources{}, err
		}
		*t.dst = img
	}
	res.Foreground = color.Black

	if err := res.Validate(); err != nil {
		return render.Resources{}, fmt.Errorf("assets: %s: %w", dir, err)
	}
	return res, nil
}

// LoadOrDefault loads resources from dir, or returns the built-in set when
// dir is empty.
func LoadOrDefault(dir string) (render.Resources, error) {
	if dir == "" {
		return Default(), nil
	}
	return Load(dir)
}

func loadImage(dir, name string) (image.Image, error) {
	decoders := []struct {
		ext    string
		decode func(f *os.File) (image.Image, error)
	}{
		{".bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
		{".png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
	}

	for _, d := range decoders {
		path := filepath.Join(dir, name+d.ext)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
		}
		img, err := d.decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("assets: %s.bmp or %s.png not found in %s", name, name, dir)
}

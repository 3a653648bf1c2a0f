package gfont

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LabelSize is the point size of coordinate labels for a given cell size.
func LabelSize(cell int) float64 {
	s := float64(cell) / 6
	if s < 8 {
		s = 8
	}
	return s
}

// Label returns an opentype face for the window labels.
func Label(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Snapshot returns a truetype face for labels drawn onto gg contexts.
func Snapshot(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72}), nil
}

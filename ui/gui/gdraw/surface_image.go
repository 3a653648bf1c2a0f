package gdraw

import (
	"dragchess/ui/gui/ghelper"
	"dragchess/ui/gui/ghelper/gfont"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// ImageSurface renders into an in-memory gg context.
type ImageSurface struct {
	dc     *gg.Context
	scaled map[string]image.Image
}

// NewImageSurface creates a square surface of size pixels. fontSize 0 disables labels.
func NewImageSurface(size int, fontSize float64) (*ImageSurface, error) {
	dc := gg.NewContext(size, size)
	if fontSize > 0 {
		face, err := gfont.Snapshot(fontSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
	}
	return &ImageSurface{dc: dc, scaled: make(map[string]image.Image)}, nil
}

func (s *ImageSurface) FillRect(x, y, w, h int, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	s.dc.Fill()
}

func (s *ImageSurface) DrawSprite(key string, img image.Image, x, y, size int) {
	scaled, ok := s.scaled[key]
	if !ok || scaled.Bounds().Dx() != size {
		scaled = ghelper.ScaleSquare(img, size)
		s.scaled[key] = scaled
	}
	s.dc.DrawImage(scaled, x, y)
}

func (s *ImageSurface) DrawLabel(str string, x, y int, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, float64(x), float64(y), 0, 1)
}

func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

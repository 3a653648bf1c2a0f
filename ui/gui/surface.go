package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// screenSurface draws onto the ebiten screen of the current frame.
type screenSurface struct {
	dst    *ebiten.Image
	pixel  *ebiten.Image
	face   font.Face
	images map[string]*ebiten.Image
}

func newScreenSurface() *screenSurface {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &screenSurface{pixel: px, images: make(map[string]*ebiten.Image)}
}

func (s *screenSurface) FillRect(x, y, w, h int, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(s.pixel, op)
}

func (s *screenSurface) DrawSprite(key string, img image.Image, x, y, size int) {
	eimg, ok := s.images[key]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.images[key] = eimg
	}
	b := eimg.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	s.dst.DrawImage(eimg, op)
}

func (s *screenSurface) DrawLabel(str string, x, y int, c color.Color) {
	if s.face == nil {
		return
	}
	text.Draw(s.dst, str, s.face, x, y+s.face.Metrics().Ascent.Ceil(), c)
}

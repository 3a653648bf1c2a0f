package ghelper

import (
	"image"

	"golang.org/x/image/draw"
)

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

// CellAt maps a pixel to a board cell. Pixels outside [0, n*cell) on either axis miss.
func CellAt(px, py, cell, n int) (x, y int, ok bool) {
	if cell <= 0 || !PointInRect(px, py, 0, 0, n*cell, n*cell) {
		return 0, 0, false
	}
	return px / cell, py / cell, true
}

// ScaleSquare resamples src into a size x size RGBA image.
func ScaleSquare(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if src.Bounds().Dx() == size && src.Bounds().Dy() == size {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

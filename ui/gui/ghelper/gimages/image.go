package gimages

import (
	"bytes"
	"dragchess/ui/gui/gbase/gassets"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Library decodes piece sprites once per asset key.
type Library struct {
	dir    string
	size   int
	images map[string]image.Image
}

// NewLibrary reads sprites from dir, or the built-in set when dir is empty.
// SVG sprites are rasterized at size x size pixels.
func NewLibrary(dir string, size int) *Library {
	return &Library{dir: dir, size: size, images: make(map[string]image.Image)}
}

// Image returns the cached sprite for key, loading it on first use.
func (l *Library) Image(key string) (image.Image, error) {
	if img, ok := l.images[key]; ok {
		return img, nil
	}
	asset, err := gassets.ReadSprite(l.dir, key)
	if err != nil {
		return nil, err
	}
	img, err := decode(asset, l.size)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", key, err)
	}
	l.images[key] = img
	return img, nil
}

// Preload resolves every key up front so a missing sprite fails at startup.
func (l *Library) Preload(keys []string) error {
	for _, k := range keys {
		if _, err := l.Image(k); err != nil {
			return err
		}
	}
	return nil
}

func decode(a gassets.Asset, size int) (image.Image, error) {
	if a.Ext == ".svg" {
		return rasterizeSVG(a.Data, size)
	}
	img, _, err := image.Decode(bytes.NewReader(a.Data))
	return img, err
}

func rasterizeSVG(data []byte, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

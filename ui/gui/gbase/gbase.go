package gbase

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	DefaultCellSize int = 120
	MinCellSize     int = 32
	MaxCellSize     int = 256
	WindowTitle         = "dragchess"
)

// ---- Styles (palettes) ----

// Palette is the fixed set of board colors handed to the renderer.
type Palette struct {
	Light     color.RGBA
	Dark      color.RGBA
	Highlight color.RGBA
}

var DefaultPalette = Palette{
	Light:     color.RGBA{234, 236, 208, 0xff},
	Dark:      color.RGBA{119, 149, 86, 0xff},
	Highlight: color.RGBA{184, 135, 98, 0xff},
}

// Square returns the base color of the square at file x, row y.
func (p Palette) Square(x, y int) color.RGBA {
	if (x+y)%2 == 0 {
		return p.Light
	}
	return p.Dark
}

// Label returns the color for text drawn on the square at x, y.
func (p Palette) Label(x, y int) color.RGBA {
	return p.Square(x+1, y)
}

// ParseHexColor accepts "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

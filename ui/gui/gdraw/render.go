package gdraw

import (
	"dragchess/src/base"
	"dragchess/src/board"
	"dragchess/ui/gui/gbase"
	"fmt"
	"image"
	"image/color"
)

// Surface is the drawing target of a Renderer.
type Surface interface {
	FillRect(x, y, w, h int, c color.Color)
	// DrawSprite draws img scaled into a size x size square at (x, y).
	// key identifies img for caching.
	DrawSprite(key string, img image.Image, x, y, size int)
	// DrawLabel draws s with its top-left corner at (x, y).
	DrawLabel(s string, x, y int, c color.Color)
}

type SpriteSource interface {
	Image(key string) (image.Image, error)
}

// Renderer paints the whole grid on every call.
type Renderer struct {
	theme   gbase.Palette
	cell    int
	sprites SpriteSource
	coords  bool
}

func NewRenderer(theme gbase.Palette, cell int, sprites SpriteSource, coords bool) *Renderer {
	return &Renderer{theme: theme, cell: cell, sprites: sprites, coords: coords}
}

// BoardPixels is the side length of the rendered board.
func (r *Renderer) BoardPixels() int {
	return base.BoardSize * r.cell
}

func (r *Renderer) Render(g *board.Grid, s Surface) error {
	hl, hasHL := g.Highlight()
	for y := 0; y < base.BoardSize; y++ {
		for x := 0; x < base.BoardSize; x++ {
			p := base.Point{X: x, Y: y}
			c := r.theme.Square(x, y)
			if hasHL && hl == p {
				c = r.theme.Highlight
			}
			s.FillRect(x*r.cell, y*r.cell, r.cell, r.cell, c)

			piece, err := g.Get(p)
			if err != nil {
				return err
			}
			if piece == nil || piece.IsBlank() {
				continue
			}
			key := piece.AssetKey()
			img, err := r.sprites.Image(key)
			if err != nil {
				return fmt.Errorf("sprite for %s at %s: %w", piece, p.Algebraic(), err)
			}
			s.DrawSprite(key, img, x*r.cell, y*r.cell, r.cell)
		}
	}
	if r.coords {
		r.drawCoordinates(s)
	}
	return nil
}

func (r *Renderer) drawCoordinates(s Surface) {
	pad := r.cell / 20
	last := base.BoardSize - 1
	for i := 0; i < base.BoardSize; i++ {
		// ranks down the left edge
		s.DrawLabel(fmt.Sprint(base.BoardSize-i), pad, i*r.cell+pad, r.theme.Label(0, i))
		// files along the bottom edge
		s.DrawLabel(string(rune('a'+i)), (i+1)*r.cell-r.cell/6-pad, (last+1)*r.cell-r.cell/5-pad, r.theme.Label(i, last))
	}
}

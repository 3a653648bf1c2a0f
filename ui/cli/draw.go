package cli

import (
	"dragchess/src/base"
	"dragchess/src/board"
	"fmt"
	"io"
)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	whiteF  = "\033[97m"
	blackF  = "\033[30m"
	dimF    = "\033[90m"
)

var glyphs = map[base.Color]map[base.Kind]string{
	base.White: {
		base.King: "♔", base.Queen: "♕", base.Rook: "♖",
		base.Bishop: "♗", base.Knight: "♘", base.Pawn: "♙",
	},
	base.Black: {
		base.King: "♚", base.Queen: "♛", base.Rook: "♜",
		base.Bishop: "♝", base.Knight: "♞", base.Pawn: "♟",
	},
}

func pieceGlyph(p *base.Piece) string {
	if p == nil || p.IsBlank() {
		return " "
	}
	if g, ok := glyphs[p.Color][p.Kind]; ok {
		return g
	}
	return "?"
}

// PrintGrid writes the board with rank 8 on top. Without color the squares
// are not shaded and empty cells print as '.'.
func PrintGrid(w io.Writer, g *board.Grid, color bool) error {
	const files = "   a  b  c  d  e  f  g  h"
	if _, err := fmt.Fprintf(w, "\n%s\n", files); err != nil {
		return err
	}
	for y := 0; y < base.BoardSize; y++ {
		rank := base.BoardSize - y
		fmt.Fprintf(w, "%d ", rank)
		for x := 0; x < base.BoardSize; x++ {
			p, err := g.Get(base.Point{X: x, Y: y})
			if err != nil {
				return err
			}
			glyph := pieceGlyph(p)
			if !color {
				if glyph == " " {
					glyph = "."
				}
				fmt.Fprintf(w, " %s ", glyph)
				continue
			}

			var bg, fg string
			if (x+y)%2 == 0 {
				bg = lightBg
			} else {
				bg = darkBg
			}
			switch {
			case p == nil:
				fg = dimF
			case p.Color == base.White && bg == darkBg:
				fg = whiteF
			default:
				fg = blackF
			}
			fmt.Fprintf(w, "%s%s %s %s", bg, fg, glyph, reset)
		}
		fmt.Fprintf(w, " %d\n", rank)
	}
	_, err := fmt.Fprintf(w, "%s\n\n", files)
	return err
}

package base

import (
	"fmt"

	"github.com/corentings/chess/v2"
)

// Standard opening placement, rank 8 first.
const StartNotation string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Empty marks a square without a piece in the flat decoded form.
const Empty byte = '0'

// Cells is the flat 64-square form, row-major from the top rank.
type Cells [BoardSize * BoardSize]byte

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "invalid"
	}
}

type Kind uint8

const (
	King Kind = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
	Blank
)

func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	case Pawn:
		return "pawn"
	default:
		return "blank"
	}
}

// Point is a board coordinate: X is the file (0 = a), Y the row from the top (0 = rank 8).
type Point struct {
	X int
	Y int
}

func (p Point) Valid() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func (p Point) Index() int {
	return p.Y*BoardSize + p.X
}

func PointFromIndex(i int) Point {
	return Point{X: i % BoardSize, Y: i / BoardSize}
}

// Algebraic returns the square name, e.g. "a8" for (0,0).
func (p Point) Algebraic() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return chess.NewSquare(chess.File(p.X), chess.Rank(BoardSize-1-p.Y)).String()
}

func (p Point) String() string {
	return p.Algebraic()
}

type Piece struct {
	Color Color
	Kind  Kind

	coord  Point
	placed bool
}

// Classify maps a piece code to a piece: uppercase is white, lowercase black.
// Codes that name no piece yield a Blank piece.
func Classify(code byte) Piece {
	color := White
	if code >= 'a' && code <= 'z' {
		color = Black
		code -= 'a' - 'A'
	}
	switch code {
	case 'K':
		return Piece{Color: color, Kind: King}
	case 'Q':
		return Piece{Color: color, Kind: Queen}
	case 'B':
		return Piece{Color: color, Kind: Bishop}
	case 'N':
		return Piece{Color: color, Kind: Knight}
	case 'R':
		return Piece{Color: color, Kind: Rook}
	case 'P':
		return Piece{Color: color, Kind: Pawn}
	default:
		return Piece{Kind: Blank}
	}
}

func (p Piece) IsBlank() bool {
	return p.Kind >= Blank
}

// Code is the inverse of Classify.
func (p Piece) Code() byte {
	var c byte
	switch p.Kind {
	case King:
		c = 'K'
	case Queen:
		c = 'Q'
	case Bishop:
		c = 'B'
	case Knight:
		c = 'N'
	case Rook:
		c = 'R'
	case Pawn:
		c = 'P'
	default:
		return Empty
	}
	if p.Color == Black {
		c += 'a' - 'A'
	}
	return c
}

// AssetKey names the sprite of the piece ("black-rook"); blank pieces have none.
func (p Piece) AssetKey() string {
	if p.IsBlank() {
		return ""
	}
	return p.Color.String() + "-" + p.Kind.String()
}

func (p Piece) String() string {
	if p.IsBlank() {
		return "blank"
	}
	return p.Color.String() + " " + p.Kind.String()
}

func (p *Piece) SetCoordinate(pt Point) {
	p.coord = pt
	p.placed = true
}

// MoveTo updates the coordinate of a placed piece. Unplaced pieces are left untouched.
func (p *Piece) MoveTo(pt Point) {
	if !p.placed {
		return
	}
	p.coord = pt
}

func (p Piece) Coordinate() (Point, bool) {
	return p.coord, p.placed
}

// AssetKeys lists every sprite a board can need.
func AssetKeys() []string {
	keys := make([]string, 0, 12)
	for _, c := range []Color{White, Black} {
		for k := King; k < Blank; k++ {
			keys = append(keys, Piece{Color: c, Kind: k}.AssetKey())
		}
	}
	return keys
}

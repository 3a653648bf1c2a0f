package board

import (
	"dragchess/src/base"
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("point is outside the board")
	ErrBlankPiece  = errors.New("blank piece cannot be placed")
)

// Grid owns the pieces of an 8x8 board, indexed [y][x].
// It also keeps the advisory selection and drag state used for highlighting.
type Grid struct {
	cells [base.BoardSize][base.BoardSize]*base.Piece

	selected  *base.Point
	dragStart *base.Point
	dragEnd   *base.Point
}

func NewGrid() *Grid {
	return &Grid{}
}

func checkPoint(p base.Point) error {
	if !p.Valid() {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	return nil
}

// Load replaces every cell from the decoded form and drops the transient state.
func (g *Grid) Load(cells base.Cells) {
	g.cells = [base.BoardSize][base.BoardSize]*base.Piece{}
	for i, c := range cells {
		pc := base.Classify(c)
		if pc.IsBlank() {
			continue
		}
		p := base.PointFromIndex(i)
		pc.SetCoordinate(p)
		g.cells[p.Y][p.X] = &pc
	}
	g.selected, g.dragStart, g.dragEnd = nil, nil, nil
}

// Codes returns the flat form of the current board.
func (g *Grid) Codes() base.Cells {
	var cells base.Cells
	for i := range cells {
		p := base.PointFromIndex(i)
		if pc := g.cells[p.Y][p.X]; pc != nil {
			cells[i] = pc.Code()
		} else {
			cells[i] = base.Empty
		}
	}
	return cells
}

// Place puts a copy of piece on p, discarding the previous occupant.
func (g *Grid) Place(p base.Point, piece base.Piece) error {
	if err := checkPoint(p); err != nil {
		return err
	}
	if piece.IsBlank() {
		return ErrBlankPiece
	}
	piece.SetCoordinate(p)
	g.cells[p.Y][p.X] = &piece
	return nil
}

// Get returns the piece on p, or nil for an empty square.
func (g *Grid) Get(p base.Point) (*base.Piece, error) {
	if err := checkPoint(p); err != nil {
		return nil, err
	}
	return g.cells[p.Y][p.X], nil
}

func (g *Grid) Clear(p base.Point) error {
	if err := checkPoint(p); err != nil {
		return err
	}
	g.cells[p.Y][p.X] = nil
	return nil
}

func (g *Grid) Occupied(p base.Point) bool {
	pc, err := g.Get(p)
	return err == nil && pc != nil
}

// Move carries the piece on from to to, overwriting whatever stands there.
// Moving onto the same square or from an empty square leaves the grid unchanged.
// The result reports whether the grid changed.
func (g *Grid) Move(from, to base.Point) (bool, error) {
	if from == to {
		return false, nil
	}
	if err := checkPoint(from); err != nil {
		return false, err
	}
	if err := checkPoint(to); err != nil {
		return false, err
	}
	pc := g.cells[from.Y][from.X]
	if pc == nil {
		return false, nil
	}
	pc.MoveTo(to)
	g.cells[to.Y][to.X] = pc
	g.cells[from.Y][from.X] = nil
	return true, nil
}

// Consistent reports whether every piece knows the square it stands on.
func (g *Grid) Consistent() bool {
	for y := range g.cells {
		for x, pc := range g.cells[y] {
			if pc == nil {
				continue
			}
			if c, placed := pc.Coordinate(); !placed || c != (base.Point{X: x, Y: y}) {
				return false
			}
		}
	}
	return true
}

// ---- selection & drag ----

func get(p *base.Point) (base.Point, bool) {
	if p == nil {
		return base.Point{}, false
	}
	return *p, true
}

func (g *Grid) Selected() (base.Point, bool) { return get(g.selected) }
func (g *Grid) SetSelected(p base.Point)     { g.selected = &p }
func (g *Grid) ClearSelected()               { g.selected = nil }

func (g *Grid) DragStart() (base.Point, bool) { return get(g.dragStart) }
func (g *Grid) SetDragStart(p base.Point)     { g.dragStart = &p }
func (g *Grid) ClearDragStart()               { g.dragStart = nil }

func (g *Grid) DragEnd() (base.Point, bool) { return get(g.dragEnd) }
func (g *Grid) SetDragEnd(p base.Point)     { g.dragEnd = &p }
func (g *Grid) ClearDragEnd()               { g.dragEnd = nil }

// Dragging reports whether a drag has started and not been released yet.
func (g *Grid) Dragging() bool {
	return g.dragStart != nil && g.dragEnd == nil
}

// Highlight returns the square to highlight: the selection, else the origin of a running drag.
func (g *Grid) Highlight() (base.Point, bool) {
	if g.selected != nil {
		return *g.selected, true
	}
	if g.Dragging() {
		return *g.dragStart, true
	}
	return base.Point{}, false
}

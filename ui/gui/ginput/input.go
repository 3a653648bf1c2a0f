package ginput

import (
	"dragchess/src/base"
	"dragchess/src/board"
	"dragchess/src/logx"
	"dragchess/ui/gui/ghelper"
)

type State uint8

const (
	Idle State = iota
	Dragging
	Clicked
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Clicked:
		return "clicked"
	}
	return "unknown"
}

type EventKind uint8

const (
	Closed EventKind = iota
	ButtonPressed
	ButtonReleased
)

type Button uint8

const (
	Left Button = iota
	Right
	Middle
)

// Event is a window event in window pixel coordinates.
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   int
}

// Board is the state the loop mutates.
type Board interface {
	Grid() *board.Grid
	Move(from, to base.Point) (bool, error)
}

// Result tells the host what to do after an event.
type Result struct {
	Redraw bool
	Quit   bool
	Moved  bool
}

// Loop turns mouse events into selections and moves.
type Loop struct {
	board  Board
	cell   int
	state  State
	logger logx.Logger
}

func NewLoop(b Board, cell int, logger logx.Logger) *Loop {
	return &Loop{board: b, cell: cell, state: Idle, logger: logger}
}

func (l *Loop) State() State {
	return l.state
}

// Reset drops any drag or selection, e.g. after the grid was reloaded.
func (l *Loop) Reset() {
	g := l.board.Grid()
	g.ClearSelected()
	g.ClearDragStart()
	g.ClearDragEnd()
	l.state = Idle
}

func (l *Loop) cellAt(px, py int) (base.Point, bool) {
	x, y, ok := ghelper.CellAt(px, py, l.cell, base.BoardSize)
	return base.Point{X: x, Y: y}, ok
}

func (l *Loop) Handle(ev Event) (Result, error) {
	switch ev.Kind {
	case Closed:
		return Result{Quit: true}, nil
	case ButtonPressed:
		if ev.Button != Left {
			return Result{}, nil
		}
		return l.press(ev), nil
	case ButtonReleased:
		if ev.Button != Left {
			return Result{}, nil
		}
		return l.release(ev)
	}
	return Result{}, nil
}

func (l *Loop) press(ev Event) Result {
	p, ok := l.cellAt(ev.X, ev.Y)
	if !ok {
		l.logger.Debugf("press outside the board at %d,%d", ev.X, ev.Y)
		return Result{Redraw: true}
	}
	g := l.board.Grid()
	g.SetDragStart(p)
	g.ClearDragEnd()
	l.state = Dragging
	return Result{Redraw: true}
}

func (l *Loop) release(ev Event) (Result, error) {
	if l.state != Dragging {
		return Result{Redraw: true}, nil
	}
	g := l.board.Grid()
	start, ok := g.DragStart()
	if !ok {
		l.state = Idle
		return Result{Redraw: true}, nil
	}

	end, ok := l.cellAt(ev.X, ev.Y)
	if !ok {
		l.logger.Debugf("drag from %s cancelled outside the board", start.Algebraic())
		g.ClearDragStart()
		l.restState()
		return Result{Redraw: true}, nil
	}
	g.SetDragEnd(end)
	defer func() {
		g.ClearDragStart()
		g.ClearDragEnd()
	}()

	if start == end {
		if sel, ok := g.Selected(); ok && sel == end {
			g.ClearSelected()
			l.state = Idle
		} else {
			g.SetSelected(end)
			l.state = Clicked
		}
		return Result{Redraw: true}, nil
	}

	moved, err := l.board.Move(start, end)
	g.ClearSelected()
	l.state = Idle
	if err != nil {
		return Result{Redraw: true}, err
	}
	return Result{Redraw: true, Moved: moved}, nil
}

func (l *Loop) restState() {
	if _, ok := l.board.Grid().Selected(); ok {
		l.state = Clicked
		return
	}
	l.state = Idle
}

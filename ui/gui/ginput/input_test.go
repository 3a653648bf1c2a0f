package ginput

import (
	"dragchess/src"
	"dragchess/src/base"
	"dragchess/src/logx"
	"testing"

	"go.uber.org/zap/zaptest"
)

const cell = 100

func newLoop(t *testing.T, notation string) (*Loop, *src.GameBuilder) {
	t.Helper()
	logger := logx.FromSugar(zaptest.NewLogger(t).Sugar())
	gb := src.NewBuilderBoard(logger)
	if err := gb.CreateFromNotation(notation); err != nil {
		t.Fatal(err)
	}
	return NewLoop(gb, cell, logger), gb
}

func at(x, y int) (int, int) {
	return x*cell + cell/2, y*cell + cell/2
}

func press(l *Loop, x, y int) Result {
	px, py := at(x, y)
	r, _ := l.Handle(Event{Kind: ButtonPressed, Button: Left, X: px, Y: py})
	return r
}

func release(t *testing.T, l *Loop, x, y int) Result {
	t.Helper()
	px, py := at(x, y)
	r, err := l.Handle(Event{Kind: ButtonReleased, Button: Left, X: px, Y: py})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestClickSelectsAndDeselects(t *testing.T) {
	l, gb := newLoop(t, base.StartNotation)
	before := gb.Notation()

	if r := press(l, 4, 6); !r.Redraw || l.State() != Dragging {
		t.Fatalf("press: %+v, state %v", r, l.State())
	}
	if hl, ok := gb.Grid().Highlight(); !ok || hl != (base.Point{X: 4, Y: 6}) {
		t.Fatal("drag origin not highlighted")
	}
	release(t, l, 4, 6)
	if l.State() != Clicked {
		t.Fatalf("state = %v", l.State())
	}
	if sel, ok := gb.Grid().Selected(); !ok || sel != (base.Point{X: 4, Y: 6}) {
		t.Fatal("cell not selected")
	}

	press(l, 4, 6)
	release(t, l, 4, 6)
	if l.State() != Idle {
		t.Fatalf("state = %v", l.State())
	}
	if _, ok := gb.Grid().Selected(); ok {
		t.Fatal("second click did not deselect")
	}
	if gb.Notation() != before {
		t.Fatal("clicks mutated the board")
	}
}

func TestClickOtherCellMovesSelection(t *testing.T) {
	l, gb := newLoop(t, base.StartNotation)
	press(l, 0, 0)
	release(t, l, 0, 0)
	press(l, 3, 3)
	release(t, l, 3, 3)
	if sel, ok := gb.Grid().Selected(); !ok || sel != (base.Point{X: 3, Y: 3}) {
		t.Fatal("selection did not follow the click")
	}
	if l.State() != Clicked {
		t.Fatalf("state = %v", l.State())
	}
}

func TestDragMoves(t *testing.T) {
	l, gb := newLoop(t, base.StartNotation)
	press(l, 4, 6)
	r := release(t, l, 4, 4)
	if !r.Moved || !r.Redraw {
		t.Fatalf("result = %+v", r)
	}
	if l.State() != Idle {
		t.Fatalf("state = %v", l.State())
	}
	if got := gb.Notation(); got != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR" {
		t.Fatalf("notation = %s", got)
	}
	if _, ok := gb.Grid().Highlight(); ok {
		t.Fatal("highlight left after a move")
	}
	if !gb.Grid().Consistent() {
		t.Fatal("grid inconsistent")
	}
}

func TestDragCaptures(t *testing.T) {
	l, gb := newLoop(t, "4k3/8/8/8/8/8/8/4K3")
	press(l, 4, 7)
	release(t, l, 4, 0)
	if got := gb.Notation(); got != "4K3/8/8/8/8/8/8/8" {
		t.Fatalf("notation = %s", got)
	}
}

func TestDragEmptyOrigin(t *testing.T) {
	l, gb := newLoop(t, base.StartNotation)
	press(l, 3, 3)
	if r := release(t, l, 3, 4); r.Moved {
		t.Fatal("empty origin reported a move")
	}
	if gb.Notation() != base.StartNotation {
		t.Fatal("board changed")
	}
}

func TestReleaseOutsideCancels(t *testing.T) {
	l, gb := newLoop(t, base.StartNotation)
	press(l, 4, 6)
	r, err := l.Handle(Event{Kind: ButtonReleased, Button: Left, X: 8 * cell, Y: 10})
	if err != nil {
		t.Fatal(err)
	}
	if r.Moved || l.State() != Idle {
		t.Fatalf("result %+v, state %v", r, l.State())
	}
	if gb.Notation() != base.StartNotation {
		t.Fatal("board changed")
	}
	if _, ok := gb.Grid().DragStart(); ok {
		t.Fatal("drag start kept")
	}
}

func TestPressOutsideIgnored(t *testing.T) {
	l, gb := newLoop(t, base.StartNotation)
	for _, ev := range []Event{
		{Kind: ButtonPressed, Button: Left, X: -1, Y: 10},
		{Kind: ButtonPressed, Button: Left, X: 10, Y: 8 * cell},
	} {
		if _, err := l.Handle(ev); err != nil {
			t.Fatal(err)
		}
		if l.State() != Idle {
			t.Fatalf("state = %v after %+v", l.State(), ev)
		}
	}
	if _, ok := gb.Grid().DragStart(); ok {
		t.Fatal("drag started outside the board")
	}
}

func TestNonLeftButtonsIgnored(t *testing.T) {
	l, _ := newLoop(t, base.StartNotation)
	px, py := at(1, 1)
	for _, b := range []Button{Right, Middle} {
		r, err := l.Handle(Event{Kind: ButtonPressed, Button: b, X: px, Y: py})
		if err != nil || r.Redraw || l.State() != Idle {
			t.Fatalf("button %d handled: %+v %v", b, r, err)
		}
	}
}

func TestClosedQuits(t *testing.T) {
	l, _ := newLoop(t, base.StartNotation)
	r, err := l.Handle(Event{Kind: Closed})
	if err != nil || !r.Quit {
		t.Fatalf("result = %+v, %v", r, err)
	}
}

func TestReset(t *testing.T) {
	l, gb := newLoop(t, base.StartNotation)
	press(l, 2, 2)
	release(t, l, 2, 2)
	l.Reset()
	if l.State() != Idle {
		t.Fatalf("state = %v", l.State())
	}
	if _, ok := gb.Grid().Highlight(); ok {
		t.Fatal("highlight survived reset")
	}
}

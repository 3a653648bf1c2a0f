package src

import (
	"dragchess/src/base"
	"dragchess/src/board"
	"dragchess/src/logic/convert/convfen"
	"dragchess/src/logx"
	"fmt"
)

// GameBuilder turns board notation into the grid shown on screen.
// Use one of the Create* methods before reading the grid.
type GameBuilder struct {
	grid    *board.Grid
	initial string
	strict  bool
	logger  logx.Logger
}

func NewBuilderBoard(logger logx.Logger) *GameBuilder {
	return &GameBuilder{grid: board.NewGrid(), logger: logger}
}

// SetStrict makes Create* reject notation with a malformed rank structure.
func (gb *GameBuilder) SetStrict(strict bool) {
	gb.strict = strict
}

func (gb *GameBuilder) decode(notation string) (base.Cells, error) {
	if gb.strict {
		if err := convfen.Validate(notation); err != nil {
			return base.Cells{}, err
		}
	}
	return convfen.Decode(notation)
}

// CreateFromNotation loads the notation and remembers it for Reset.
// On error the current board is left untouched.
func (gb *GameBuilder) CreateFromNotation(notation string) error {
	gb.logger.Debugf("create board by notation: %v", notation)
	if err := gb.Load(notation); err != nil {
		return err
	}
	gb.initial = notation
	return nil
}

// Load replaces the board without changing the notation Reset returns to.
func (gb *GameBuilder) Load(notation string) error {
	cells, err := gb.decode(notation)
	if err != nil {
		gb.logger.Errorf("error parse notation %q: %v", notation, err)
		return fmt.Errorf("error parse notation: %w", err)
	}
	gb.grid.Load(cells)
	if !gb.grid.Consistent() {
		return fmt.Errorf("board inconsistent after loading %q", notation)
	}
	return nil
}

func (gb *GameBuilder) CreateClassic() {
	gb.logger.Debug("create classic board")
	if err := gb.CreateFromNotation(base.StartNotation); err != nil {
		gb.logger.Errorf("error create classic board: %v", err)
	}
}

// Reset restores the notation the board was created from.
func (gb *GameBuilder) Reset() error {
	gb.logger.Debug("call reset")
	if gb.initial == "" {
		gb.CreateClassic()
		return nil
	}
	return gb.Load(gb.initial)
}

func (gb *GameBuilder) Grid() *board.Grid {
	return gb.grid
}

// Notation encodes the current board.
func (gb *GameBuilder) Notation() string {
	return convfen.Encode(gb.grid.Codes())
}

func (gb *GameBuilder) Move(from, to base.Point) (bool, error) {
	moved, err := gb.grid.Move(from, to)
	if err != nil {
		gb.logger.Errorf("error move %v -> %v: %v", from, to, err)
		return false, err
	}
	if moved {
		gb.logger.Infof("move from %v to %v", from, to)
	}
	return moved, nil
}

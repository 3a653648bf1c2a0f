package convfen

import (
	"dragchess/src/base"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/corentings/chess/v2"
)

var ErrLengthMismatch = errors.New("notation does not expand to 64 squares")

// unknownCode stands in for a non-ASCII character; it classifies as Blank.
const unknownCode byte = '?'

// placement returns the piece placement field of a notation or a full FEN record.
func placement(notation string) string {
	fields := strings.Fields(notation)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Decode expands the board notation into 64 cells. '/' separates ranks, digits
// 1-8 are runs of empty squares and every other character is copied as a piece code.
// A non-ASCII character takes one cell, stored as '?'.
// Rank structure is not checked here, see Validate.
func Decode(notation string) (base.Cells, error) {
	var cells base.Cells
	count := 0
	put := func(c byte) {
		if count < len(cells) {
			cells[count] = c
		}
		count++
	}

	for _, ch := range placement(notation) {
		switch {
		case ch == '/':
		case ch >= '1' && ch <= '8':
			for i := 0; i < int(ch-'0'); i++ {
				put(base.Empty)
			}
		case ch > unicode.MaxASCII:
			put(unknownCode)
		default:
			put(byte(ch))
		}
	}

	if count != len(cells) {
		return base.Cells{}, fmt.Errorf("%w: got %d", ErrLengthMismatch, count)
	}
	return cells, nil
}

// Encode is the inverse of Decode.
func Encode(cells base.Cells) string {
	var b strings.Builder
	for rank := 0; rank < base.BoardSize; rank++ {
		if rank > 0 {
			b.WriteByte('/')
		}
		empty := 0
		for file := 0; file < base.BoardSize; file++ {
			c := cells[rank*base.BoardSize+file]
			if c == base.Empty {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(c)
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
	}
	return b.String()
}

// Validate checks that the placement has 8 ranks of 8 files and only legal piece letters.
func Validate(notation string) error {
	if _, err := Decode(notation); err != nil {
		return err
	}
	if _, err := chess.FEN(placement(notation) + " w - - 0 1"); err != nil {
		return fmt.Errorf("invalid placement %q: %w", placement(notation), err)
	}
	return nil
}

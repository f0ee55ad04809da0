package game

import (
	"fmt"
	"strings"
)

// Row identifies one of the three streets of a board.
type Row uint8

const (
	Front Row = iota
	Middle
	Back
)

// NumRows is the number of rows on a board.
const NumRows = 3

// BoardSize is the number of cards on a complete board.
const BoardSize = 13

// Rows lists the rows from Front to Back.
var Rows = [NumRows]Row{Front, Middle, Back}

var rowCapacity = [NumRows]int{3, 5, 5}

// Capacity returns how many cards the row holds when full.
func (r Row) Capacity() int {
	if !r.Valid() {
		return 0
	}
	return rowCapacity[r]
}

// Valid reports whether r is Front, Middle or Back.
func (r Row) Valid() bool {
	return r < NumRows
}

func (r Row) String() string {
	switch r {
	case Front:
		return "front"
	case Middle:
		return "middle"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("row(%d)", uint8(r))
	}
}

// ParseRow accepts the row names plus the common top/mid/bottom aliases.
func ParseRow(s string) (Row, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "front", "top", "f":
		return Front, nil
	case "middle", "mid", "m":
		return Middle, nil
	case "back", "bottom", "b":
		return Back, nil
	default:
		return 0, fmt.Errorf("unknown row %q", s)
	}
}

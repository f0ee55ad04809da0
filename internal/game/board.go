package game

import (
	"fmt"
	"strings"

	"github.com/lox/pineapple/poker"
)

// Board holds the three rows a player builds during a hand. Cards are kept
// in placement order; order never affects scoring.
type Board struct {
	rows [NumRows][]poker.Card
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	for _, r := range Rows {
		b.rows[r] = make([]poker.Card, 0, r.Capacity())
	}
	return b
}

// NewBoardFromCards builds a board directly from row contents, for fixtures
// and replays. It enforces capacities and uniqueness but not completeness.
func NewBoardFromCards(front, middle, back []poker.Card) (*Board, error) {
	b := NewBoard()
	for r, cards := range [NumRows][]poker.Card{front, middle, back} {
		for _, c := range cards {
			if err := b.Place(c, Row(r)); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// MustParseBoard builds a board from three card strings and panics on error.
func MustParseBoard(front, middle, back string) *Board {
	b, err := NewBoardFromCards(
		poker.MustParseCards(front),
		poker.MustParseCards(middle),
		poker.MustParseCards(back),
	)
	if err != nil {
		panic(err)
	}
	return b
}

// Place appends card to row. It fails with ErrIllegalPlacement when the row
// is unknown or full, or the card is already on the board.
func (b *Board) Place(card poker.Card, row Row) error {
	if !row.Valid() {
		return fmt.Errorf("%w: unknown %s", ErrIllegalPlacement, row)
	}
	if !card.IsValid() {
		return fmt.Errorf("%w: invalid card", ErrIllegalPlacement)
	}
	if len(b.rows[row]) >= row.Capacity() {
		return fmt.Errorf("%w: %s row is full", ErrIllegalPlacement, row)
	}
	if b.Cards().HasCard(card) {
		return fmt.Errorf("%w: %s is already on the board", ErrIllegalPlacement, card)
	}
	b.rows[row] = append(b.rows[row], card)
	return nil
}

// CanPlace reports whether row has space left.
func (b *Board) CanPlace(row Row) bool {
	return row.Valid() && len(b.rows[row]) < row.Capacity()
}

// LegalRows returns the rows below capacity, Front to Back.
func (b *Board) LegalRows() []Row {
	legal := make([]Row, 0, NumRows)
	for _, r := range Rows {
		if b.CanPlace(r) {
			legal = append(legal, r)
		}
	}
	return legal
}

// IsComplete reports whether every row is full.
func (b *Board) IsComplete() bool {
	for _, r := range Rows {
		if len(b.rows[r]) != r.Capacity() {
			return false
		}
	}
	return true
}

// Row returns a copy of the cards in row.
func (b *Board) Row(row Row) []poker.Card {
	if !row.Valid() {
		return nil
	}
	return append([]poker.Card(nil), b.rows[row]...)
}

// Len returns how many cards are in row.
func (b *Board) Len(row Row) int {
	if !row.Valid() {
		return 0
	}
	return len(b.rows[row])
}

// Count returns the number of cards placed on the board.
func (b *Board) Count() int {
	n := 0
	for _, r := range Rows {
		n += len(b.rows[r])
	}
	return n
}

// Cards returns every placed card as a set.
func (b *Board) Cards() poker.Hand {
	var h poker.Hand
	for _, r := range Rows {
		h |= poker.NewHand(b.rows[r]...)
	}
	return h
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := NewBoard()
	for _, r := range Rows {
		c.rows[r] = append(c.rows[r], b.rows[r]...)
	}
	return c
}

// checkInvariants reports ErrInvalidBoardState if any row is over capacity.
func (b *Board) checkInvariants() error {
	for _, r := range Rows {
		if len(b.rows[r]) > r.Capacity() {
			return fmt.Errorf("%w: %s row holds %d cards", ErrInvalidBoardState, r, len(b.rows[r]))
		}
	}
	return nil
}

// requireComplete reports ErrInvalidBoardState unless the board is full.
func (b *Board) requireComplete() error {
	if err := b.checkInvariants(); err != nil {
		return err
	}
	if !b.IsComplete() {
		return fmt.Errorf("%w: board has %d of %d cards", ErrInvalidBoardState, b.Count(), BoardSize)
	}
	return nil
}

// String renders the rows front to back in placement order.
func (b *Board) String() string {
	var sb strings.Builder
	for i, r := range Rows {
		if i > 0 {
			sb.WriteString(" / ")
		}
		for j, c := range b.rows[r] {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

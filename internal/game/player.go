package game

import (
	"fmt"
	"slices"

	"github.com/lox/pineapple/poker"
)

// Player represents one seat in a hand. Cards flow Deck -> Hand -> Board or
// Discards and never move back.
type Player struct {
	Seat        int
	Name        string
	Hand        []poker.Card // drawn but not yet placed
	Board       *Board
	Discards    []poker.Card
	Fantasyland bool // entered this hand in bonus mode
}

// NewPlayer creates a player with an empty board.
func NewPlayer(seat int, name string) *Player {
	return &Player{
		Seat:  seat,
		Name:  name,
		Board: NewBoard(),
	}
}

// Receive adds dealt cards to the player's hand.
func (p *Player) Receive(cards ...poker.Card) {
	p.Hand = append(p.Hand, cards...)
}

// Holds reports whether card is in the player's hand.
func (p *Player) Holds(card poker.Card) bool {
	return slices.Contains(p.Hand, card)
}

// Place moves card from the hand to row.
func (p *Player) Place(card poker.Card, row Row) error {
	if !p.Holds(card) {
		return fmt.Errorf("%w: %s is not in hand", ErrIllegalPlacement, card)
	}
	if err := p.Board.Place(card, row); err != nil {
		return err
	}
	p.removeFromHand(card)
	return nil
}

// Discard moves card from the hand out of play.
func (p *Player) Discard(card poker.Card) error {
	if !p.Holds(card) {
		return fmt.Errorf("%w: %s is not in hand", ErrIllegalDiscard, card)
	}
	p.removeFromHand(card)
	p.Discards = append(p.Discards, card)
	return nil
}

// LegalRows returns the rows on the player's board with space left.
func (p *Player) LegalRows() []Row {
	return p.Board.LegalRows()
}

func (p *Player) removeFromHand(card poker.Card) {
	if i := slices.Index(p.Hand, card); i >= 0 {
		p.Hand = slices.Delete(p.Hand, i, i+1)
	}
}

// View returns an immutable snapshot for deciders and presentation.
func (p *Player) View() PlayerView {
	return PlayerView{
		Seat:        p.Seat,
		Name:        p.Name,
		Hand:        slices.Clone(p.Hand),
		Board:       p.Board.Clone(),
		Discards:    slices.Clone(p.Discards),
		Fantasyland: p.Fantasyland,
	}
}

// PlayerView is a read-only copy of a player's state.
type PlayerView struct {
	Seat        int
	Name        string
	Hand        []poker.Card
	Board       *Board
	Discards    []poker.Card
	Fantasyland bool
}

// LegalRows returns the rows with space left on the snapshot board.
func (v PlayerView) LegalRows() []Row {
	return v.Board.LegalRows()
}

func (p *Player) clone() *Player {
	c := *p
	c.Hand = slices.Clone(p.Hand)
	c.Board = p.Board.Clone()
	c.Discards = slices.Clone(p.Discards)
	return &c
}

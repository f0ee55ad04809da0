package game

import "github.com/lox/pineapple/poker"

// Placement assigns one card to a row.
type Placement struct {
	Card poker.Card
	Row  Row
}

func (p Placement) String() string {
	return p.Card.String() + "->" + p.Row.String()
}

// Decider represents any entity (human or bot) that chooses where cards go.
// Deciders receive immutable snapshots and return decisions; the session
// validates every decision and asks again after an illegal one.
type Decider interface {
	// ChooseInitialPlacements assigns each of the five opening cards a row.
	ChooseInitialPlacements(view PlayerView, cards []poker.Card) []Placement
	// ChoosePineapple splits three dealt cards into two to keep and one to discard.
	ChoosePineapple(view PlayerView, cards [3]poker.Card) (place [2]poker.Card, discard poker.Card)
	// ChooseRow picks a row for a kept card from the rows with space left.
	ChooseRow(view PlayerView, card poker.Card, legal []Row) Row
}

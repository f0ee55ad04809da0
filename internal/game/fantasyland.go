package game

import "github.com/lox/pineapple/poker"

// FantasylandMinRank is the lowest front pair or trips rank that qualifies.
const FantasylandMinRank = poker.Queen

// QualifiesFantasyland reports whether a finished board earns bonus mode on
// the next hand: the board is not fouled and the resolved front row is a pair
// or trips of queens or better.
func QualifiesFantasyland(b *Board) (bool, error) {
	fouled, err := IsFouled(b)
	if err != nil || fouled {
		return false, err
	}
	front, err := EvaluateRow(b.Row(Front))
	if err != nil {
		return false, err
	}
	return frontQualifies(front), nil
}

func frontQualifies(front poker.HandRank) bool {
	switch front.Type() {
	case poker.Pair, poker.ThreeOfAKind:
		return front.PrimaryRank() >= FantasylandMinRank
	default:
		return false
	}
}

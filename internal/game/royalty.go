package game

import (
	"slices"

	"github.com/lox/pineapple/poker"
)

// RowRoyalties holds the bonus points earned by each row, indexed by Row.
type RowRoyalties [NumRows]int

// Total sums the royalties across rows.
func (r RowRoyalties) Total() int {
	return r[Front] + r[Middle] + r[Back]
}

// RoyaltyTable maps hand categories to bonus points.
type RoyaltyTable struct {
	// FrontPair is indexed by pair rank (0-12). Pairs below sixes pay nothing.
	FrontPair [13]int
	// FrontTrips is indexed by trips rank.
	FrontTrips [13]int
	// Lower is shared by the Middle and Back rows.
	Lower map[poker.HandType]int
}

// Royalties is the standard pineapple royalty schedule.
var Royalties = RoyaltyTable{
	FrontPair: [13]int{
		poker.Six:   1,
		poker.Seven: 2,
		poker.Eight: 3,
		poker.Nine:  4,
		poker.Ten:   5,
		poker.Jack:  6,
		poker.Queen: 7,
		poker.King:  8,
		poker.Ace:   9,
	},
	FrontTrips: [13]int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22},
	Lower: map[poker.HandType]int{
		poker.ThreeOfAKind:  2,
		poker.Straight:      4,
		poker.Flush:         8,
		poker.FullHouse:     12,
		poker.FourOfAKind:   20,
		poker.StraightFlush: 30,
		poker.RoyalFlush:    50,
	},
}

// Front returns the front-row bonus for an evaluated three-card rank.
func (t RoyaltyTable) Front(rank poker.HandRank) int {
	r := rank.PrimaryRank()
	if r == poker.NoRank {
		return 0
	}
	switch rank.Type() {
	case poker.ThreeOfAKind:
		return t.FrontTrips[r]
	case poker.Pair:
		return t.FrontPair[r]
	default:
		return 0
	}
}

// LowerRow returns the Middle/Back bonus for an evaluated five-card rank.
func (t RoyaltyTable) LowerRow(rank poker.HandRank) int {
	if rank >= poker.WorstRank {
		return 0
	}
	return t.Lower[rank.Type()]
}

// Score computes per-row royalties from evaluated ranks. front is the raw
// front row, needed for the straight/flush shape check. Fouled boards score
// nothing.
func (t RoyaltyTable) Score(front []poker.Card, ranks BoardRanks) RowRoyalties {
	var out RowRoyalties
	if ranks.Fouled() {
		return out
	}
	if !IsFrontStraightOrFlush(front) {
		out[Front] = t.Front(ranks[Front])
	}
	out[Middle] = t.LowerRow(ranks[Middle])
	out[Back] = t.LowerRow(ranks[Back])
	return out
}

// CalculateRoyalties returns per-row royalties for a complete board using the
// standard table. A fouled board earns zero on every row.
func CalculateRoyalties(b *Board) (RowRoyalties, error) {
	if err := b.requireComplete(); err != nil {
		return RowRoyalties{}, err
	}
	ranks, err := EvaluateBoard(b)
	if err != nil {
		return RowRoyalties{}, err
	}
	return Royalties.Score(b.Row(Front), ranks), nil
}

// IsFrontStraightOrFlush reports whether a three-card front row has a
// straight or flush shape, which blocks front royalties. A flush shape is
// three real cards of one suit. A straight shape is three consecutive ranks,
// ace high only, with at most one joker standing in for a missing rank.
func IsFrontStraightOrFlush(cards []poker.Card) bool {
	if len(cards) != Front.Capacity() {
		return false
	}

	natural := make([]poker.Card, 0, len(cards))
	for _, c := range cards {
		if !c.IsJoker() {
			natural = append(natural, c)
		}
	}
	if len(natural) < 2 {
		return false
	}

	if len(natural) == 3 && natural[0].Suit() == natural[1].Suit() && natural[1].Suit() == natural[2].Suit() {
		return true
	}

	ranks := make([]int, 0, 3)
	for _, c := range natural {
		ranks = append(ranks, int(c.Rank()))
	}
	slices.Sort(ranks)
	ranks = slices.Compact(ranks)
	if len(ranks) != len(natural) {
		return false
	}

	if len(ranks) == 3 {
		return ranks[2]-ranks[0] == 2
	}
	// One joker fills the gap or extends either end.
	return ranks[1]-ranks[0] <= 2
}

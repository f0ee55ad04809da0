package game

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pineapple/poker"
)

// BoardRanks holds the evaluated rank of each row, indexed by Row.
type BoardRanks [NumRows]poker.HandRank

var standardCards = poker.StandardCards()

// EvaluateRow ranks a row, resolving jokers to the strongest possible cards.
// Rows with fewer than three cards rank as poker.WorstRank.
func EvaluateRow(cards []poker.Card) (poker.HandRank, error) {
	rank, _, err := ResolveRow(cards)
	return rank, err
}

// ResolveRow is EvaluateRow that also reports which standard cards the jokers
// stood for.
//
// Each joker is replaced by every standard card not already fixed in the row:
// a linear scan for one joker and every unordered pair for two. The search
// is pure, so rows may be resolved concurrently.
func ResolveRow(cards []poker.Card) (poker.HandRank, []poker.Card, error) {
	if len(cards) > Back.Capacity() {
		return poker.WorstRank, nil, fmt.Errorf("%w: row of %d cards", ErrInvalidBoardState, len(cards))
	}

	hand := poker.NewHand(cards...)
	if hand.CountCards() != len(cards) {
		return poker.WorstRank, nil, fmt.Errorf("%w: duplicate card in row", ErrInvalidBoardState)
	}
	if len(cards) < poker.MinEvalCards {
		return poker.WorstRank, nil, nil
	}

	fixed := hand.WithoutJokers()
	switch hand.Jokers() {
	case 0:
		return poker.Evaluate(fixed), nil, nil
	case 1:
		rank, sub := bestWithOneJoker(fixed)
		return rank, []poker.Card{sub}, nil
	default:
		rank, a, b := bestWithTwoJokers(fixed)
		return rank, []poker.Card{a, b}, nil
	}
}

func substitutes(fixed poker.Hand) []poker.Card {
	out := make([]poker.Card, 0, len(standardCards)-fixed.CountCards())
	for _, c := range standardCards {
		if !fixed.HasCard(c) {
			out = append(out, c)
		}
	}
	return out
}

func bestWithOneJoker(fixed poker.Hand) (poker.HandRank, poker.Card) {
	best := poker.WorstRank
	var pick poker.Card
	for _, c := range substitutes(fixed) {
		rank := poker.Evaluate(fixed | poker.Hand(c))
		if rank < best {
			best, pick = rank, c
			if best == poker.BestRank {
				break
			}
		}
	}
	return best, pick
}

func bestWithTwoJokers(fixed poker.Hand) (poker.HandRank, poker.Card, poker.Card) {
	cands := substitutes(fixed)
	best := poker.WorstRank
	var pickA, pickB poker.Card
	for i := 0; i < len(cands); i++ {
		withA := fixed | poker.Hand(cands[i])
		for j := i + 1; j < len(cands); j++ {
			rank := poker.Evaluate(withA | poker.Hand(cands[j]))
			if rank < best {
				best, pickA, pickB = rank, cands[i], cands[j]
				if best == poker.BestRank {
					return best, pickA, pickB
				}
			}
		}
	}
	return best, pickA, pickB
}

// EvaluateBoard ranks all three rows concurrently.
func EvaluateBoard(b *Board) (BoardRanks, error) {
	var ranks BoardRanks
	if err := b.checkInvariants(); err != nil {
		return ranks, err
	}

	var g errgroup.Group
	for _, r := range Rows {
		cards := b.Row(r)
		g.Go(func() error {
			rank, err := EvaluateRow(cards)
			if err != nil {
				return fmt.Errorf("%s row: %w", r, err)
			}
			ranks[r] = rank
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BoardRanks{}, err
	}
	return ranks, nil
}

// Fouled reports whether ranks break the Back >= Middle >= Front ordering.
func (br BoardRanks) Fouled() bool {
	return br[Back] > br[Middle] || br[Middle] > br[Front]
}

// IsFouled evaluates a complete board and reports whether it is fouled.
func IsFouled(b *Board) (bool, error) {
	if err := b.requireComplete(); err != nil {
		return false, err
	}
	ranks, err := EvaluateBoard(b)
	if err != nil {
		return false, err
	}
	return ranks.Fouled(), nil
}

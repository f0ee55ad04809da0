package bot

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/lox/pineapple/internal/game"
	"github.com/lox/pineapple/poker"
)

// GreedyBot builds the strongest visible pattern from its opening five and
// then places cards by rank: high cards to the back, middling ones to the
// middle, low ones to the front.
type GreedyBot struct {
	logger zerolog.Logger
}

// NewGreedyBot creates a new GreedyBot instance.
func NewGreedyBot(logger zerolog.Logger) *GreedyBot {
	return &GreedyBot{logger: logger.With().Str("bot", Greedy).Logger()}
}

// pattern is a made or drawing hand in the opening five, weakest first.
type pattern int

const (
	highCards pattern = iota
	threeStraight
	threeFlush
	fourStraight
	threeOfAKind
	twoPair
	fourFlush
	straight
	flush
	fullHouse
	fourOfAKind
)

var patternNames = [...]string{
	highCards:     "high cards",
	threeStraight: "three straight",
	threeFlush:    "three flush",
	fourStraight:  "four straight",
	threeOfAKind:  "three of a kind",
	twoPair:       "two pair",
	fourFlush:     "four flush",
	straight:      "straight",
	flush:         "flush",
	fullHouse:     "full house",
	fourOfAKind:   "four of a kind",
}

func (p pattern) String() string { return patternNames[p] }

// home is the row a pattern is built in.
func (p pattern) home() game.Row {
	switch p {
	case fourOfAKind, fullHouse, flush, straight:
		return game.Back
	case fourFlush, twoPair, threeOfAKind, fourStraight:
		return game.Middle
	case threeFlush, threeStraight:
		return game.Front
	default:
		return game.Back
	}
}

func (g *GreedyBot) ChooseInitialPlacements(view game.PlayerView, cards []poker.Card) []game.Placement {
	p, plan := firstFive(cards)

	board := view.Board.Clone()
	out := make([]game.Placement, 0, len(cards))
	for _, row := range []game.Row{game.Back, game.Middle, game.Front} {
		for _, c := range plan[row] {
			target := row
			if !board.CanPlace(target) {
				target = fallbackRow(board.LegalRows())
			}
			_ = board.Place(c, target)
			out = append(out, game.Placement{Card: c, Row: target})
		}
	}
	g.logger.Debug().Stringer("pattern", p).Stringer("board", board).Msg("Opening placement")
	return out
}

// ChoosePineapple keeps the two strongest cards.
func (g *GreedyBot) ChoosePineapple(_ game.PlayerView, cards [3]poker.Card) ([2]poker.Card, poker.Card) {
	sorted := byStrengthDesc(cards[:])
	return [2]poker.Card{sorted[0], sorted[1]}, sorted[2]
}

// ChooseRow sends jacks and better to the back, eights through tens to the
// middle and the rest to the front, falling back to any row with space.
func (g *GreedyBot) ChooseRow(_ game.PlayerView, card poker.Card, legal []game.Row) game.Row {
	s := strength(card)
	switch {
	case s >= int(poker.Jack) && slices.Contains(legal, game.Back):
		return game.Back
	case s >= int(poker.Eight) && slices.Contains(legal, game.Middle):
		return game.Middle
	case slices.Contains(legal, game.Front):
		return game.Front
	default:
		return fallbackRow(legal)
	}
}

// firstFive plans the opening placement around the strongest pattern.
func firstFive(cards []poker.Card) (pattern, map[game.Row][]poker.Card) {
	p, made := findPattern(cards)
	rest := byStrengthDesc(slices.DeleteFunc(slices.Clone(cards), func(c poker.Card) bool {
		return slices.Contains(made, c)
	}))

	plan := make(map[game.Row][]poker.Card, game.NumRows)
	switch p.home() {
	case game.Back:
		if p == highCards {
			sorted := byStrengthDesc(cards)
			plan[game.Back] = sorted[:min(2, len(sorted))]
			plan[game.Middle] = sorted[min(2, len(sorted)):min(4, len(sorted))]
			plan[game.Front] = sorted[min(4, len(sorted)):]
			break
		}
		plan[game.Back] = made
		n := min(2, len(rest))
		plan[game.Middle] = rest[:n]
		plan[game.Front] = rest[n:]
	case game.Middle:
		plan[game.Middle] = made
		if len(rest) > 0 {
			plan[game.Back] = rest[:1]
			plan[game.Front] = rest[1:]
		}
	case game.Front:
		plan[game.Front] = made
		n := min(2, len(rest))
		plan[game.Back] = rest[:n]
		plan[game.Middle] = rest[n:]
	}
	return p, plan
}

// findPattern returns the strongest pattern among the natural cards and the
// cards that make it. Jokers never join a pattern.
func findPattern(cards []poker.Card) (pattern, []poker.Card) {
	var natural []poker.Card
	var byRank [13][]poker.Card
	var bySuit [4][]poker.Card
	for _, c := range cards {
		if c.IsJoker() {
			continue
		}
		natural = append(natural, c)
		byRank[c.Rank()] = append(byRank[c.Rank()], c)
		bySuit[c.Suit()] = append(bySuit[c.Suit()], c)
	}

	groups := func(size int) [][]poker.Card {
		var out [][]poker.Card
		for r := int(poker.Ace); r >= 0; r-- {
			if len(byRank[r]) >= size {
				out = append(out, byRank[r])
			}
		}
		return out
	}
	suited := func(size int) []poker.Card {
		for _, s := range bySuit {
			if len(s) >= size {
				return s[:size]
			}
		}
		return nil
	}

	if quads := groups(4); len(quads) > 0 {
		return fourOfAKind, quads[0]
	}
	trips := groups(3)
	if len(trips) > 0 {
		for _, pair := range groups(2) {
			if pair[0].Rank() != trips[0][0].Rank() {
				return fullHouse, append(slices.Clone(trips[0][:3]), pair[:2]...)
			}
		}
	}
	if len(natural) >= 5 {
		if s := suited(5); s != nil {
			return flush, s
		}
		if run := sequentialRun(natural, 5); run != nil {
			return straight, run
		}
	}
	if s := suited(4); s != nil {
		return fourFlush, s
	}
	if pairs := groups(2); len(pairs) >= 2 {
		return twoPair, append(slices.Clone(pairs[0][:2]), pairs[1][:2]...)
	}
	if len(trips) > 0 {
		return threeOfAKind, trips[0][:3]
	}
	if run := sequentialRun(natural, 4); run != nil {
		return fourStraight, run
	}
	if s := suited(3); s != nil {
		return threeFlush, s
	}
	if run := sequentialRun(natural, 3); run != nil {
		return threeStraight, run
	}
	return highCards, nil
}

// sequentialRun returns n cards of consecutive rank, ace high only, taking
// the lowest run found.
func sequentialRun(cards []poker.Card, n int) []poker.Card {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, func(a, b poker.Card) int {
		return int(a.Rank()) - int(b.Rank())
	})
	for i := 0; i+n <= len(sorted); i++ {
		window := sorted[i : i+n]
		ok := true
		for j := 1; j < n; j++ {
			if window[j].Rank() != window[j-1].Rank()+1 {
				ok = false
				break
			}
		}
		if ok {
			return slices.Clone(window)
		}
	}
	return nil
}

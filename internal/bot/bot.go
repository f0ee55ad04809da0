// Package bot provides automated game.Decider strategies.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lox/pineapple/internal/game"
	"github.com/lox/pineapple/poker"
)

// Strategy names accepted by New.
const (
	Random = "random"
	Greedy = "greedy"
)

// Names lists the available strategies.
func Names() []string {
	return []string{Random, Greedy}
}

// New creates a decider by strategy name.
func New(name string, rng *rand.Rand, logger zerolog.Logger) (game.Decider, error) {
	switch strings.ToLower(name) {
	case Random:
		return NewRandBot(rng, logger), nil
	case Greedy:
		return NewGreedyBot(logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
}

// strength orders cards for the heuristics: jokers outrank aces.
func strength(c poker.Card) int {
	if c.IsJoker() {
		return int(poker.Ace) + 1
	}
	return int(c.Rank())
}

// byStrengthDesc sorts strongest first, breaking ties by suit for determinism.
func byStrengthDesc(cards []poker.Card) []poker.Card {
	out := slices.Clone(cards)
	slices.SortStableFunc(out, func(a, b poker.Card) int {
		if d := strength(b) - strength(a); d != 0 {
			return d
		}
		return int(a.Suit()) - int(b.Suit())
	})
	return out
}

// fallbackRow returns the first legal row, preferring the back.
func fallbackRow(legal []game.Row) game.Row {
	for _, r := range []game.Row{game.Back, game.Middle, game.Front} {
		if slices.Contains(legal, r) {
			return r
		}
	}
	return game.Back
}

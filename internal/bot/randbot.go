package bot

import (
	rand "math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lox/pineapple/internal/game"
	"github.com/lox/pineapple/poker"
)

// RandBot is a simple bot that makes uniform random legal decisions.
type RandBot struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewRandBot creates a new RandBot instance.
func NewRandBot(rng *rand.Rand, logger zerolog.Logger) *RandBot {
	if rng == nil {
		panic("rng is required for RandBot")
	}
	return &RandBot{rng: rng, logger: logger.With().Str("bot", Random).Logger()}
}

func (r *RandBot) ChooseInitialPlacements(view game.PlayerView, cards []poker.Card) []game.Placement {
	board := view.Board.Clone()
	out := make([]game.Placement, 0, len(cards))
	for _, c := range cards {
		row := r.ChooseRow(view, c, board.LegalRows())
		if err := board.Place(c, row); err != nil {
			r.logger.Debug().Err(err).Msg("No room for opening card")
		}
		out = append(out, game.Placement{Card: c, Row: row})
	}
	return out
}

func (r *RandBot) ChoosePineapple(_ game.PlayerView, cards [3]poker.Card) ([2]poker.Card, poker.Card) {
	i := r.rng.IntN(len(cards))
	var keep [2]poker.Card
	n := 0
	for j, c := range cards {
		if j != i {
			keep[n] = c
			n++
		}
	}
	return keep, cards[i]
}

func (r *RandBot) ChooseRow(_ game.PlayerView, _ poker.Card, legal []game.Row) game.Row {
	if len(legal) == 0 {
		return game.Back
	}
	return legal[r.rng.IntN(len(legal))]
}

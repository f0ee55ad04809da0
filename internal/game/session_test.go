package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pineapple/poker"
)

// fillDecider fills the back row first and always discards the third card.
type fillDecider struct{}

func (fillDecider) ChooseInitialPlacements(view PlayerView, cards []poker.Card) []Placement {
	board := view.Board.Clone()
	out := make([]Placement, 0, len(cards))
	for _, c := range cards {
		legal := board.LegalRows()
		row := legal[len(legal)-1]
		_ = board.Place(c, row)
		out = append(out, Placement{Card: c, Row: row})
	}
	return out
}

func (fillDecider) ChoosePineapple(_ PlayerView, cards [3]poker.Card) ([2]poker.Card, poker.Card) {
	return [2]poker.Card{cards[0], cards[1]}, cards[2]
}

func (fillDecider) ChooseRow(_ PlayerView, _ poker.Card, legal []Row) Row {
	return legal[len(legal)-1]
}

// stubbornDecider only ever asks for the front row.
type stubbornDecider struct {
	fillDecider
	asked int
}

func (d *stubbornDecider) ChooseInitialPlacements(_ PlayerView, cards []poker.Card) []Placement {
	d.asked++
	out := make([]Placement, len(cards))
	for i, c := range cards {
		out[i] = Placement{Card: c, Row: Front}
	}
	return out
}

func names() [NumSeats]string {
	return [NumSeats]string{"alice", "bob"}
}

func initialPlacements(cards []poker.Card) []Placement {
	rows := []Row{Front, Middle, Middle, Back, Back}
	out := make([]Placement, len(cards))
	for i, c := range cards {
		out[i] = Placement{Card: c, Row: rows[i]}
	}
	return out
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	t.Run("requires RNG", func(t *testing.T) {
		assert.Panics(t, func() { NewSession(nil, names()) })
	})

	t.Run("defaults", func(t *testing.T) {
		s := NewSession(testRNG(1), names())
		assert.Equal(t, PhaseInit, s.Phase())
		assert.Equal(t, -1, s.Actor())
		assert.Equal(t, poker.DeckSize, s.DeckRemaining())
		assert.NotEmpty(t, s.ID())
		assert.Nil(t, s.Result())
		assert.Equal(t, "bob", s.Player(1).Name)
	})

	t.Run("options", func(t *testing.T) {
		s := NewSession(testRNG(1), names(),
			WithID("hand-1"),
			WithFantasyland([NumSeats]bool{false, true}),
		)
		assert.Equal(t, "hand-1", s.ID())
		assert.False(t, s.Player(0).Fantasyland)
		assert.True(t, s.Player(1).Fantasyland)
	})
}

func TestSessionStart(t *testing.T) {
	t.Parallel()
	s := NewSession(testRNG(2), names())
	require.NoError(t, s.Start())

	assert.Equal(t, PhaseInitialPlacement, s.Phase())
	assert.Equal(t, 0, s.Actor())
	assert.Len(t, s.Player(0).Hand, InitialCards)
	assert.Len(t, s.Player(1).Hand, InitialCards)
	assert.Equal(t, poker.DeckSize-2*InitialCards, s.DeckRemaining())

	assert.ErrorIs(t, s.Start(), ErrWrongPhase)
}

func TestSessionStepThrough(t *testing.T) {
	t.Parallel()
	s := NewSession(testRNG(3), names())
	require.NoError(t, s.Start())

	for seat := range NumSeats {
		require.NoError(t, s.PlaceInitial(seat, initialPlacements(s.Player(seat).Hand)))
	}
	assert.Equal(t, PhasePineapple, s.Phase())
	assert.Equal(t, 1, s.Round())

	for round := 1; round <= PineappleRounds; round++ {
		for seat := range NumSeats {
			require.Equal(t, seat, s.Actor())
			require.Equal(t, round, s.Round())
			hand := s.Player(seat).Hand
			require.Len(t, hand, PineappleCards)

			rows := s.Player(seat).LegalRows()
			row := rows[len(rows)-1]
			place := [2]Placement{{hand[0], row}, {hand[1], row}}
			if s.Player(seat).Board.Len(row)+2 > row.Capacity() {
				place[1].Row = rows[0]
			}
			require.NoError(t, s.PlayPineapple(seat, place, hand[2]))
		}
	}

	assert.Equal(t, PhaseComplete, s.Phase())
	assert.Equal(t, -1, s.Actor())
	require.NotNil(t, s.Result())
	assert.Equal(t, s.Result().Fantasyland, s.Fantasyland())
	assertCardsConserved(t, s)
}

func assertCardsConserved(t *testing.T, s *Session) {
	t.Helper()
	var seen poker.Hand
	total := 0
	for seat := range NumSeats {
		p := s.Player(seat)
		assert.True(t, p.Board.IsComplete())
		assert.Equal(t, BoardSize, p.Board.Count())
		assert.Len(t, p.Discards, PineappleRounds)
		assert.Empty(t, p.Hand)

		seen |= p.Board.Cards() | poker.NewHand(p.Discards...)
		total += p.Board.Count() + len(p.Discards)
	}
	assert.Equal(t, total, seen.CountCards(), "no card is in two places")
	assert.Equal(t, poker.DeckSize-total, s.DeckRemaining())
	assert.Equal(t, 20, s.DeckRemaining())
}

func TestSessionIllegalMovesDoNotAdvance(t *testing.T) {
	t.Parallel()
	s := NewSession(testRNG(4), names())
	require.NoError(t, s.Start())
	hand := s.Player(0).Hand

	t.Run("out of turn", func(t *testing.T) {
		err := s.PlaceInitial(1, initialPlacements(s.Player(1).Hand))
		assert.ErrorIs(t, err, ErrIllegalMove)
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("too few cards", func(t *testing.T) {
		err := s.PlaceInitial(0, initialPlacements(hand[:4]))
		assert.ErrorIs(t, err, ErrIllegalPlacement)
	})

	t.Run("overfull row", func(t *testing.T) {
		placements := initialPlacements(hand)
		for i := range placements {
			placements[i].Row = Front
		}
		err := s.PlaceInitial(0, placements)
		var illegal *IllegalMoveError
		require.ErrorAs(t, err, &illegal)
		assert.Equal(t, 0, illegal.Seat)
		assert.ErrorIs(t, err, ErrIllegalPlacement)
	})

	t.Run("card not held", func(t *testing.T) {
		placements := initialPlacements(hand)
		placements[0].Card = s.Player(1).Hand[0]
		assert.ErrorIs(t, s.PlaceInitial(0, placements), ErrIllegalPlacement)
	})

	t.Run("wrong phase", func(t *testing.T) {
		var p [2]Placement
		err := s.PlayPineapple(0, p, hand[0])
		assert.ErrorIs(t, err, ErrWrongPhase)
		assert.False(t, errors.Is(err, ErrIllegalMove))
	})

	assert.Equal(t, PhaseInitialPlacement, s.Phase())
	assert.Equal(t, 0, s.Actor())
	assert.Len(t, s.Player(0).Hand, InitialCards)
	assert.Zero(t, s.Player(0).Board.Count(), "rejected placements are atomic")

	require.NoError(t, s.PlaceInitial(0, initialPlacements(hand)))
	require.NoError(t, s.PlaceInitial(1, initialPlacements(s.Player(1).Hand)))
	dealt := s.Player(0).Hand
	remaining := s.DeckRemaining()

	t.Run("discard not dealt", func(t *testing.T) {
		place := [2]Placement{{dealt[0], Middle}, {dealt[1], Back}}
		err := s.PlayPineapple(0, place, s.Player(1).Hand[0])
		assert.ErrorIs(t, err, ErrIllegalDiscard)
	})

	t.Run("same card twice", func(t *testing.T) {
		place := [2]Placement{{dealt[0], Middle}, {dealt[0], Back}}
		err := s.PlayPineapple(0, place, dealt[2])
		assert.ErrorIs(t, err, ErrIllegalDiscard)
	})

	t.Run("unknown row", func(t *testing.T) {
		place := [2]Placement{{dealt[0], Middle}, {dealt[1], Row(9)}}
		err := s.PlayPineapple(0, place, dealt[2])
		assert.ErrorIs(t, err, ErrIllegalPlacement)
	})

	assert.Equal(t, 1, s.Round())
	assert.Equal(t, 0, s.Actor())
	assert.Equal(t, dealt, s.Player(0).Hand)
	assert.Empty(t, s.Player(0).Discards)
	assert.Equal(t, remaining, s.DeckRemaining())
}

func TestSessionPlay(t *testing.T) {
	t.Parallel()
	for seed := range uint64(5) {
		s := NewSession(testRNG(100+seed), names())
		res, err := s.Play(context.Background(), [NumSeats]Decider{fillDecider{}, fillDecider{}})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, PhaseComplete, s.Phase())
		assert.Equal(t, res.Points[0]-res.Points[1], res.Net())
		assertCardsConserved(t, s)
	}
}

func TestSessionPlayAbortsOnExhaustedDeck(t *testing.T) {
	t.Parallel()
	deck, err := poker.NewDeckFromCards(poker.AllCards()[:12])
	require.NoError(t, err)

	s := NewSession(testRNG(5), names(), WithDeck(deck))
	res, err := s.Play(context.Background(), [NumSeats]Decider{fillDecider{}, fillDecider{}})
	require.ErrorIs(t, err, poker.ErrDeckExhausted)
	assert.Nil(t, res)
	assert.Equal(t, PhaseAborted, s.Phase())
	assert.ErrorIs(t, s.Err(), poker.ErrDeckExhausted)
	assert.Nil(t, s.Result())
}

func TestSessionPlayGivesUpOnIllegalDecisions(t *testing.T) {
	t.Parallel()
	d := &stubbornDecider{}
	s := NewSession(testRNG(6), names(), WithMaxAttempts(2))

	_, err := s.Play(context.Background(), [NumSeats]Decider{d, fillDecider{}})
	require.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, 2, d.asked)
	assert.Equal(t, PhaseAborted, s.Phase())
}

func TestSessionPlayHonoursContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession(testRNG(7), names())
	_, err := s.Play(ctx, [NumSeats]Decider{fillDecider{}, fillDecider{}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, PhaseAborted, s.Phase())
}

func TestSessionStackedDeckScenario(t *testing.T) {
	t.Parallel()
	// fillDecider sends the opening five to the back, then keeps the first
	// two of each deal, filling the middle before the front.
	var cards []poker.Card
	for _, deal := range []string{
		"Ac Ad Ah As 2s", // seat 0 opening
		"2c 3d 4h 6s 8c", // seat 1 opening
		"Kc Kd 2d", "9c Td 2h",
		"Kh 5c 3c", "Jh 9s 3h",
		"7c Qc 4c", "5h 7d 4d",
		"Qd 9d 5d", "Ts Js 6c",
	} {
		cards = append(cards, poker.MustParseCards(deal)...)
	}
	deck, err := poker.NewDeckFromCards(cards)
	require.NoError(t, err)

	s := NewSession(testRNG(8), names(), WithDeck(deck))
	res, err := s.Play(context.Background(), [NumSeats]Decider{fillDecider{}, fillDecider{}})
	require.NoError(t, err)

	assert.Equal(t, "Qc Qd 9d / Kc Kd Kh 5c 7c / Ac Ad Ah As 2s", s.Player(0).Board.String())
	assert.Equal(t, [NumSeats]bool{true, false}, res.Fantasyland)
	assert.Equal(t, 29, res.Royalties[0])
	assert.Equal(t, "7d Ts Js / 9c Td Jh 9s 5h / 2c 3d 4h 6s 8c", s.Player(1).Board.String())
	assert.Equal(t, [NumSeats]bool{false, true}, res.Fouled)
	assert.Equal(t, FoulBonus+29, res.Points[0])
	assert.Equal(t, 0, s.DeckRemaining())
}

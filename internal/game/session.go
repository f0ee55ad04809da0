package game

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/rs/zerolog"

	"github.com/lox/pineapple/poker"
)

const (
	// NumSeats is the number of players in a hand.
	NumSeats = 2
	// InitialCards are dealt to each seat before the first placement.
	InitialCards = 5
	// PineappleCards are dealt to the acting seat each round.
	PineappleCards = 3
	// PineappleRounds follow the initial placement.
	PineappleRounds = 4
)

// Phase is the state of a Session.
type Phase uint8

const (
	PhaseInit Phase = iota
	PhaseInitialPlacement
	PhasePineapple
	PhaseComplete
	PhaseAborted
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseInitialPlacement:
		return "initial-placement"
	case PhasePineapple:
		return "pineapple"
	case PhaseComplete:
		return "complete"
	case PhaseAborted:
		return "aborted"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Session sequences one hand between two seats: five cards each placed up
// front, then four rounds of deal three, place two, discard one.
//
// A Session is not safe for concurrent use.
type Session struct {
	id          string
	deck        *poker.Deck
	players     [NumSeats]*Player
	phase       Phase
	round       int
	actor       int
	result      *Result
	err         error
	logger      zerolog.Logger
	maxAttempts int
}

// NewSession creates a hand with a required RNG and optional configuration.
// The RNG is required to make randomness explicit and testing deterministic.
//
// Example usage:
//
//	s := NewSession(randutil.New(42), [2]string{"alice", "bob"})
//	res, err := s.Play(ctx, [2]Decider{a, b})
//
//	// With a stacked deck
//	s := NewSession(rng, names, WithDeck(deck), WithLogger(log))
func NewSession(rng *rand.Rand, names [NumSeats]string, opts ...SessionOption) *Session {
	if rng == nil {
		panic("rng is required for session creation")
	}

	cfg := defaultSessionConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	deck := cfg.deck
	if deck == nil {
		deck = poker.NewDeck(rng)
	}

	s := &Session{
		id:          cfg.sessionID(),
		deck:        deck,
		phase:       PhaseInit,
		actor:       -1,
		maxAttempts: cfg.maxAttempts,
	}
	s.logger = cfg.logger.With().Str("component", "session").Str("session", s.id).Logger()
	for seat, name := range names {
		s.players[seat] = NewPlayer(seat, name)
		s.players[seat].Fantasyland = cfg.fantasyland[seat]
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Round returns the pineapple round (1-4), or 0 outside PhasePineapple.
func (s *Session) Round() int { return s.round }

// Actor returns the seat expected to decide next, or -1 when no decision is pending.
func (s *Session) Actor() int { return s.actor }

// DeckRemaining returns how many cards are left to deal.
func (s *Session) DeckRemaining() int { return s.deck.CardsRemaining() }

// Err returns the reason the session aborted, if it did.
func (s *Session) Err() error { return s.err }

// Result returns the settlement once the session is complete, otherwise nil.
func (s *Session) Result() *Result { return s.result }

// Player returns a snapshot of a seat.
func (s *Session) Player(seat int) PlayerView {
	return s.players[seat].View()
}

// Fantasyland reports which seats qualified for bonus mode on the next hand.
// Both flags are false until the session completes.
func (s *Session) Fantasyland() [NumSeats]bool {
	if s.result == nil {
		return [NumSeats]bool{}
	}
	return s.result.Fantasyland
}

// Start deals the opening cards, seat 0 first.
func (s *Session) Start() error {
	if s.phase != PhaseInit {
		return fmt.Errorf("%w: start in %s", ErrWrongPhase, s.phase)
	}
	s.logger.Debug().Int("deck", s.deck.CardsRemaining()).Msg("Session starting")
	for seat := range s.players {
		if err := s.deal(seat, InitialCards); err != nil {
			return err
		}
	}
	s.phase = PhaseInitialPlacement
	s.actor = 0
	return nil
}

// PlaceInitial places the five opening cards for seat. The placements must
// cover exactly the held cards; on any error nothing is placed.
func (s *Session) PlaceInitial(seat int, placements []Placement) error {
	if err := s.checkTurn(seat, PhaseInitialPlacement); err != nil {
		return err
	}

	p := s.players[seat]
	if len(placements) != len(p.Hand) {
		return illegalMove(seat, ErrIllegalPlacement, "placed %d of %d cards", len(placements), len(p.Hand))
	}

	next := p.clone()
	for _, pl := range placements {
		if err := next.Place(pl.Card, pl.Row); err != nil {
			return illegalMove(seat, err, "placing %s", pl)
		}
	}
	s.players[seat] = next
	s.logger.Debug().Int("seat", seat).Stringer("board", next.Board).Msg("Initial placement")

	if seat == 0 {
		s.actor = 1
		return nil
	}
	return s.startRound(1)
}

// PlayPineapple keeps two of the three dealt cards and discards the third.
// place and discard must partition the dealt cards; on any error nothing changes.
func (s *Session) PlayPineapple(seat int, place [2]Placement, discard poker.Card) error {
	if err := s.checkTurn(seat, PhasePineapple); err != nil {
		return err
	}

	p := s.players[seat]
	chosen := poker.NewHand(place[0].Card, place[1].Card, discard)
	if chosen.CountCards() != PineappleCards || chosen != poker.NewHand(p.Hand...) {
		return illegalMove(seat, ErrIllegalDiscard, "%s, %s and discard %s do not match dealt %v",
			place[0].Card, place[1].Card, discard, p.Hand)
	}

	next := p.clone()
	for _, pl := range place {
		if err := next.Place(pl.Card, pl.Row); err != nil {
			return illegalMove(seat, err, "placing %s", pl)
		}
	}
	if err := next.Discard(discard); err != nil {
		return illegalMove(seat, err, "discarding %s", discard)
	}
	s.players[seat] = next
	s.logger.Debug().
		Int("seat", seat).
		Int("round", s.round).
		Stringer("place_a", place[0]).
		Stringer("place_b", place[1]).
		Stringer("discard", discard).
		Msg("Pineapple")

	switch {
	case seat == 0:
		s.actor = 1
		return s.deal(1, PineappleCards)
	case s.round < PineappleRounds:
		return s.startRound(s.round + 1)
	default:
		return s.complete()
	}
}

func (s *Session) checkTurn(seat int, want Phase) error {
	if s.phase != want {
		return fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
	}
	if seat < 0 || seat >= NumSeats {
		return illegalMove(seat, ErrNotYourTurn, "no such seat")
	}
	if seat != s.actor {
		return illegalMove(seat, ErrNotYourTurn, "seat %d is acting", s.actor)
	}
	return nil
}

func (s *Session) startRound(round int) error {
	s.phase = PhasePineapple
	s.round = round
	s.actor = 0
	s.logger.Debug().Int("round", round).Msg("Round starting")
	return s.deal(0, PineappleCards)
}

func (s *Session) deal(seat, n int) error {
	cards, err := s.deck.Draw(n)
	if err != nil {
		err = fmt.Errorf("dealing %d to seat %d: %w", n, seat, err)
		s.abort(err)
		return err
	}
	s.players[seat].Receive(cards...)
	s.logger.Debug().Int("seat", seat).Str("cards", poker.NewHand(cards...).String()).Msg("Dealt")
	return nil
}

func (s *Session) abort(err error) {
	s.phase = PhaseAborted
	s.actor = -1
	s.err = err
	s.logger.Error().Err(err).Int("round", s.round).Msg("Session aborted")
}

func (s *Session) complete() error {
	res, err := Compare(s.players[0].Board, s.players[1].Board)
	if err != nil {
		s.abort(err)
		return err
	}
	for seat := range res.Fantasyland {
		res.Fantasyland[seat] = !res.Fouled[seat] && frontQualifies(res.Ranks[seat][Front])
	}

	s.result = res
	s.phase = PhaseComplete
	s.actor = -1
	s.round = 0
	s.logger.Info().
		Ints("points", res.Points[:]).
		Ints("royalties", res.Royalties[:]).
		Bools("fouled", res.Fouled[:]).
		Bools("fantasyland", res.Fantasyland[:]).
		Msg("Session complete")
	return nil
}

// Play drives the session to completion through deciders, starting it first
// if needed. A seat that makes an illegal decision is asked again, up to
// the configured attempt limit, after which the session aborts.
func (s *Session) Play(ctx context.Context, deciders [NumSeats]Decider) (*Result, error) {
	if s.phase == PhaseInit {
		if err := s.Start(); err != nil {
			return nil, err
		}
	}

	for s.phase == PhaseInitialPlacement || s.phase == PhasePineapple {
		if err := ctx.Err(); err != nil {
			s.abort(err)
			return nil, err
		}
		if err := s.decide(s.actor, deciders[s.actor]); err != nil {
			return nil, err
		}
	}

	if s.phase != PhaseComplete {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
	}
	return s.result, nil
}

func (s *Session) decide(seat int, d Decider) error {
	var err error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		view := s.players[seat].View()
		switch s.phase {
		case PhaseInitialPlacement:
			err = s.PlaceInitial(seat, d.ChooseInitialPlacements(view, slices.Clone(view.Hand)))
		case PhasePineapple:
			err = s.askPineapple(seat, d, view)
		}
		if err == nil || !errors.Is(err, ErrIllegalMove) {
			return err
		}
		s.logger.Warn().Err(err).Int("seat", seat).Int("attempt", attempt).Msg("Illegal decision")
	}
	err = fmt.Errorf("seat %d gave up after %d attempts: %w", seat, s.maxAttempts, err)
	s.abort(err)
	return err
}

// askPineapple collects the keep/discard split and then a row for each kept
// card, showing the decider a board that includes its earlier choice.
func (s *Session) askPineapple(seat int, d Decider, view PlayerView) error {
	if len(view.Hand) != PineappleCards {
		return fmt.Errorf("%w: seat %d holds %d cards", ErrInvalidBoardState, seat, len(view.Hand))
	}
	keep, discard := d.ChoosePineapple(view, [3]poker.Card(view.Hand))

	board := view.Board.Clone()
	var place [2]Placement
	for i, card := range keep {
		v := view
		v.Board = board.Clone()
		row := d.ChooseRow(v, card, board.LegalRows())
		place[i] = Placement{Card: card, Row: row}
		// PlayPineapple reports the failure with full context.
		_ = board.Place(card, row)
	}
	return s.PlayPineapple(seat, place, discard)
}

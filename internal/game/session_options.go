package game

import (
	"github.com/rs/zerolog"

	"github.com/lox/pineapple/internal/gameid"
	"github.com/lox/pineapple/poker"
)

// DefaultMaxAttempts bounds how often Play re-asks a decider after an illegal decision.
const DefaultMaxAttempts = 3

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	deck        *poker.Deck
	logger      zerolog.Logger
	fantasyland [NumSeats]bool
	id          string
	maxAttempts int
}

func defaultSessionConfig() *sessionConfig {
	return &sessionConfig{
		logger:      zerolog.Nop(),
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithDeck sets a specific deck, typically a stacked one from
// poker.NewDeckFromCards. This overrides the RNG for deck creation.
func WithDeck(deck *poker.Deck) SessionOption {
	return func(c *sessionConfig) {
		c.deck = deck
	}
}

// WithLogger attaches a structured logger. Sessions are silent by default.
func WithLogger(logger zerolog.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithFantasyland marks which seats qualified on the previous hand.
func WithFantasyland(flags [NumSeats]bool) SessionOption {
	return func(c *sessionConfig) {
		c.fantasyland = flags
	}
}

// WithID sets the session identifier. By default one is generated.
func WithID(id string) SessionOption {
	return func(c *sessionConfig) {
		c.id = id
	}
}

// WithMaxAttempts sets how many decisions Play requests from a seat before
// giving up on the hand. Values below one are ignored.
func WithMaxAttempts(n int) SessionOption {
	return func(c *sessionConfig) {
		if n >= 1 {
			c.maxAttempts = n
		}
	}
}

func (c *sessionConfig) sessionID() string {
	if c.id != "" {
		return c.id
	}
	return gameid.Generate()
}

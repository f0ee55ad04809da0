package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 clubs][13 diamonds][13 hearts][13 spades][joker 1][joker 2]
type Card uint64

// Hand is a set of cards; multiple cards are multiple bits.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

const (
	// NoRank is returned by Rank for jokers and the zero card.
	NoRank uint8 = 255
	// NoSuit is returned by Suit for jokers and the zero card.
	NoSuit uint8 = 255

	standardCount = 52
	jokerBit      = standardCount
	rankMask      = 0x1FFF
)

// The two wildcards. They have no rank or suit until a row is evaluated.
const (
	Joker1 Card = 1 << jokerBit
	Joker2 Card = 1 << (jokerBit + 1)
)

const (
	ranks = "23456789TJQKA"
	suits = "cdhs"
)

// NewCard creates a standard card from rank and suit.
func NewCard(rank, suit uint8) Card {
	offset := suit*13 + rank
	return Card(1) << offset
}

// bitPosition returns which bit this card occupies (0-53), 255 for the zero card.
func (c Card) bitPosition() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// IsJoker reports whether the card is one of the two wildcards.
func (c Card) IsJoker() bool {
	return c == Joker1 || c == Joker2
}

// IsValid reports whether c is exactly one of the 54 cards.
func (c Card) IsValid() bool {
	return bits.OnesCount64(uint64(c)) == 1 && c.bitPosition() < jokerBit+2
}

// Rank returns the rank of the card (0-12), or NoRank for jokers.
func (c Card) Rank() uint8 {
	pos := c.bitPosition()
	if pos >= standardCount {
		return NoRank
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3), or NoSuit for jokers.
func (c Card) Suit() uint8 {
	pos := c.bitPosition()
	if pos >= standardCount {
		return NoSuit
	}
	return pos / 13
}

// Value returns the conventional rank value, 2 through 14 (ace high).
// Jokers have value 0.
func (c Card) Value() int {
	r := c.Rank()
	if r == NoRank {
		return 0
	}
	return int(r) + 2
}

// String returns the string representation (e.g., "As", "Kh", "X1").
func (c Card) String() string {
	switch c {
	case Joker1:
		return "X1"
	case Joker2:
		return "X2"
	}

	rank := c.Rank()
	suit := c.Suit()
	if rank > 12 || suit > 3 {
		return "??"
	}
	return string(ranks[rank]) + string(suits[suit])
}

// RankString returns the single-character rank symbol ("A", "T", "7").
func RankString(rank uint8) string {
	if rank > 12 {
		return "?"
	}
	return string(ranks[rank])
}

// ParseCard parses a string like "As" into a Card. Jokers are "X1" and "X2".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	switch strings.ToUpper(s) {
	case "X1":
		return Joker1, nil
	case "X2":
		return Joker2, nil
	}

	rank := strings.IndexByte(ranks, upper(s[0]))
	if rank < 0 {
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}

	suit := strings.IndexByte(suits, lower(s[1]))
	if suit < 0 {
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(uint8(rank), uint8(suit)), nil
}

// MustParseCard is ParseCard that panics on error. Intended for tests and fixtures.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a card list, either space separated ("As Kd X1") or
// concatenated ("AsKdX1").
func ParseCards(s string) ([]Card, error) {
	compact := strings.Join(strings.Fields(s), "")
	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("invalid card list: %q", s)
	}

	cards := make([]Card, 0, len(compact)/2)
	var seen Hand
	for i := 0; i < len(compact); i += 2 {
		c, err := ParseCard(compact[i : i+2])
		if err != nil {
			return nil, err
		}
		if seen.HasCard(c) {
			return nil, fmt.Errorf("duplicate card: %s", c)
		}
		seen.AddCard(c)
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards that panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// StandardCards returns the 52 non-wild cards, clubs first, deuce to ace.
func StandardCards() []Card {
	cards := make([]Card, 0, standardCount)
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// AllCards returns the full 54-card universe: StandardCards followed by both jokers.
func AllCards() []Card {
	return append(StandardCards(), Joker1, Joker2)
}

// NewHand creates a hand from multiple cards
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// RemoveCard removes a card from the hand
func (h *Hand) RemoveCard(c Card) {
	*h &^= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// Jokers returns how many wildcards the hand holds.
func (h Hand) Jokers() int {
	return bits.OnesCount64(uint64(h) >> jokerBit)
}

// WithoutJokers returns the hand with both wildcards removed.
func (h Hand) WithoutJokers() Hand {
	return h &^ Hand(Joker1|Joker2)
}

// GetSuitMask returns the cards of a specific suit as a rank bitmask
func (h Hand) GetSuitMask(suit uint8) uint16 {
	offset := suit * 13
	return uint16((h >> offset) & rankMask)
}

// GetRankMask returns a bitmask of which ranks are present
func (h Hand) GetRankMask() uint16 {
	var mask uint16
	for suit := range uint8(4) {
		mask |= h.GetSuitMask(suit)
	}
	return mask
}

// Cards returns the cards in the hand in bit order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rest := uint64(h); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(rest&-rest))
	}
	return cards
}

// String renders the hand as concatenated cards, e.g. "2c7dAs".
func (h Hand) String() string {
	var b strings.Builder
	for _, c := range h.Cards() {
		b.WriteString(c.String())
	}
	return b.String()
}

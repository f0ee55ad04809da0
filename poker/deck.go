package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a pineapple deck: 52 standard cards plus two jokers.
const DeckSize = standardCount + 2

// ErrDeckExhausted is returned when a draw asks for more cards than remain.
// Play assumes the deck never runs out, so callers treat it as fatal for the hand.
var ErrDeckExhausted = errors.New("poker: deck exhausted")

// Deck represents the 54-card deck with a draw cursor.
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{rng: rng}
	copy(d.cards[:], AllCards())
	d.Shuffle()
	return d
}

// NewDeckFromCards creates an unshuffled deck that draws cards in the given
// order. The list may be shorter than a full deck, which makes exhaustion
// reachable in tests.
func NewDeckFromCards(cards []Card) (*Deck, error) {
	if len(cards) > DeckSize {
		return nil, fmt.Errorf("stacked deck has %d cards, max %d", len(cards), DeckSize)
	}

	var seen Hand
	for _, c := range cards {
		if !c.IsValid() {
			return nil, fmt.Errorf("stacked deck contains invalid card %#x", uint64(c))
		}
		if seen.HasCard(c) {
			return nil, fmt.Errorf("stacked deck contains %s twice", c)
		}
		seen.AddCard(c)
	}

	d := &Deck{next: DeckSize - len(cards)}
	copy(d.cards[d.next:], cards)
	return d, nil
}

// Shuffle shuffles the whole deck using Fisher-Yates and resets the cursor.
// A stacked deck has no RNG and is left untouched.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns n cards from the top of the deck. It never
// returns a partial draw.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: wanted %d, %d remaining", ErrDeckExhausted, n, d.CardsRemaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Reset reshuffles the full deck.
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Remaining returns the undrawn cards as a set.
func (d *Deck) Remaining() Hand {
	return NewHand(d.cards[d.next:]...)
}

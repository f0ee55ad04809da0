package poker

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestDeckDraw(t *testing.T) {
	t.Parallel()
	deck := NewDeck(testRNG(42))
	require.Equal(t, DeckSize, deck.CardsRemaining())

	first, err := deck.Draw(5)
	require.NoError(t, err)
	require.Len(t, first, 5)

	second, err := deck.Draw(3)
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, DeckSize-8, deck.CardsRemaining())

	seen := NewHand(first...)
	for _, c := range second {
		assert.False(t, seen.HasCard(c), "dealt %s twice", c)
	}
	assert.Zero(t, deck.Remaining()&seen, "drawn cards are gone from the deck")
}

func TestDeckContainsFullUniverse(t *testing.T) {
	t.Parallel()
	deck := NewDeck(testRNG(7))

	cards, err := deck.Draw(DeckSize)
	require.NoError(t, err)

	h := NewHand(cards...)
	assert.Equal(t, DeckSize, h.CountCards())
	assert.Equal(t, 2, h.Jokers())
}

func TestDeckExhausted(t *testing.T) {
	t.Parallel()
	deck := NewDeck(testRNG(1))

	_, err := deck.Draw(DeckSize - 2)
	require.NoError(t, err)

	cards, err := deck.Draw(3)
	require.ErrorIs(t, err, ErrDeckExhausted)
	assert.Nil(t, cards)
	assert.Equal(t, 2, deck.CardsRemaining(), "a failed draw takes nothing")

	deck.Reset()
	assert.Equal(t, DeckSize, deck.CardsRemaining())
}

func TestDeckDeterministic(t *testing.T) {
	t.Parallel()

	a, err := NewDeck(testRNG(99)).Draw(DeckSize)
	require.NoError(t, err)
	b, err := NewDeck(testRNG(99)).Draw(DeckSize)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewDeck(testRNG(100)).Draw(DeckSize)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestNewDeckFromCards(t *testing.T) {
	t.Parallel()

	stacked := MustParseCards("As Kd X1 2c")
	deck, err := NewDeckFromCards(stacked)
	require.NoError(t, err)
	assert.Equal(t, 4, deck.CardsRemaining())

	got, err := deck.Draw(4)
	require.NoError(t, err)
	assert.Equal(t, stacked, got)

	_, err = deck.Draw(1)
	assert.ErrorIs(t, err, ErrDeckExhausted)

	_, err = NewDeckFromCards([]Card{Joker1, Joker1})
	assert.Error(t, err)

	_, err = NewDeckFromCards([]Card{Card(3)})
	assert.Error(t, err, "multi-bit values are not cards")
}

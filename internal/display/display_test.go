package display

import (
	"bytes"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pineapple/internal/game"
	"github.com/lox/pineapple/internal/simulator"
	"github.com/lox/pineapple/internal/statistics"
	"github.com/lox/pineapple/poker"
)

func TestCardsPlain(t *testing.T) {
	t.Parallel()
	p := NewPlain(&bytes.Buffer{})
	assert.Equal(t, "Ah", p.Card(poker.MustParseCard("Ah")))
	assert.Equal(t, "Ac Td X1", p.Cards(poker.MustParseCards("Ac Td X1")))
	assert.Empty(t, p.Cards(nil))
}

func TestCardsColoured(t *testing.T) {
	t.Parallel()
	p := New(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))
	red := p.Card(poker.MustParseCard("Ah"))
	assert.Contains(t, red, "Ah")
	assert.Contains(t, red, "\x1b[")
	assert.NotEqual(t, red, p.Card(poker.MustParseCard("As")))
}

func TestBoard(t *testing.T) {
	t.Parallel()
	player := game.NewPlayer(1, "bob")
	player.Receive(poker.MustParseCards("Qc Kd Ah X1")...)
	require.NoError(t, player.Place(poker.MustParseCard("Qc"), game.Front))
	require.NoError(t, player.Place(poker.MustParseCard("Kd"), game.Middle))
	require.NoError(t, player.Place(poker.MustParseCard("Ah"), game.Back))

	out := NewPlain(&bytes.Buffer{}).Board(player.View())
	assert.Contains(t, out, "bob (seat 1)")
	assert.Contains(t, out, "Qc -- --\n")
	assert.Contains(t, out, "Kd -- -- -- --\n")
	assert.Contains(t, out, "Ah -- -- -- --\n")
	assert.Contains(t, out, "X1")
	assert.NotContains(t, out, "FANTASYLAND")
}

func TestResult(t *testing.T) {
	t.Parallel()
	a := game.MustParseBoard("Qc Qd 2h", "Kc Kd Kh 3s 4d", "Ac Ad Ah As 5c")
	b := game.MustParseBoard("2c 3d 4h", "5c 6d 7h 9s Jd", "8c 8d Th Qs Kd")
	res, err := game.Compare(a, b)
	require.NoError(t, err)
	require.True(t, res.Scoop[0])

	out := NewPlain(&bytes.Buffer{}).Result([2]string{"alice", "bob"}, [2]*game.Board{a, b}, res)
	assert.Contains(t, out, "Qc Qd 2h  Pair of Qs +7")
	assert.Contains(t, out, "alice: +35 points (29 royalties) SCOOP")
	assert.Contains(t, out, "bob: 0 points (0 royalties)\n")
	assert.NotContains(t, out, "FOULED")
}

func TestResultFouled(t *testing.T) {
	t.Parallel()
	a := game.MustParseBoard("Ac Ad 2h", "Kc Kd 3h 4s 5d", "6c 7d 8h Ts Jd")
	b := game.MustParseBoard("2c 3d 4h", "5c 6d 7h 9s Jd", "8c 8d Th Qs Kd")
	res, err := game.Compare(a, b)
	require.NoError(t, err)

	out := NewPlain(&bytes.Buffer{}).Result([2]string{"alice", "bob"}, [2]*game.Board{a, b}, res)
	assert.Contains(t, out, "alice: 0 points (0 royalties) FOULED")
	assert.Contains(t, out, "bob: +6 points")
}

func TestRank(t *testing.T) {
	t.Parallel()
	p := NewPlain(&bytes.Buffer{})

	cards := poker.MustParseCards("Qc Qd X1")
	rank, subs, err := game.ResolveRow(cards)
	require.NoError(t, err)
	assert.Equal(t, "Qc Qd X1  Three of a Kind, Qs with Qh", p.Rank(cards, subs, rank))

	cards = poker.MustParseCards("2c 7d 9h")
	rank, subs, err = game.ResolveRow(cards)
	require.NoError(t, err)
	assert.Equal(t, "2c 7d 9h  High Card, 9 high", p.Rank(cards, subs, rank))
}

func TestSummary(t *testing.T) {
	t.Parallel()
	stats := &statistics.Statistics{}
	for i, net := range []float64{-6, 0, 3, 9, 14} {
		stats.Add(statistics.HandResult{
			Seat:   i % 2,
			Net:    net,
			Fouled: [2]bool{net < 0, false},
			Scoop:  [2]bool{net > 10, false},
		})
	}
	stats.AddAborted()

	out := NewPlain(&bytes.Buffer{}).Summary(&simulator.Summary{
		Strategies: [2]string{"greedy", "random"},
		Seed:       42,
		Stats:      stats,
		Elapsed:    2 * time.Second,
	})
	assert.Contains(t, out, "greedy vs random")
	assert.Contains(t, out, "5 hands (seed 42, 1 aborted)")
	assert.Contains(t, out, "+4.00 pts/hand")
	assert.Contains(t, out, "3-1-1")
	assert.Contains(t, out, "20.0%")
	assert.Contains(t, out, "2s (3 hands/s)")
}

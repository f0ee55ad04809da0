// Package display renders boards, settlements and simulation summaries for
// the terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pineapple/internal/game"
	"github.com/lox/pineapple/internal/simulator"
	"github.com/lox/pineapple/internal/statistics"
	"github.com/lox/pineapple/poker"
)

const emptySlot = "--"

// Printer renders game state using a renderer bound to one output.
type Printer struct {
	header lipgloss.Style
	name   lipgloss.Style
	red    lipgloss.Style
	black  lipgloss.Style
	joker  lipgloss.Style
	muted  lipgloss.Style
	win    lipgloss.Style
	loss   lipgloss.Style
	warn   lipgloss.Style
}

// New creates a printer for w. The colour profile is detected from w unless
// overridden with termenv.WithProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.NewOutput(w, opts...).Profile)
	return &Printer{
		header: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true),
		name:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		red:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		black:  r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		joker:  r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#626262")),
		win:    r.NewStyle().Foreground(lipgloss.Color("10")),
		loss:   r.NewStyle().Foreground(lipgloss.Color("9")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
	}
}

// NewPlain creates a printer that never emits escape sequences.
func NewPlain(w io.Writer) *Printer {
	return New(w, termenv.WithProfile(termenv.Ascii))
}

// Card renders one card, red suits in red and jokers in gold.
func (p *Printer) Card(c poker.Card) string {
	switch {
	case c.IsJoker():
		return p.joker.Render(c.String())
	case c.Suit() == poker.Hearts || c.Suit() == poker.Diamonds:
		return p.red.Render(c.String())
	default:
		return p.black.Render(c.String())
	}
}

// Cards renders cards space separated.
func (p *Printer) Cards(cards []poker.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, p.Card(c))
	}
	return strings.Join(parts, " ")
}

// Board renders a seat's rows front to back, marking open slots.
func (p *Printer) Board(v game.PlayerView) string {
	var sb strings.Builder
	title := fmt.Sprintf("%s (seat %d)", v.Name, v.Seat)
	if v.Fantasyland {
		title += " " + p.warn.Render("FANTASYLAND")
	}
	sb.WriteString(p.name.Render(title))
	sb.WriteByte('\n')

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, row := range game.Rows {
		cards := v.Board.Row(row)
		cells := p.Cards(cards)
		for range row.Capacity() - len(cards) {
			if cells != "" {
				cells += " "
			}
			cells += p.muted.Render(emptySlot)
		}
		fmt.Fprintf(w, "  %s\t%s\n", row, cells)
	}
	if len(v.Hand) > 0 {
		fmt.Fprintf(w, "  hand\t%s\n", p.Cards(v.Hand))
	}
	w.Flush()
	return sb.String()
}

// Result renders the row by row settlement of a completed hand.
func (p *Printer) Result(names [game.NumSeats]string, boards [game.NumSeats]*game.Board, res *game.Result) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.header.Render("row"), p.header.Render(names[0]), p.header.Render(names[1]), p.header.Render("winner"))
	for _, row := range game.Rows {
		var winner string
		switch res.Rows[row] {
		case game.PlayerAWins:
			winner = p.win.Render(names[0])
		case game.PlayerBWins:
			winner = p.win.Render(names[1])
		default:
			winner = p.muted.Render("tie")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row,
			p.rowCell(boards[0], res, 0, row),
			p.rowCell(boards[1], res, 1, row),
			winner)
	}
	w.Flush()

	for seat, name := range names {
		fmt.Fprintf(&sb, "%s: %s points (%d royalties)", name, p.signed(res.Points[seat]), res.Royalties[seat])
		if res.Fouled[seat] {
			sb.WriteString(" " + p.loss.Render("FOULED"))
		}
		if res.Scoop[seat] {
			sb.WriteString(" " + p.win.Render("SCOOP"))
		}
		if res.Fantasyland[seat] {
			sb.WriteString(" " + p.warn.Render("FANTASYLAND"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Printer) rowCell(b *game.Board, res *game.Result, seat int, row game.Row) string {
	cell := fmt.Sprintf("%s  %s", p.Cards(b.Row(row)), res.Ranks[seat][row])
	if r := res.RowRoyalties[seat][row]; r > 0 {
		cell += " " + p.win.Render(fmt.Sprintf("+%d", r))
	}
	return cell
}

func (p *Printer) signed(n int) string {
	switch {
	case n > 0:
		return p.win.Render(fmt.Sprintf("+%d", n))
	case n < 0:
		return p.loss.Render(fmt.Sprintf("%d", n))
	default:
		return "0"
	}
}

// Rank renders an evaluated row, followed by the cards any jokers stood in for.
func (p *Printer) Rank(cards, substitutes []poker.Card, rank poker.HandRank) string {
	line := fmt.Sprintf("%s  %s", p.Cards(cards), p.name.Render(rank.String()))
	if len(substitutes) > 0 {
		line += p.muted.Render(" with ") + p.Cards(substitutes)
	}
	return line
}

// Summary renders a simulation summary from the first strategy's side.
func (p *Printer) Summary(s *simulator.Summary) string {
	st := s.Stats
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", p.header.Render(fmt.Sprintf(" %s vs %s ", s.Strategies[statistics.Hero], s.Strategies[statistics.Villain])))
	fmt.Fprintf(&sb, "%d hands (seed %d", st.Hands, s.Seed)
	if st.Aborted > 0 {
		fmt.Fprintf(&sb, ", %s", p.warn.Render(fmt.Sprintf("%d aborted", st.Aborted)))
	}
	sb.WriteString(")\n\n")

	lo, hi := st.ConfidenceInterval95()
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "mean\t%s pts/hand\n", p.signedFloat(st.Mean()))
	fmt.Fprintf(w, "95%% CI\t[%.2f, %.2f]\n", lo, hi)
	fmt.Fprintf(w, "std dev\t%.2f\n", st.StdDev())
	fmt.Fprintf(w, "median\t%.1f\n", st.Median())
	fmt.Fprintf(w, "record\t%d-%d-%d\n", st.Wins, st.Losses, st.Ties)
	w.Flush()
	sb.WriteByte('\n')

	w = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\t%s\t%s\n", s.Strategies[statistics.Hero], s.Strategies[statistics.Villain])
	rate := func(label string, counts [2]int) {
		fmt.Fprintf(w, "%s\t%.1f%%\t%.1f%%\n", label, 100*st.Rate(counts[0]), 100*st.Rate(counts[1]))
	}
	rate("fouls", st.Fouls)
	rate("scoops", st.Scoops)
	rate("fantasyland", st.Fantasylands)
	fmt.Fprintf(w, "royalties/hand\t%.2f\t%.2f\n", perHand(st.Royalties[0], st.Hands), perHand(st.Royalties[1], st.Hands))
	w.Flush()

	if st.SeatResults[1].Hands > 0 {
		fmt.Fprintf(&sb, "\nseat 0 %+.2f, seat 1 %+.2f\n", st.SeatMean(0), st.SeatMean(1))
	}
	fmt.Fprintf(&sb, "\n%s\n", p.muted.Render(fmt.Sprintf("%v (%.0f hands/s)", s.Elapsed.Truncate(time.Millisecond), s.HandsPerSecond())))
	return sb.String()
}

func (p *Printer) signedFloat(v float64) string {
	s := fmt.Sprintf("%+.2f", v)
	switch {
	case v > 0:
		return p.win.Render(s)
	case v < 0:
		return p.loss.Render(s)
	default:
		return s
	}
}

func perHand(total, hands int) float64 {
	if hands == 0 {
		return 0
	}
	return float64(total) / float64(hands)
}

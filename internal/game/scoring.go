package game

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pineapple/poker"
)

// Outcome is the result of comparing one row across the two boards.
type Outcome int8

const (
	Tie Outcome = iota
	PlayerAWins
	PlayerBWins
)

func (o Outcome) String() string {
	switch o {
	case PlayerAWins:
		return "A"
	case PlayerBWins:
		return "B"
	default:
		return "tie"
	}
}

const (
	// FoulBonus is paid to the valid board when the other board fouls.
	FoulBonus = 6
	// ScoopBonus is added for winning all three rows.
	ScoopBonus = 3
)

// Result is the settlement of a hand between seat 0 (A) and seat 1 (B).
type Result struct {
	Rows         [NumRows]Outcome
	RowWins      [2]int
	Scoop        [2]bool
	Fouled       [2]bool
	Ranks        [2]BoardRanks
	RowRoyalties [2]RowRoyalties
	Royalties    [2]int
	Points       [2]int
	// Fantasyland is filled in by the session once the hand completes.
	Fantasyland [2]bool
}

// Net returns A's points minus B's points; B's net is the negation.
func (r *Result) Net() int {
	return r.Points[0] - r.Points[1]
}

// Winner returns the seat with more points, or -1 for an even hand.
func (r *Result) Winner() int {
	switch {
	case r.Points[0] > r.Points[1]:
		return 0
	case r.Points[1] > r.Points[0]:
		return 1
	default:
		return -1
	}
}

type scoredBoard struct {
	ranks     BoardRanks
	royalties RowRoyalties
	fouled    bool
}

func scoreBoard(b *Board) (scoredBoard, error) {
	ranks, err := EvaluateBoard(b)
	if err != nil {
		return scoredBoard{}, err
	}
	return scoredBoard{
		ranks:     ranks,
		royalties: Royalties.Score(b.Row(Front), ranks),
		fouled:    ranks.Fouled(),
	}, nil
}

func scoreBoards(a, b *Board) ([2]scoredBoard, error) {
	var out [2]scoredBoard
	var g errgroup.Group
	for seat, board := range [2]*Board{a, b} {
		g.Go(func() error {
			s, err := scoreBoard(board)
			if err != nil {
				return fmt.Errorf("seat %d: %w", seat, err)
			}
			out[seat] = s
			return nil
		})
	}
	return out, g.Wait()
}

// Compare settles two complete boards.
//
// Both fouled: nothing changes hands. One fouled: the valid board wins every
// row and scores FoulBonus plus its own royalties while the fouled board's
// royalties are forfeited. Otherwise each row is worth one point to the
// stronger hand, a sweep adds ScoopBonus, and each side adds its royalties.
func Compare(a, b *Board) (*Result, error) {
	for seat, board := range [2]*Board{a, b} {
		if err := board.requireComplete(); err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
	}

	scored, err := scoreBoards(a, b)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Ranks:  [2]BoardRanks{scored[0].ranks, scored[1].ranks},
		Fouled: [2]bool{scored[0].fouled, scored[1].fouled},
	}

	switch {
	case res.Fouled[0] && res.Fouled[1]:
		return res, nil
	case res.Fouled[0] || res.Fouled[1]:
		winner, outcome := 0, PlayerAWins
		if res.Fouled[0] {
			winner, outcome = 1, PlayerBWins
		}
		for _, r := range Rows {
			res.Rows[r] = outcome
		}
		res.RowWins[winner] = NumRows
		res.RowRoyalties[winner] = scored[winner].royalties
		res.Royalties[winner] = scored[winner].royalties.Total()
		res.Points[winner] = FoulBonus + res.Royalties[winner]
		return res, nil
	}

	for _, r := range Rows {
		res.Rows[r] = compareRow(scored[0].ranks[r], scored[1].ranks[r])
	}
	settleRows(res)
	for seat := range 2 {
		res.RowRoyalties[seat] = scored[seat].royalties
		res.Royalties[seat] = scored[seat].royalties.Total()
		res.Points[seat] += res.Royalties[seat]
	}
	return res, nil
}

func compareRow(a, b poker.HandRank) Outcome {
	switch poker.CompareHands(a, b) {
	case 1:
		return PlayerAWins
	case -1:
		return PlayerBWins
	default:
		return Tie
	}
}

// settleRows converts row outcomes into row points and the scoop bonus.
func settleRows(res *Result) {
	for _, o := range res.Rows {
		switch o {
		case PlayerAWins:
			res.RowWins[0]++
		case PlayerBWins:
			res.RowWins[1]++
		}
	}
	for seat := range 2 {
		res.Points[seat] = res.RowWins[seat]
		if res.RowWins[seat] == NumRows {
			res.Scoop[seat] = true
			res.Points[seat] += ScoopBonus
		}
	}
}

// RunningScore scores a hand in progress: only rows that are full on both
// boards are compared and earn royalties, and fouling is not assessed. It is
// for progress displays and never replaces Compare.
func RunningScore(a, b *Board) (*Result, error) {
	res := &Result{}
	var boards = [2]*Board{a, b}
	for seat, board := range boards {
		if err := board.checkInvariants(); err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
	}

	for _, r := range Rows {
		if boards[0].Len(r) != r.Capacity() || boards[1].Len(r) != r.Capacity() {
			continue
		}
		for seat, board := range boards {
			rank, err := EvaluateRow(board.Row(r))
			if err != nil {
				return nil, fmt.Errorf("seat %d: %w", seat, err)
			}
			res.Ranks[seat][r] = rank
			switch {
			case r != Front:
				res.RowRoyalties[seat][r] = Royalties.LowerRow(rank)
			case !IsFrontStraightOrFlush(board.Row(r)):
				res.RowRoyalties[seat][r] = Royalties.Front(rank)
			}
		}
		res.Rows[r] = compareRow(res.Ranks[0][r], res.Ranks[1][r])
	}

	settleRows(res)
	for seat := range 2 {
		res.Royalties[seat] = res.RowRoyalties[seat].Total()
		res.Points[seat] += res.Royalties[seat]
	}
	return res, nil
}

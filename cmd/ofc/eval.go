package main

import (
	"fmt"
	"os"

	"github.com/lox/pineapple/internal/display"
	"github.com/lox/pineapple/internal/game"
	"github.com/lox/pineapple/poker"
)

type EvalCmd struct {
	Rows  []string `arg:"" help:"Rows to evaluate, e.g. 'Qc Qd X1'"`
	Board bool     `kong:"help='Treat the three rows as front, middle and back of one board'"`
}

func (c *EvalCmd) Run(_ *Globals) error {
	printer := display.New(os.Stdout)

	rows := make([][]poker.Card, len(c.Rows))
	for i, s := range c.Rows {
		cards, err := poker.ParseCards(s)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		rank, subs, err := game.ResolveRow(cards)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		rows[i] = cards
		fmt.Println(printer.Rank(cards, subs, rank))
	}

	if !c.Board {
		return nil
	}
	if len(rows) != game.NumRows {
		return fmt.Errorf("a board needs %d rows, got %d", game.NumRows, len(rows))
	}
	return evalBoard(rows[game.Front], rows[game.Middle], rows[game.Back])
}

func evalBoard(front, middle, back []poker.Card) error {
	b, err := game.NewBoardFromCards(front, middle, back)
	if err != nil {
		return err
	}
	fouled, err := game.IsFouled(b)
	if err != nil {
		return err
	}
	royalties, err := game.CalculateRoyalties(b)
	if err != nil {
		return err
	}
	fantasyland, err := game.QualifiesFantasyland(b)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("fouled:      %t\n", fouled)
	fmt.Printf("royalties:   %d (front %d, middle %d, back %d)\n",
		royalties.Total(), royalties[game.Front], royalties[game.Middle], royalties[game.Back])
	fmt.Printf("fantasyland: %t\n", fantasyland)
	return nil
}

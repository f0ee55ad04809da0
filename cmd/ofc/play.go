package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/pineapple/cmd/ofc/shared"
	"github.com/lox/pineapple/internal/bot"
	"github.com/lox/pineapple/internal/display"
	"github.com/lox/pineapple/internal/game"
	"github.com/lox/pineapple/internal/randutil"
)

type PlayCmd struct {
	Hands      int      `kong:"default='1',help='Number of hands to play'"`
	Seed       int64    `kong:"help='Seed for deterministic play (0 for random)'"`
	Strategies []string `kong:"help='Strategy per seat, e.g. greedy,random (overrides config players)'"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	names, strategies, fantasyland := cfg.Seats()
	if len(c.Strategies) > 0 {
		if len(c.Strategies) != game.NumSeats {
			return fmt.Errorf("need %d strategies, got %d", game.NumSeats, len(c.Strategies))
		}
		copy(strategies[:], c.Strategies)
		names = strategies
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	seed := randutil.Seed(c.Seed)
	logger.Info().Int64("seed", seed).Strs("strategies", strategies[:]).Msg("Starting play")

	printer := display.New(os.Stdout)
	var totals [game.NumSeats]int
	for hand := range c.Hands {
		rng := randutil.ForHand(seed, hand)

		var deciders [game.NumSeats]game.Decider
		for seat, name := range strategies {
			if deciders[seat], err = bot.New(name, rng, logger); err != nil {
				return err
			}
		}

		session := game.NewSession(rng, names,
			game.WithLogger(logger),
			game.WithFantasyland(fantasyland),
			game.WithMaxAttempts(cfg.Session.MaxAttempts),
		)
		res, err := session.Play(ctx, deciders)
		if err != nil {
			return fmt.Errorf("hand %d (session %s): %w", hand+1, session.ID(), err)
		}

		fmt.Printf("Hand %d  %s\n\n", hand+1, session.ID())
		var boards [game.NumSeats]*game.Board
		for seat := range boards {
			view := session.Player(seat)
			boards[seat] = view.Board
			fmt.Println(printer.Board(view))
		}
		fmt.Println(printer.Result(names, boards, res))

		for seat := range totals {
			totals[seat] += res.Points[seat]
		}
		// Qualifying seats start the next hand in fantasyland.
		fantasyland = res.Fantasyland
	}

	if c.Hands > 1 {
		parts := make([]string, 0, game.NumSeats)
		for seat, name := range names {
			parts = append(parts, fmt.Sprintf("%s %d", name, totals[seat]))
		}
		fmt.Printf("Totals after %d hands: %s\n", c.Hands, strings.Join(parts, ", "))
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/pineapple/cmd/ofc/shared"
	"github.com/lox/pineapple/internal/display"
	"github.com/lox/pineapple/internal/fileutil"
	"github.com/lox/pineapple/internal/game"
	"github.com/lox/pineapple/internal/randutil"
	"github.com/lox/pineapple/internal/simulator"
)

type SimulateCmd struct {
	Hands      int           `kong:"help='Number of hands (defaults to the config file)'"`
	Seed       int64         `kong:"help='Base seed; hand i uses seed+i (0 for random)'"`
	Workers    int           `kong:"help='Concurrent sessions (defaults to the config file)'"`
	Strategies []string      `kong:"help='Hero and villain strategies, e.g. greedy,random'"`
	Duplicate  bool          `kong:"help='Replay every deal with seats swapped'"`
	Progress   time.Duration `kong:"default='0s',help='Log progress at this interval (0 disables)'"`
	WriteStats string        `kong:"help='Write a JSON report to this file'"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	sim := cfg.Simulation
	if c.Hands > 0 {
		sim.Hands = c.Hands
	}
	if c.Seed != 0 {
		sim.Seed = c.Seed
	}
	if c.Workers > 0 {
		sim.Workers = c.Workers
	}
	if c.Duplicate {
		sim.Duplicate = true
	}
	if len(c.Strategies) > 0 {
		if len(c.Strategies) != game.NumSeats {
			return fmt.Errorf("need %d strategies, got %d", game.NumSeats, len(c.Strategies))
		}
		sim.Strategies = c.Strategies
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	seed := randutil.Seed(sim.Seed)
	summary, err := simulator.New(simulator.Config{
		Hands:            sim.Hands,
		Seed:             seed,
		Workers:          sim.Workers,
		Strategies:       cfg.SimulationStrategies(),
		Duplicate:        sim.Duplicate,
		ProgressInterval: c.Progress,
		Logger:           logger.With().Str("component", "simulator").Logger(),
	}).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Print(display.New(os.Stdout).Summary(summary))
	if c.WriteStats != "" {
		if err := fileutil.WriteJSON(c.WriteStats, summary.Report()); err != nil {
			return err
		}
		logger.Info().Str("file", c.WriteStats).Msg("Wrote report")
	}
	return nil
}

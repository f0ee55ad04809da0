// Package simulator runs batches of self-play hands between two strategies.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pineapple/internal/bot"
	"github.com/lox/pineapple/internal/game"
	"github.com/lox/pineapple/internal/randutil"
	"github.com/lox/pineapple/internal/statistics"
	"github.com/lox/pineapple/poker"
)

// Config holds configuration for running simulations.
type Config struct {
	Hands      int
	Seed       int64
	Workers    int       // defaults to GOMAXPROCS
	Strategies [2]string // hero first
	// Duplicate replays every seed with the strategies' seats swapped,
	// cancelling out the card luck of a deal.
	Duplicate bool
	// ProgressInterval enables periodic progress logging when positive.
	ProgressInterval time.Duration
	Logger           zerolog.Logger
	Clock            quartz.Clock // defaults to the real clock
}

// Summary is the outcome of a run.
type Summary struct {
	Strategies [2]string
	Seed       int64
	Stats      *statistics.Statistics
	Elapsed    time.Duration
}

// HandsPerSecond returns the completed hand throughput.
func (s *Summary) HandsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Stats.Hands+s.Stats.Aborted) / s.Elapsed.Seconds()
}

// Report is the machine-readable form of a Summary.
type Report struct {
	Strategies      [2]string  `json:"strategies"`
	Seed            int64      `json:"seed"`
	Hands           int        `json:"hands"`
	Aborted         int        `json:"aborted"`
	Mean            float64    `json:"mean"`
	StdDev          float64    `json:"std_dev"`
	CI95            [2]float64 `json:"ci95"`
	Median          float64    `json:"median"`
	Wins            int        `json:"wins"`
	Losses          int        `json:"losses"`
	Ties            int        `json:"ties"`
	FoulRate        [2]float64 `json:"foul_rate"`
	ScoopRate       [2]float64 `json:"scoop_rate"`
	FantasylandRate [2]float64 `json:"fantasyland_rate"`
	Royalties       [2]int     `json:"royalties"`
	ElapsedMs       int64      `json:"elapsed_ms"`
}

// Report flattens the summary for serialisation.
func (s *Summary) Report() Report {
	st := s.Stats
	lo, hi := st.ConfidenceInterval95()
	rates := func(counts [2]int) [2]float64 {
		return [2]float64{st.Rate(counts[0]), st.Rate(counts[1])}
	}
	return Report{
		Strategies:      s.Strategies,
		Seed:            s.Seed,
		Hands:           st.Hands,
		Aborted:         st.Aborted,
		Mean:            st.Mean(),
		StdDev:          st.StdDev(),
		CI95:            [2]float64{lo, hi},
		Median:          st.Median(),
		Wins:            st.Wins,
		Losses:          st.Losses,
		Ties:            st.Ties,
		FoulRate:        rates(st.Fouls),
		ScoopRate:       rates(st.Scoops),
		FantasylandRate: rates(st.Fantasylands),
		Royalties:       st.Royalties,
		ElapsedMs:       s.Elapsed.Milliseconds(),
	}
}

// Simulator runs self-play batches.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

type outcome struct {
	result  statistics.HandResult
	aborted bool
}

// Run plays every hand and aggregates the results in seed order, so a run
// is reproducible regardless of worker scheduling.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	cfg := s.config
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", cfg.Hands)
	}
	for _, name := range cfg.Strategies {
		if _, err := bot.New(name, randutil.New(0), zerolog.Nop()); err != nil {
			return nil, err
		}
	}

	plays := 1
	if cfg.Duplicate {
		plays = 2
	}
	outcomes := make([]outcome, cfg.Hands*plays)

	start := cfg.Clock.Now()
	var done atomic.Int64
	if cfg.ProgressInterval > 0 {
		progressCtx, stop := context.WithCancel(ctx)
		defer stop()
		cfg.Clock.TickerFunc(progressCtx, cfg.ProgressInterval, func() error {
			cfg.Logger.Info().
				Int64("done", done.Load()).
				Int("total", len(outcomes)).
				Dur("elapsed", cfg.Clock.Since(start)).
				Msg("Simulation progress")
			return nil
		}, "simulator", "progress")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range outcomes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			hand, heroSeat := i/plays, i%plays
			o, err := s.playHand(gctx, hand, heroSeat)
			if err != nil {
				return err
			}
			outcomes[i] = o
			done.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, o := range outcomes {
		if o.aborted {
			stats.AddAborted()
			continue
		}
		stats.Add(o.result)
	}

	summary := &Summary{
		Strategies: cfg.Strategies,
		Seed:       cfg.Seed,
		Stats:      stats,
		Elapsed:    cfg.Clock.Since(start, "simulator", "elapsed"),
	}
	if stats.Hands > 0 {
		if err := stats.Validate(); err != nil {
			return nil, fmt.Errorf("statistics validation failed: %w", err)
		}
	}
	cfg.Logger.Info().
		Int("hands", stats.Hands).
		Int("aborted", stats.Aborted).
		Float64("mean", stats.Mean()).
		Dur("elapsed", summary.Elapsed).
		Msg("Simulation complete")
	return summary, nil
}

// playHand plays one seed with the hero in heroSeat. Every hand derives its
// own RNG from the seed, so bots and deck replay identically.
func (s *Simulator) playHand(ctx context.Context, hand, heroSeat int) (outcome, error) {
	cfg := s.config
	seed := cfg.Seed + int64(hand)
	rng := randutil.ForHand(cfg.Seed, hand)
	logger := cfg.Logger.With().Int64("seed", seed).Int("hero_seat", heroSeat).Logger()

	var deciders [game.NumSeats]game.Decider
	var names [game.NumSeats]string
	for side, name := range cfg.Strategies {
		seat := (side + heroSeat) % game.NumSeats
		d, err := bot.New(name, rng, logger)
		if err != nil {
			return outcome{}, err
		}
		deciders[seat] = d
		names[seat] = name
	}

	deck := poker.NewDeck(rng)
	session := game.NewSession(rng, names,
		game.WithDeck(deck),
		game.WithLogger(logger),
		game.WithID(fmt.Sprintf("sim-%d-%d", seed, heroSeat)),
	)
	res, err := session.Play(ctx, deciders)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcome{}, err
	default:
		logger.Warn().Err(err).Msg("Hand aborted")
		return outcome{aborted: true}, nil
	}

	villainSeat := 1 - heroSeat
	r := statistics.HandResult{
		Seed: seed,
		Seat: heroSeat,
		Net:  float64(res.Points[heroSeat] - res.Points[villainSeat]),
	}
	for side, seat := range [2]int{heroSeat, villainSeat} {
		r.Points[side] = res.Points[seat]
		r.Royalties[side] = res.Royalties[seat]
		r.Fouled[side] = res.Fouled[seat]
		r.Scoop[side] = res.Scoop[seat]
		r.Fantasyland[side] = res.Fantasyland[seat]
	}
	return outcome{result: r}, nil
}

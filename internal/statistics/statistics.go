// Package statistics accumulates self-play results from one strategy's
// point of view.
package statistics

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Hero and Villain index the per-side counters.
const (
	Hero    = 0
	Villain = 1
)

// HandResult is the outcome of a single hand for the strategy under test.
type HandResult struct {
	Seed        int64   // RNG seed for this hand (for replay)
	Seat        int     // seat the hero occupied
	Net         float64 // hero points minus villain points
	Points      [2]int  // indexed Hero, Villain
	Royalties   [2]int
	Fouled      [2]bool
	Scoop       [2]bool
	Fantasyland [2]bool
}

// SeatStats tracks results for hands played from one seat.
type SeatStats struct {
	Hands  int
	SumNet float64
}

// Statistics tracks the distribution of net results plus event counters.
type Statistics struct {
	Hands   int
	Aborted int
	SumNet  float64
	Values  []float64 // per-hand net, kept for variance and percentiles

	Wins   int
	Losses int
	Ties   int

	Fouls        [2]int
	Scoops       [2]int
	Fantasylands [2]int
	Royalties    [2]int

	SeatResults [2]SeatStats
}

// Add incorporates a completed hand.
func (s *Statistics) Add(r HandResult) {
	s.Hands++
	s.SumNet += r.Net
	s.Values = append(s.Values, r.Net)

	switch {
	case r.Net > 0:
		s.Wins++
	case r.Net < 0:
		s.Losses++
	default:
		s.Ties++
	}

	for side := range 2 {
		if r.Fouled[side] {
			s.Fouls[side]++
		}
		if r.Scoop[side] {
			s.Scoops[side]++
		}
		if r.Fantasyland[side] {
			s.Fantasylands[side]++
		}
		s.Royalties[side] += r.Royalties[side]
	}

	if r.Seat >= 0 && r.Seat < len(s.SeatResults) {
		s.SeatResults[r.Seat].Hands++
		s.SeatResults[r.Seat].SumNet += r.Net
	}
}

// AddAborted counts a hand that produced no result.
func (s *Statistics) AddAborted() {
	s.Aborted++
}

// Mean returns the average net points per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance returns the sample variance of the net results.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// StdDev returns the sample standard deviation of the net results.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
// using a Student's t distribution.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	if s.Hands < 2 {
		return mean, mean
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(s.Hands - 1)}
	margin := t.Quantile(0.975) * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net result.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the empirical quantile p (0.0 to 1.0) of the net results.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Rate returns count as a fraction of completed hands.
func (s *Statistics) Rate(count int) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(count) / float64(s.Hands)
}

// SeatMean returns the mean net result for hands played from seat.
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 0 || seat >= len(s.SeatResults) || s.SeatResults[seat].Hands == 0 {
		return 0
	}
	return s.SeatResults[seat].SumNet / float64(s.SeatResults[seat].Hands)
}

// Validate checks the internal accounting.
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}
	if s.Wins+s.Losses+s.Ties != s.Hands {
		return fmt.Errorf("wins+losses+ties (%d) does not match hands count (%d)", s.Wins+s.Losses+s.Ties, s.Hands)
	}
	if seatHands := s.SeatResults[0].Hands + s.SeatResults[1].Hands; seatHands != s.Hands {
		return fmt.Errorf("seat hands total (%d) does not match total hands (%d)", seatHands, s.Hands)
	}
	return nil
}

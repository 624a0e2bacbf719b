// Package simulator runs batches of blackjack rounds and aggregates
// their outcomes.
package simulator

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running experiments
type Config struct {
	Rounds  int  // number of rounds to play
	Decks   int  // standard multisets per shuffle
	Seed    int64
	Workers int // parallel workers; each owns its own deck and tallies
	Logger  *log.Logger
}

// Simulator repeats rounds with a fixed strategy, resetting the deck
// between rounds so every round draws from a fresh shuffle
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the experiment and returns the aggregated statistics.
// Rounds are embarrassingly parallel: with multiple workers each one
// receives an independently seeded deck and its own accumulator, merged
// at the end. Results are deterministic for a given seed and worker
// count when the strategy is deterministic.
func (s *Simulator) Run(strategy game.Strategy) (*statistics.Statistics, error) {
	if s.config.Rounds < 0 {
		return nil, fmt.Errorf("simulator: rounds must be non-negative, got %d", s.config.Rounds)
	}
	if s.config.Decks < 1 {
		return nil, fmt.Errorf("simulator: decks must be positive, got %d", s.config.Decks)
	}

	workers := s.config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > s.config.Rounds {
		workers = 1
	}

	if workers == 1 {
		return s.runWorker(0, s.config.Rounds, strategy)
	}

	results := make([]*statistics.Statistics, workers)
	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		rounds := perWorker
		if i < remainder {
			rounds++
		}
		worker := i
		g.Go(func() error {
			stats, err := s.runWorker(worker, rounds, strategy)
			if err != nil {
				return fmt.Errorf("worker %d: %w", worker, err)
			}
			results[worker] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &statistics.Statistics{}
	for _, stats := range results {
		merged.Merge(stats)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// runWorker plays a block of rounds on its own deck. Worker seeds are
// derived from the experiment seed so parallel runs stay reproducible.
func (s *Simulator) runWorker(worker, rounds int, strategy game.Strategy) (*statistics.Statistics, error) {
	d, err := deck.New(s.config.Decks, s.config.Seed+int64(worker))
	if err != nil {
		return nil, err
	}
	engine := game.NewEngine(d, s.config.Logger)

	stats := &statistics.Statistics{}
	for round := 0; round < rounds; round++ {
		result, err := engine.PlayRound(strategy)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", stats.Rounds+1, err)
		}
		stats.Add(result.Outcome)
		d.Reset()
	}

	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return stats, nil
}

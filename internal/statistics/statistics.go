// Package statistics accumulates win/lose/draw tallies over a batch of
// simulated blackjack rounds.
package statistics

import (
	"fmt"

	"github.com/lox/blackjackforbots/internal/game"
)

// Statistics counts round outcomes for one experiment. All three
// outcome counts are always present, defaulting to zero. The zero value
// is ready to use.
type Statistics struct {
	Rounds int
	Wins   int
	Losses int
	Draws  int
}

// Add records a single round outcome
func (s *Statistics) Add(outcome game.Outcome) {
	s.Rounds++
	switch outcome {
	case game.Win:
		s.Wins++
	case game.Lose:
		s.Losses++
	case game.Draw:
		s.Draws++
	}
}

// Merge folds another accumulator into this one. Parallel experiment
// workers each own a Statistics and merge at the end.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Draws += other.Draws
}

// Count returns the tally for a single outcome
func (s *Statistics) Count(outcome game.Outcome) int {
	switch outcome {
	case game.Win:
		return s.Wins
	case game.Lose:
		return s.Losses
	case game.Draw:
		return s.Draws
	default:
		return 0
	}
}

// WinRate returns wins as a fraction of rounds played
func (s *Statistics) WinRate() float64 { return s.rate(s.Wins) }

// LoseRate returns losses as a fraction of rounds played
func (s *Statistics) LoseRate() float64 { return s.rate(s.Losses) }

// DrawRate returns draws as a fraction of rounds played
func (s *Statistics) DrawRate() float64 { return s.rate(s.Draws) }

func (s *Statistics) rate(count int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(count) / float64(s.Rounds)
}

// Validate checks the internal ledger: counts must be non-negative and
// sum exactly to the number of rounds played.
func (s *Statistics) Validate() error {
	if s.Wins < 0 || s.Losses < 0 || s.Draws < 0 || s.Rounds < 0 {
		return fmt.Errorf("statistics: negative count (wins=%d losses=%d draws=%d rounds=%d)",
			s.Wins, s.Losses, s.Draws, s.Rounds)
	}
	if s.Wins+s.Losses+s.Draws != s.Rounds {
		return fmt.Errorf("statistics: ledger mismatch: %d+%d+%d != %d rounds",
			s.Wins, s.Losses, s.Draws, s.Rounds)
	}
	return nil
}

// String summarises the tallies for logs
func (s *Statistics) String() string {
	return fmt.Sprintf("rounds=%d wins=%d losses=%d draws=%d", s.Rounds, s.Wins, s.Losses, s.Draws)
}

package game

import "fmt"

// Outcome is the result of a round from the player's perspective
type Outcome int

const (
	Win Outcome = iota
	Lose
	Draw
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	default:
		return "?"
	}
}

// ParseOutcome parses an outcome from its string form
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "win":
		return Win, nil
	case "lose":
		return Lose, nil
	case "draw":
		return Draw, nil
	}
	return 0, fmt.Errorf("invalid outcome %q", s)
}

// Resolve determines the round outcome from final hand values. The
// player busting loses outright, before the dealer's hand is consulted.
func Resolve(playerValue, dealerValue int) Outcome {
	switch {
	case playerValue > 21:
		return Lose
	case dealerValue > 21:
		return Win
	case playerValue > dealerValue:
		return Win
	case playerValue < dealerValue:
		return Lose
	default:
		return Draw
	}
}

// Package strategy provides player policies for the round engine, from
// fixed hit-below-17 rules to a trained neural network.
package strategy

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Basic is the default policy: hit while the hand value is below 17,
// mirroring the dealer's own rule.
type Basic struct{}

// Decide implements game.Strategy
func (Basic) Decide(hand []deck.Card, upcard deck.Card) bool {
	return game.HandValue(hand) < 17
}

// Stand never hits. Useful as a baseline and for deterministic tests.
type Stand struct{}

// Decide implements game.Strategy
func (Stand) Decide(hand []deck.Card, upcard deck.Card) bool {
	return false
}

// Random flips a coin on every decision point while the hand is still
// live, and stands once it reaches 21 or busts so it cannot drain the
// deck.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a coin-flip strategy with its own rng
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Decide implements game.Strategy
func (r *Random) Decide(hand []deck.Card, upcard deck.Card) bool {
	if game.HandValue(hand) >= 21 {
		return false
	}
	return r.rng.IntN(2) == 0
}

// Chart plays the hit/stand portion of standard basic strategy against
// the dealer's upcard. Doubling and splitting are not part of this
// environment, so only the hit/stand table applies.
type Chart struct{}

// Decide implements game.Strategy
func (Chart) Decide(hand []deck.Card, upcard deck.Card) bool {
	value := game.HandValue(hand)
	up := upcardValue(upcard)

	if game.IsSoft(hand) {
		switch {
		case value <= 17:
			return true
		case value == 18:
			return up >= 9 // hit soft 18 against 9, 10 and Ace
		default:
			return false
		}
	}

	switch {
	case value <= 11:
		return true
	case value == 12:
		return up < 4 || up > 6
	case value <= 16:
		return up >= 7
	default:
		return false
	}
}

// upcardValue maps the dealer's upcard to its blackjack value, Ace high
func upcardValue(upcard deck.Card) int {
	switch {
	case upcard.IsAce():
		return 11
	case upcard.IsFace():
		return 10
	default:
		return int(upcard)
	}
}

// Names lists the strategies New understands
func Names() []string {
	return []string{"basic", "stand", "random", "chart", "neural"}
}

// New creates a strategy by name. The neural strategy requires a
// weights file produced by blackjack-train; the others ignore
// weightsPath.
func New(name string, rng *rand.Rand, weightsPath string) (game.Strategy, error) {
	switch name {
	case "basic":
		return Basic{}, nil
	case "stand":
		return Stand{}, nil
	case "random":
		return NewRandom(rng), nil
	case "chart":
		return Chart{}, nil
	case "neural":
		if weightsPath == "" {
			return nil, fmt.Errorf("neural strategy requires a weights file")
		}
		return LoadNeural(weightsPath)
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

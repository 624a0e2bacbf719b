package game

import "github.com/lox/blackjackforbots/internal/deck"

// Strategy decides the player's action at each decision point. Decide
// returns true to hit and false to stand.
//
// The engine passes the player's full hand and the dealer's upcard only;
// the dealer's hole card is hidden information and never reaches a
// strategy. Implementations may keep internal state (e.g. learned
// parameters) but must not touch game state.
type Strategy interface {
	Decide(hand []deck.Card, upcard deck.Card) bool
}

// StrategyFunc adapts a plain function to the Strategy interface
type StrategyFunc func(hand []deck.Card, upcard deck.Card) bool

// Decide implements Strategy
func (f StrategyFunc) Decide(hand []deck.Card, upcard deck.Card) bool {
	return f(hand, upcard)
}

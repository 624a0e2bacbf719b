// Package game implements the blackjack round engine: hand evaluation
// with the soft/hard Ace rule, the player/dealer turn loop, and
// win/lose/draw resolution. Strategies plug in through the Strategy
// interface and are consulted once per player decision point.
package game

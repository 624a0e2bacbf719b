package game

import "github.com/lox/blackjackforbots/internal/deck"

// EventType represents a round event type with type safety
type EventType string

// EventType constants for round domain events
const (
	EventTypeDeal      EventType = "deal"
	EventTypePlayerHit EventType = "player_hit"
	EventTypeDealerHit EventType = "dealer_hit"
	EventTypeResolved  EventType = "resolved"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// RoundEvent represents any observable event within a round. Events are
// advisory: displays and remote transports consume them, but no game
// logic may depend on them.
type RoundEvent interface {
	EventType() EventType
}

// DealEvent is published after the initial deal. Only the dealer's
// upcard is exposed; the hole card stays hidden until resolution.
type DealEvent struct {
	PlayerHand []deck.Card
	Upcard     deck.Card
}

func (e DealEvent) EventType() EventType { return EventTypeDeal }

// PlayerHitEvent is published after each card the player draws
type PlayerHitEvent struct {
	Hand []deck.Card
}

func (e PlayerHitEvent) EventType() EventType { return EventTypePlayerHit }

// DealerHitEvent is published after each card the dealer draws
type DealerHitEvent struct {
	Hand []deck.Card
}

func (e DealerHitEvent) EventType() EventType { return EventTypeDealerHit }

// ResolvedEvent is published once with the final hands and verdict
type ResolvedEvent struct {
	PlayerHand  []deck.Card
	DealerHand  []deck.Card
	PlayerValue int
	DealerValue int
	Outcome     Outcome
}

func (e ResolvedEvent) EventType() EventType { return EventTypeResolved }

// EventFunc receives round events as they occur
type EventFunc func(RoundEvent)

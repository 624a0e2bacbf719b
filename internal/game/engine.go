package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
)

// dealerStand is the total at or above which the dealer stands. Soft 17
// counts as 17, so there is no hit-soft-17 variant here.
const dealerStand = 17

// Engine drives a single round of blackjack: the initial deal, the
// strategy-controlled player loop, the fixed dealer loop, and outcome
// resolution. The deck is owned by the caller and must be reset between
// rounds for independent statistics.
type Engine struct {
	deck      *deck.Deck
	logger    *log.Logger
	observers []EventFunc
}

// NewEngine creates a round engine over the given deck
func NewEngine(d *deck.Deck, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		deck:   d,
		logger: logger,
	}
}

// Subscribe registers an observer for round events
func (e *Engine) Subscribe(fn EventFunc) {
	e.observers = append(e.observers, fn)
}

// RoundResult contains the final hands and verdict of a completed round
type RoundResult struct {
	Outcome     Outcome
	PlayerHand  []deck.Card
	DealerHand  []deck.Card
	PlayerValue int
	DealerValue int
}

// PlayRound plays one complete round with the given strategy.
//
// The player loop terminates only when the strategy stands: the
// strategy alone is responsible for stopping, and a policy that keeps
// hitting past 21 keeps drawing. That makes busted-hitting policies
// testable, but a pathological strategy can exhaust the deck, which
// surfaces as deck.ErrEmptyDeck.
func (e *Engine) PlayRound(strategy Strategy) (*RoundResult, error) {
	playerHand, err := e.dealHand()
	if err != nil {
		return nil, fmt.Errorf("dealing player hand: %w", err)
	}
	dealerHand, err := e.dealHand()
	if err != nil {
		return nil, fmt.Errorf("dealing dealer hand: %w", err)
	}

	upcard := dealerHand[0]
	e.logger.Debug("dealt", "player", deck.Strings(playerHand), "upcard", upcard)
	e.publish(DealEvent{PlayerHand: snapshot(playerHand), Upcard: upcard})

	// Player's turn: only the strategy ends this loop
	for strategy.Decide(playerHand, upcard) {
		card, err := e.deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("player hit: %w", err)
		}
		playerHand = append(playerHand, card)
		e.logger.Debug("player hits", "hand", deck.Strings(playerHand))
		e.publish(PlayerHitEvent{Hand: snapshot(playerHand)})
	}

	// Dealer's turn: hit below 17, stand on 17 and above
	for HandValue(dealerHand) < dealerStand {
		card, err := e.deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("dealer hit: %w", err)
		}
		dealerHand = append(dealerHand, card)
		e.logger.Debug("dealer hits", "hand", deck.Strings(dealerHand))
		e.publish(DealerHitEvent{Hand: snapshot(dealerHand)})
	}

	result := &RoundResult{
		PlayerHand:  playerHand,
		DealerHand:  dealerHand,
		PlayerValue: HandValue(playerHand),
		DealerValue: HandValue(dealerHand),
	}
	result.Outcome = Resolve(result.PlayerValue, result.DealerValue)

	e.logger.Debug("resolved",
		"player", deck.Strings(playerHand), "playerValue", result.PlayerValue,
		"dealer", deck.Strings(dealerHand), "dealerValue", result.DealerValue,
		"outcome", result.Outcome)
	e.publish(ResolvedEvent{
		PlayerHand:  snapshot(playerHand),
		DealerHand:  snapshot(dealerHand),
		PlayerValue: result.PlayerValue,
		DealerValue: result.DealerValue,
		Outcome:     result.Outcome,
	})

	return result, nil
}

// dealHand draws the two initial cards for one party. The engine deals
// the player's pair before the dealer's, so observers see player cards
// first.
func (e *Engine) dealHand() ([]deck.Card, error) {
	hand := make([]deck.Card, 0, 2)
	for i := 0; i < 2; i++ {
		card, err := e.deck.Draw()
		if err != nil {
			return nil, err
		}
		hand = append(hand, card)
	}
	return hand, nil
}

func (e *Engine) publish(event RoundEvent) {
	for _, fn := range e.observers {
		fn(event)
	}
}

// snapshot copies a hand so observers never alias the live slice
func snapshot(hand []deck.Card) []deck.Card {
	out := make([]deck.Card, len(hand))
	copy(out, hand)
	return out
}

package server

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/protocol"
)

// networkStrategy adapts a remote websocket client to game.Strategy.
// Each decision point sends a DecisionRequest tagged with a session-wide
// id and waits for the matching answer; a client that misses the
// decision timeout is forced to stand, so a slow or hung bot cannot
// stall the session. Answers carrying a stale id are drained and
// discarded, so a late reply to a timed-out request never gets applied
// to a later decision point.
type networkStrategy struct {
	name      string
	send      func(v any) error
	decisions <-chan *protocol.Decision
	timeout   time.Duration
	clock     quartz.Clock
	logger    *log.Logger
	nextID    int
	err       error
}

var errConnClosed = errors.New("server: connection closed")

// Decide implements game.Strategy. A transport error forces a stand and
// is reported via Err after the round.
func (ns *networkStrategy) Decide(hand []deck.Card, upcard deck.Card) bool {
	if ns.err != nil {
		return false
	}

	ns.nextID++
	req := &protocol.DecisionRequest{
		Type:       protocol.TypeDecisionRequest,
		ID:         ns.nextID,
		PlayerHand: deck.Strings(hand),
		Upcard:     upcard.String(),
	}
	if err := ns.send(req); err != nil {
		ns.err = err
		return false
	}

	timer := ns.clock.NewTimer(ns.timeout)
	defer timer.Stop()

	for {
		select {
		case decision, ok := <-ns.decisions:
			if !ok {
				ns.err = errConnClosed
				return false
			}
			if decision.ID != ns.nextID {
				// Late answer to an earlier, timed-out request
				ns.logger.Warn("discarding stale decision",
					"player", ns.name, "got", decision.ID, "want", ns.nextID)
				continue
			}
			return decision.Hit
		case <-timer.C:
			ns.logger.Warn("decision timeout, forcing stand", "player", ns.name, "timeout", ns.timeout)
			return false
		}
	}
}

// Err returns the first transport error observed, if any
func (ns *networkStrategy) Err() error {
	return ns.err
}

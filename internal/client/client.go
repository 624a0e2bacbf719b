// Package client connects a local strategy to a blackjack server and
// plays a session over a websocket.
package client

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/protocol"
	"github.com/lox/blackjackforbots/internal/statistics"
)

// Run dials the server, joins with the given name, and answers decision
// requests with the local strategy until the session completes. It
// returns the server's aggregate tallies.
func Run(ctx context.Context, serverURL, name string, strategy game.Strategy, logger *log.Logger) (*statistics.Statistics, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, serverURL, nil)
	if err != nil {
		return nil, fmt.Errorf("connect failed: %w", err)
	}
	defer conn.Close()

	// Unblock reads if the context is cancelled
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	if err := send(conn, &protocol.Join{Type: protocol.TypeJoin, Name: name}); err != nil {
		return nil, fmt.Errorf("join failed: %w", err)
	}
	logger.Info("joined session", "server", serverURL, "name", name)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("read failed: %w", err)
		}
		msg, err := protocol.Parse(data)
		if err != nil {
			return nil, err
		}

		switch m := msg.(type) {
		case *protocol.DecisionRequest:
			hand, err := deck.ParseCards(m.PlayerHand)
			if err != nil {
				return nil, err
			}
			upcard, err := deck.ParseCard(m.Upcard)
			if err != nil {
				return nil, err
			}
			hit := strategy.Decide(hand, upcard)
			logger.Debug("decision", "id", m.ID, "hand", m.PlayerHand, "upcard", m.Upcard, "hit", hit)
			if err := send(conn, &protocol.Decision{Type: protocol.TypeDecision, ID: m.ID, Hit: hit}); err != nil {
				return nil, err
			}

		case *protocol.RoundStart:
			logger.Debug("round start", "round", m.Round, "hand", m.PlayerHand, "upcard", m.Upcard)

		case *protocol.RoundResult:
			logger.Debug("round result", "round", m.Round, "outcome", m.Outcome,
				"player", m.PlayerValue, "dealer", m.DealerValue)

		case *protocol.SessionResult:
			stats := &statistics.Statistics{
				Rounds: m.Rounds,
				Wins:   m.Wins,
				Losses: m.Losses,
				Draws:  m.Draws,
			}
			if err := stats.Validate(); err != nil {
				return nil, err
			}
			return stats, nil

		case *protocol.Error:
			return nil, fmt.Errorf("server error: %s", m.Message)
		}
	}
}

func send(conn *websocket.Conn, v any) error {
	data, err := protocol.Marshal(v)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

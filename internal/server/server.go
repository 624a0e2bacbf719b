// Package server hosts blackjack sessions for remote strategy clients.
// A client connects over a websocket, joins, and answers hit/stand
// decision requests while the server drives the rounds and keeps the
// tallies.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/protocol"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/statistics"
)

// Server accepts websocket strategy clients and plays sessions against
// them
type Server struct {
	config   *Config
	logger   *log.Logger
	clock    quartz.Clock
	seed     int64
	upgrader websocket.Upgrader
}

// New creates a server. Pass quartz.NewReal() outside of tests. A zero
// seed derives per-session seeds from the wall clock.
func New(config *Config, logger *log.Logger, clock quartz.Clock, seed int64) *Server {
	return &Server{
		config: config,
		logger: logger,
		clock:  clock,
		seed:   seed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler returns the HTTP handler serving the websocket endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe blocks serving websocket sessions on the configured
// address until the context is cancelled, then shuts the listener down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Address, s.config.Server.Port)
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr, "rounds", s.config.Game.Rounds, "decks", s.config.Game.Decks)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	if err := s.runSession(conn); err != nil {
		s.logger.Error("session ended with error", "error", err)
		s.sendMessage(conn, &protocol.Error{Type: protocol.TypeError, Message: err.Error()})
	}
}

// runSession plays one configured session against a single client. The
// session goroutine is the only writer on the connection; a reader
// goroutine feeds decisions into a channel consumed by the network
// strategy.
func (s *Server) runSession(conn *websocket.Conn) error {
	join, err := s.readJoin(conn)
	if err != nil {
		return err
	}
	s.logger.Info("player joined", "name", join.Name)

	d, err := deck.New(s.config.Game.Decks, randutil.Seed(s.seed))
	if err != nil {
		return err
	}
	engine := game.NewEngine(d, s.logger)

	decisions := make(chan *protocol.Decision)
	done := make(chan struct{})
	defer close(done)
	go s.readDecisions(conn, decisions, done)

	strategy := &networkStrategy{
		name:      join.Name,
		send:      func(v any) error { return s.sendMessage(conn, v) },
		decisions: decisions,
		timeout:   time.Duration(s.config.Game.DecisionTimeoutSeconds) * time.Second,
		clock:     s.clock,
		logger:    s.logger,
	}

	round := 0
	engine.Subscribe(func(event game.RoundEvent) {
		s.forwardEvent(conn, round, event)
	})

	stats := &statistics.Statistics{}
	for round = 1; round <= s.config.Game.Rounds; round++ {
		result, err := engine.PlayRound(strategy)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		if err := strategy.Err(); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		stats.Add(result.Outcome)
		d.Reset()
	}

	if err := stats.Validate(); err != nil {
		return err
	}
	s.logger.Info("session complete", "name", join.Name, "stats", stats)

	return s.sendMessage(conn, &protocol.SessionResult{
		Type:   protocol.TypeSessionResult,
		Rounds: stats.Rounds,
		Wins:   stats.Wins,
		Losses: stats.Losses,
		Draws:  stats.Draws,
	})
}

func (s *Server) readJoin(conn *websocket.Conn) (*protocol.Join, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("reading join: %w", err)
	}
	msg, err := protocol.Parse(data)
	if err != nil {
		return nil, err
	}
	join, ok := msg.(*protocol.Join)
	if !ok {
		return nil, fmt.Errorf("expected join message, got %T", msg)
	}
	if join.Name == "" {
		join.Name = "anonymous"
	}
	return join, nil
}

// readDecisions pumps client decisions into the channel until the
// connection drops or the session finishes
func (s *Server) readDecisions(conn *websocket.Conn, decisions chan<- *protocol.Decision, done <-chan struct{}) {
	defer close(decisions)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		msg, err := protocol.Parse(data)
		if err != nil {
			s.logger.Warn("ignoring malformed message", "error", err)
			continue
		}
		if decision, ok := msg.(*protocol.Decision); ok {
			select {
			case decisions <- decision:
			case <-done:
				return
			}
		}
	}
}

func (s *Server) forwardEvent(conn *websocket.Conn, round int, event game.RoundEvent) {
	var msg any
	switch e := event.(type) {
	case game.DealEvent:
		msg = &protocol.RoundStart{
			Type:       protocol.TypeRoundStart,
			Round:      round,
			PlayerHand: deck.Strings(e.PlayerHand),
			Upcard:     e.Upcard.String(),
		}
	case game.PlayerHitEvent:
		msg = &protocol.PlayerCard{Type: protocol.TypePlayerCard, Hand: deck.Strings(e.Hand)}
	case game.DealerHitEvent:
		msg = &protocol.DealerCard{Type: protocol.TypeDealerCard, Hand: deck.Strings(e.Hand)}
	case game.ResolvedEvent:
		msg = &protocol.RoundResult{
			Type:        protocol.TypeRoundResult,
			Round:       round,
			Outcome:     e.Outcome.String(),
			PlayerHand:  deck.Strings(e.PlayerHand),
			DealerHand:  deck.Strings(e.DealerHand),
			PlayerValue: e.PlayerValue,
			DealerValue: e.DealerValue,
		}
	default:
		return
	}

	if err := s.sendMessage(conn, msg); err != nil {
		s.logger.Warn("failed to forward event", "error", err)
	}
}

func (s *Server) sendMessage(conn *websocket.Conn, v any) error {
	data, err := protocol.Marshal(v)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

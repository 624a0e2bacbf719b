// Package protocol defines the JSON messages exchanged between the
// blackjack server and remote strategy clients over a websocket.
package protocol

// MessageType identifies the type of message
type MessageType string

const (
	// Client -> Server
	TypeJoin     = "join"
	TypeDecision = "decision"

	// Server -> Client
	TypeRoundStart      = "round_start"
	TypeDecisionRequest = "decision_request"
	TypePlayerCard      = "player_card"
	TypeDealerCard      = "dealer_card"
	TypeRoundResult     = "round_result"
	TypeSessionResult   = "session_result"
	TypeError           = "error"
)

// Cards travel on the wire in string form (e.g. "10", "J", "A")

// Join is sent by a client when connecting
type Join struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Decision answers a DecisionRequest: hit or stand. ID echoes the
// request it answers so the server can discard late answers to
// timed-out requests.
type Decision struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
	Hit  bool   `json:"hit"`
}

// RoundStart is sent after the initial deal. Only the dealer's upcard
// is revealed.
type RoundStart struct {
	Type       string   `json:"type"`
	Round      int      `json:"round"`
	PlayerHand []string `json:"player_hand"`
	Upcard     string   `json:"upcard"`
}

// DecisionRequest asks the remote strategy for a hit/stand decision.
// ID is unique per session and must be echoed in the Decision.
type DecisionRequest struct {
	Type       string   `json:"type"`
	ID         int      `json:"id"`
	PlayerHand []string `json:"player_hand"`
	Upcard     string   `json:"upcard"`
}

// PlayerCard is broadcast after each card the player draws
type PlayerCard struct {
	Type string   `json:"type"`
	Hand []string `json:"hand"`
}

// DealerCard is broadcast after each card the dealer draws
type DealerCard struct {
	Type string   `json:"type"`
	Hand []string `json:"hand"`
}

// RoundResult is sent at round completion with both final hands
type RoundResult struct {
	Type        string   `json:"type"`
	Round       int      `json:"round"`
	Outcome     string   `json:"outcome"`
	PlayerHand  []string `json:"player_hand"`
	DealerHand  []string `json:"dealer_hand"`
	PlayerValue int      `json:"player_value"`
	DealerValue int      `json:"dealer_value"`
}

// SessionResult closes a session with the aggregate tallies
type SessionResult struct {
	Type   string `json:"type"`
	Rounds int    `json:"rounds"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Draws  int    `json:"draws"`
}

// Error reports a fatal session error
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownMessageType is returned when a message type is not recognised
var ErrUnknownMessageType = errors.New("protocol: unknown message type")

// Marshal serializes a message to JSON
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// envelope is used to sniff the message type before full decoding
type envelope struct {
	Type string `json:"type"`
}

// Parse decodes a JSON message into its concrete type
func Parse(data []byte) (any, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("protocol: invalid message: %w", err)
	}

	var msg any
	switch env.Type {
	case TypeJoin:
		msg = &Join{}
	case TypeDecision:
		msg = &Decision{}
	case TypeRoundStart:
		msg = &RoundStart{}
	case TypeDecisionRequest:
		msg = &DecisionRequest{}
	case TypePlayerCard:
		msg = &PlayerCard{}
	case TypeDealerCard:
		msg = &DealerCard{}
	case TypeRoundResult:
		msg = &RoundResult{}
	case TypeSessionResult:
		msg = &SessionResult{}
	case TypeError:
		msg = &Error{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, env.Type)
	}

	if err := json.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("protocol: decoding %s: %w", env.Type, err)
	}
	return msg, nil
}

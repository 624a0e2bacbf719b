package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecisionRequest(t *testing.T) {
	data, err := Marshal(&DecisionRequest{
		Type:       TypeDecisionRequest,
		ID:         7,
		PlayerHand: []string{"A", "6"},
		Upcard:     "10",
	})
	require.NoError(t, err)

	msg, err := Parse(data)
	require.NoError(t, err)

	req, ok := msg.(*DecisionRequest)
	require.True(t, ok, "expected *DecisionRequest, got %T", msg)
	assert.Equal(t, 7, req.ID)
	assert.Equal(t, []string{"A", "6"}, req.PlayerHand)
	assert.Equal(t, "10", req.Upcard)
}

func TestParseDecision(t *testing.T) {
	msg, err := Parse([]byte(`{"type":"decision","id":3,"hit":true}`))
	require.NoError(t, err)

	decision, ok := msg.(*Decision)
	require.True(t, ok)
	assert.Equal(t, 3, decision.ID)
	assert.True(t, decision.Hit)
}

func TestParseSessionResult(t *testing.T) {
	data, err := Marshal(&SessionResult{
		Type: TypeSessionResult, Rounds: 100, Wins: 42, Losses: 49, Draws: 9,
	})
	require.NoError(t, err)

	msg, err := Parse(data)
	require.NoError(t, err)

	result, ok := msg.(*SessionResult)
	require.True(t, ok)
	assert.Equal(t, 100, result.Rounds)
	assert.Equal(t, 42, result.Wins)
}

func TestParseAllTypes(t *testing.T) {
	messages := []any{
		&Join{Type: TypeJoin, Name: "bot"},
		&Decision{Type: TypeDecision, Hit: false},
		&RoundStart{Type: TypeRoundStart, Round: 1, PlayerHand: []string{"2", "3"}, Upcard: "K"},
		&DecisionRequest{Type: TypeDecisionRequest, PlayerHand: []string{"2", "3"}, Upcard: "K"},
		&PlayerCard{Type: TypePlayerCard, Hand: []string{"2", "3", "J"}},
		&DealerCard{Type: TypeDealerCard, Hand: []string{"K", "5", "4"}},
		&RoundResult{Type: TypeRoundResult, Outcome: "win"},
		&SessionResult{Type: TypeSessionResult, Rounds: 1, Wins: 1},
		&Error{Type: TypeError, Message: "boom"},
	}

	for _, original := range messages {
		data, err := Marshal(original)
		require.NoError(t, err)

		parsed, err := Parse(data)
		require.NoError(t, err)
		assert.IsType(t, original, parsed)
	}
}

func TestParseUnknownType(t *testing.T) {
	_, err := Parse([]byte(`{"type":"teleport"}`))
	assert.ErrorIs(t, err, ErrUnknownMessageType)
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{`))
	assert.Error(t, err)
}

package server

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHand() []deck.Card {
	return []deck.Card{deck.Ten, deck.Six}
}

func answer(id int, hit bool) *protocol.Decision {
	return &protocol.Decision{Type: protocol.TypeDecision, ID: id, Hit: hit}
}

func TestNetworkStrategyForwardsDecision(t *testing.T) {
	decisions := make(chan *protocol.Decision, 1)
	var sent []any
	ns := &networkStrategy{
		name:      "bot",
		send:      func(v any) error { sent = append(sent, v); return nil },
		decisions: decisions,
		timeout:   time.Second,
		clock:     quartz.NewReal(),
		logger:    log.New(io.Discard),
	}

	decisions <- answer(1, true)
	assert.True(t, ns.Decide(testHand(), deck.Ace))
	require.Len(t, sent, 1)
	require.NoError(t, ns.Err())

	decisions <- answer(2, false)
	assert.False(t, ns.Decide(testHand(), deck.Ace))
}

// A client that misses the decision timeout is forced to stand
func TestNetworkStrategyTimeoutForcesStand(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	trap := mock.Trap().NewTimer()
	defer trap.Close()

	ns := &networkStrategy{
		name:      "bot",
		send:      func(v any) error { return nil },
		decisions: make(chan *protocol.Decision),
		timeout:   5 * time.Second,
		clock:     mock,
		logger:    log.New(io.Discard),
	}

	result := make(chan bool, 1)
	go func() {
		result <- ns.Decide(testHand(), deck.Ace)
	}()

	call := trap.MustWait(ctx)
	call.MustRelease(ctx)
	mock.Advance(5 * time.Second).MustWait(ctx)

	assert.False(t, <-result)
	assert.NoError(t, ns.Err(), "timeout is not a transport error")
}

// A decision arriving after its request timed out must never be applied
// to the next decision point: answers are matched by request id and
// stale ones are drained.
func TestNetworkStrategyDiscardsStaleDecision(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	trap := mock.Trap().NewTimer()
	defer trap.Close()

	decisions := make(chan *protocol.Decision, 2)
	var requests []*protocol.DecisionRequest
	ns := &networkStrategy{
		name: "bot",
		send: func(v any) error {
			requests = append(requests, v.(*protocol.DecisionRequest))
			return nil
		},
		decisions: decisions,
		timeout:   5 * time.Second,
		clock:     mock,
		logger:    log.New(io.Discard),
	}

	// First decision point gets no answer and times out to a stand
	result := make(chan bool, 1)
	go func() {
		result <- ns.Decide(testHand(), deck.Ace)
	}()
	call := trap.MustWait(ctx)
	call.MustRelease(ctx)
	mock.Advance(5 * time.Second).MustWait(ctx)
	assert.False(t, <-result)
	require.Len(t, requests, 1)

	// The client's late "hit" for the first request lands in the
	// channel before the second decision point asks
	decisions <- answer(requests[0].ID, true)

	go func() {
		result <- ns.Decide(testHand(), deck.Ace)
	}()
	call = trap.MustWait(ctx)
	call.MustRelease(ctx)
	require.Len(t, requests, 2)
	require.NotEqual(t, requests[0].ID, requests[1].ID)

	// Only the answer echoing the second request's id counts
	decisions <- answer(requests[1].ID, false)
	assert.False(t, <-result, "stale hit must not answer the new decision point")
	assert.NoError(t, ns.Err())
}

func TestNetworkStrategyClosedChannel(t *testing.T) {
	decisions := make(chan *protocol.Decision)
	close(decisions)

	ns := &networkStrategy{
		name:      "bot",
		send:      func(v any) error { return nil },
		decisions: decisions,
		timeout:   time.Second,
		clock:     quartz.NewReal(),
		logger:    log.New(io.Discard),
	}

	assert.False(t, ns.Decide(testHand(), deck.Ace))
	assert.Error(t, ns.Err())

	// Subsequent decisions stand immediately without sending
	assert.False(t, ns.Decide(testHand(), deck.Ace))
}

package display

import (
	"strings"
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

func TestRendererObserve(t *testing.T) {
	var buf strings.Builder
	renderer := NewRenderer(&buf)
	observe := renderer.Observe()

	observe(game.DealEvent{
		PlayerHand: []deck.Card{deck.Ace, deck.Six},
		Upcard:     deck.Ten,
	})
	observe(game.PlayerHitEvent{Hand: []deck.Card{deck.Ace, deck.Six, deck.Four}})
	observe(game.DealerHitEvent{Hand: []deck.Card{deck.Ten, deck.Seven}})
	observe(game.ResolvedEvent{
		PlayerHand:  []deck.Card{deck.Ace, deck.Six, deck.Four},
		DealerHand:  []deck.Card{deck.Ten, deck.Seven},
		PlayerValue: 21,
		DealerValue: 17,
		Outcome:     game.Win,
	})

	out := buf.String()
	for _, want := range []string{
		"Player's hand:",
		"Dealer's hand:",
		"?",
		"Player hits:",
		"Dealer hits:",
		"Final player's hand:",
		"(value: 21)",
		"Final dealer's hand:",
		"(value: 17)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// The initial deal must never reveal the dealer's hole card
func TestRendererHidesHoleCard(t *testing.T) {
	var buf strings.Builder
	renderer := NewRenderer(&buf)

	renderer.Observe()(game.DealEvent{
		PlayerHand: []deck.Card{deck.Two, deck.Three},
		Upcard:     deck.King,
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "K") || !strings.Contains(lines[1], "?") {
		t.Errorf("dealer line should show upcard and hidden marker: %q", lines[1])
	}
}

func TestRenderOutcome(t *testing.T) {
	renderer := NewRenderer(&strings.Builder{})
	for _, outcome := range []game.Outcome{game.Win, game.Lose, game.Draw} {
		if got := renderer.RenderOutcome(outcome); !strings.Contains(got, outcome.String()) {
			t.Errorf("RenderOutcome(%s) = %q", outcome, got)
		}
	}
}

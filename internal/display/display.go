// Package display renders round progress for the single-round CLI path.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Styles contains styling for round output
type Styles struct {
	Card   lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Win    lipgloss.Style
	Lose   lipgloss.Style
	Draw   lipgloss.Style
	Hidden lipgloss.Style
}

// DefaultStyles returns the default round output styling
func DefaultStyles() *Styles {
	return &Styles{
		Card:   lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		Win:    lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Lose:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Draw:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Hidden: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Bold(true),
	}
}

// Renderer writes human-readable round notifications to w as events
// arrive from the engine
type Renderer struct {
	w      io.Writer
	styles *Styles
}

// NewRenderer creates a renderer with default styles
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: DefaultStyles()}
}

// Observe returns an event function suitable for Engine.Subscribe
func (r *Renderer) Observe() game.EventFunc {
	return func(event game.RoundEvent) {
		switch e := event.(type) {
		case game.DealEvent:
			fmt.Fprintf(r.w, "%s %s\n",
				r.styles.Label.Render("Player's hand:"), r.renderHand(e.PlayerHand))
			fmt.Fprintf(r.w, "%s %s %s\n",
				r.styles.Label.Render("Dealer's hand:"),
				r.styles.Card.Render(e.Upcard.String()),
				r.styles.Hidden.Render("?"))
		case game.PlayerHitEvent:
			fmt.Fprintf(r.w, "%s %s\n",
				r.styles.Label.Render("Player hits:"), r.renderHand(e.Hand))
		case game.DealerHitEvent:
			fmt.Fprintf(r.w, "%s %s\n",
				r.styles.Label.Render("Dealer hits:"), r.renderHand(e.Hand))
		case game.ResolvedEvent:
			fmt.Fprintf(r.w, "%s %s %s\n",
				r.styles.Label.Render("Final player's hand:"),
				r.renderHand(e.PlayerHand),
				r.styles.Value.Render(fmt.Sprintf("(value: %d)", e.PlayerValue)))
			fmt.Fprintf(r.w, "%s %s %s\n",
				r.styles.Label.Render("Final dealer's hand:"),
				r.renderHand(e.DealerHand),
				r.styles.Value.Render(fmt.Sprintf("(value: %d)", e.DealerValue)))
		}
	}
}

// RenderOutcome renders a round verdict
func (r *Renderer) RenderOutcome(outcome game.Outcome) string {
	switch outcome {
	case game.Win:
		return r.styles.Win.Render(outcome.String())
	case game.Lose:
		return r.styles.Lose.Render(outcome.String())
	default:
		return r.styles.Draw.Render(outcome.String())
	}
}

func (r *Renderer) renderHand(hand []deck.Card) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		parts[i] = r.styles.Card.Render(card.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

package deck

import "fmt"

// Card identifies one of the 13 card ranks. Suits never affect blackjack
// scoring, so a card is just its rank and a deck is a multiset of ranks.
type Card int

const (
	Two Card = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a card
func (c Card) String() string {
	switch c {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if c >= Two && c <= Ten {
			return fmt.Sprintf("%d", int(c))
		}
		return "?"
	}
}

// ParseCard parses a card from its string form (e.g. "10", "J", "A")
func ParseCard(s string) (Card, error) {
	switch s {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	for c := Two; c <= Ten; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid card %q", s)
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c == Ace
}

// IsFace returns true if the card is a face card (J, Q, K)
func (c Card) IsFace() bool {
	return c >= Jack && c <= King
}

// Strings converts a hand to its wire/display form
func Strings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// ParseCards parses a sequence of card strings
func ParseCards(strs []string) ([]Card, error) {
	cards := make([]Card, len(strs))
	for i, s := range strs {
		card, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

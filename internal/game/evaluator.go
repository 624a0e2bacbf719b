package game

import "github.com/lox/blackjackforbots/internal/deck"

// handTotal sums a hand with Aces at 11, then downgrades Aces to 1 one
// at a time while the total exceeds 21. Returns the settled total and
// the number of Aces still counted as 11.
func handTotal(hand []deck.Card) (value, softAces int) {
	for _, card := range hand {
		switch {
		case card.IsFace():
			value += 10
		case card.IsAce():
			softAces++
			value += 11
		default:
			value += int(card)
		}
	}

	for value > 21 && softAces > 0 {
		value -= 10
		softAces--
	}

	return value, softAces
}

// HandValue computes the best blackjack total for a hand: the maximal
// total <= 21 achievable by any assignment of Ace values, or the
// minimal total when even all-Aces-as-1 busts.
func HandValue(hand []deck.Card) int {
	value, _ := handTotal(hand)
	return value
}

// IsSoft reports whether the hand's best value counts an Ace as 11
func IsSoft(hand []deck.Card) bool {
	_, softAces := handTotal(hand)
	return softAces > 0
}

// IsBust reports whether a hand value exceeds 21
func IsBust(value int) bool {
	return value > 21
}

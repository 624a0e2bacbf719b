package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/blackjackforbots/internal/randutil"
)

// CardsPerDeck is the size of one standard rank multiset (4 copies of
// each of the 13 ranks).
const CardsPerDeck = 52

// ErrEmptyDeck is returned by Draw when no cards remain
var ErrEmptyDeck = errors.New("deck: no cards remaining")

// Deck owns an ordered, shuffled sequence of cards built from one or
// more standard rank multisets. It is not safe for concurrent use; each
// engine owns its own Deck.
type Deck struct {
	cards    []Card
	numDecks int
	rng      *rand.Rand
}

// New creates a shuffled deck of numDecks standard multisets, seeded
// deterministically from seed
func New(numDecks int, seed int64) (*Deck, error) {
	if numDecks < 1 {
		return nil, fmt.Errorf("deck: numDecks must be positive, got %d", numDecks)
	}

	d := &Deck{
		cards:    make([]Card, 0, numDecks*CardsPerDeck),
		numDecks: numDecks,
		rng:      randutil.New(seed),
	}
	d.rebuild()
	return d, nil
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return 0, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// NumDecks returns the number of standard multisets the deck rebuilds to
func (d *Deck) NumDecks() int {
	return d.numDecks
}

// Reset rebuilds the full sequence and reshuffles, discarding any
// outstanding draw state
func (d *Deck) Reset() {
	d.rebuild()
}

func (d *Deck) rebuild() {
	d.cards = d.cards[:0]
	for n := 0; n < d.numDecks; n++ {
		for rank := Two; rank <= Ace; rank++ {
			for i := 0; i < 4; i++ {
				d.cards = append(d.cards, rank)
			}
		}
	}
	d.shuffle()
}

// shuffle applies a Fisher-Yates shuffle using the deck's own rng
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

package strategy

import (
	"testing"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/randutil"
)

func hand(t *testing.T, strs ...string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(strs)
	if err != nil {
		t.Fatal(err)
	}
	return cards
}

func TestBasicHitsBelowSeventeen(t *testing.T) {
	basic := Basic{}
	up := deck.Ten

	if !basic.Decide(hand(t, "10", "6"), up) {
		t.Error("expected hit at 16")
	}
	if basic.Decide(hand(t, "10", "7"), up) {
		t.Error("expected stand at 17")
	}
	// Soft 17 counts as 17 for the hit threshold
	if basic.Decide(hand(t, "A", "6"), up) {
		t.Error("expected stand at soft 17")
	}
}

func TestStandNeverHits(t *testing.T) {
	stand := Stand{}
	if stand.Decide(hand(t, "2", "3"), deck.Ace) {
		t.Error("stand strategy must never hit")
	}
}

func TestRandomStopsWhenNotLive(t *testing.T) {
	random := NewRandom(randutil.New(1))
	for i := 0; i < 50; i++ {
		if random.Decide(hand(t, "K", "Q", "A"), deck.Ten) {
			t.Fatal("random strategy hit at 21")
		}
		if random.Decide(hand(t, "K", "Q", "5"), deck.Ten) {
			t.Fatal("random strategy hit after busting")
		}
	}
}

func TestChart(t *testing.T) {
	tests := []struct {
		name   string
		hand   []string
		upcard deck.Card
		hit    bool
	}{
		{"hard 11 always hits", []string{"5", "6"}, deck.Two, true},
		{"hard 12 stands against 5", []string{"8", "4"}, deck.Five, false},
		{"hard 12 hits against 2", []string{"8", "4"}, deck.Two, true},
		{"hard 12 hits against 7", []string{"8", "4"}, deck.Seven, true},
		{"hard 16 stands against 6", []string{"10", "6"}, deck.Six, false},
		{"hard 16 hits against 10", []string{"10", "6"}, deck.King, true},
		{"hard 16 hits against ace", []string{"10", "6"}, deck.Ace, true},
		{"hard 17 stands against ace", []string{"10", "7"}, deck.Ace, false},
		{"soft 17 hits", []string{"A", "6"}, deck.Two, true},
		{"soft 18 stands against 8", []string{"A", "7"}, deck.Eight, false},
		{"soft 18 hits against 9", []string{"A", "7"}, deck.Nine, true},
		{"soft 18 hits against ace", []string{"A", "7"}, deck.Ace, true},
		{"soft 19 stands", []string{"A", "8"}, deck.Ten, false},
	}

	chart := Chart{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chart.Decide(hand(t, tt.hand...), tt.upcard); got != tt.hit {
				t.Errorf("Decide(%v vs %s) = %v, want %v", tt.hand, tt.upcard, got, tt.hit)
			}
		})
	}
}

func TestNew(t *testing.T) {
	rng := randutil.New(1)
	for _, name := range Names() {
		if name == "neural" {
			continue // requires a weights file
		}
		if _, err := New(name, rng, ""); err != nil {
			t.Errorf("New(%q) returned error: %v", name, err)
		}
	}

	if _, err := New("bogus", rng, ""); err == nil {
		t.Error("New(\"bogus\") expected error")
	}
	if _, err := New("neural", rng, ""); err == nil {
		t.Error("New(\"neural\") without weights expected error")
	}
}

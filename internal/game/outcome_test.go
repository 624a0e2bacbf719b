package game

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		player int
		dealer int
		want   Outcome
	}{
		{"player higher", 20, 19, Win},
		{"player bust overrides lower dealer", 22, 19, Lose},
		{"dealer bust", 18, 22, Win},
		{"push", 17, 17, Draw},
		{"dealer higher", 18, 20, Lose},
		{"both bust is a loss", 22, 23, Lose},
		{"push at twenty-one", 21, 21, Draw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.player, tt.dealer); got != tt.want {
				t.Errorf("Resolve(%d, %d) = %s, want %s", tt.player, tt.dealer, got, tt.want)
			}
		})
	}
}

func TestOutcomeStringRoundTrip(t *testing.T) {
	for _, outcome := range []Outcome{Win, Lose, Draw} {
		parsed, err := ParseOutcome(outcome.String())
		if err != nil {
			t.Fatalf("ParseOutcome(%q) returned error: %v", outcome.String(), err)
		}
		if parsed != outcome {
			t.Errorf("ParseOutcome(%q) = %v, want %v", outcome.String(), parsed, outcome)
		}
	}

	if _, err := ParseOutcome("push"); err == nil {
		t.Error("ParseOutcome(\"push\") expected error")
	}
}

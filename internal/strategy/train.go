package strategy

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/patrikeh/go-deep/training"
)

// TrainConfig holds parameters for training the neural policy
type TrainConfig struct {
	Rollouts     int     // Monte-Carlo rollouts per state/action pair
	Epochs       int     // training iterations over the labeled set
	LearningRate float64 // SGD learning rate
	Seed         int64   // rollout deck seed
	Logger       *log.Logger
}

// DefaultTrainConfig returns training parameters that converge on the
// basic-strategy table in a few seconds
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		Rollouts:     2000,
		Epochs:       500,
		LearningRate: 0.1,
	}
}

// TrainNeural trains a hit/stand policy by Monte-Carlo evaluation. For
// every reachable decision state (hand total, softness, dealer upcard)
// it estimates the expected round score of hitting versus standing with
// repeated rollouts, labels the state with the better action, and fits
// the network to the labeled set.
func TrainNeural(cfg TrainConfig) (*Neural, error) {
	if cfg.Rollouts < 1 {
		return nil, fmt.Errorf("train: rollouts must be positive, got %d", cfg.Rollouts)
	}
	if cfg.Epochs < 1 {
		return nil, fmt.Errorf("train: epochs must be positive, got %d", cfg.Epochs)
	}

	d, err := deck.New(1, randutil.Seed(cfg.Seed))
	if err != nil {
		return nil, err
	}
	r := &rollouts{deck: d, perAction: cfg.Rollouts}

	var examples training.Examples
	for _, state := range decisionStates() {
		evHit := r.estimate(state.hand, state.upcard, true)
		evStand := r.estimate(state.hand, state.upcard, false)

		label := 0.0
		if evHit > evStand {
			label = 1.0
		}
		examples = append(examples, training.Example{
			Input:    features(state.hand, state.upcard),
			Response: []float64{label},
		})

		if cfg.Logger != nil {
			cfg.Logger.Debug("labeled state",
				"hand", deck.Strings(state.hand), "upcard", state.upcard,
				"evHit", evHit, "evStand", evStand, "hit", label == 1.0)
		}
	}

	neural := NewNeural()
	trainer := training.NewTrainer(training.NewSGD(cfg.LearningRate, 0.5, 0.0, false), 0)
	trainer.Train(neural.network, examples, nil, cfg.Epochs)

	return neural, nil
}

type decisionState struct {
	hand   []deck.Card
	upcard deck.Card
}

// decisionStates enumerates synthetic two-card hands covering every
// hard total 5-20 and soft total 13-21, against every upcard
func decisionStates() []decisionState {
	var states []decisionState

	upcards := []deck.Card{
		deck.Two, deck.Three, deck.Four, deck.Five, deck.Six,
		deck.Seven, deck.Eight, deck.Nine, deck.Ten, deck.Ace,
	}
	for _, up := range upcards {
		for total := 5; total <= 20; total++ {
			states = append(states, decisionState{hand: hardHand(total), upcard: up})
		}
		for total := 13; total <= 21; total++ {
			soft := []deck.Card{deck.Ace, deck.Card(total - 11)}
			states = append(states, decisionState{hand: soft, upcard: up})
		}
	}
	return states
}

// hardHand builds a two-card ace-free hand with the given total
func hardHand(total int) []deck.Card {
	if total > 12 {
		return []deck.Card{deck.Ten, deck.Card(total - 10)}
	}
	return []deck.Card{deck.Two, deck.Card(total - 2)}
}

// rollouts estimates action values by simulated play. Synthetic hands
// are not removed from the rollout deck; the card-removal effect is
// negligible for labeling purposes.
type rollouts struct {
	deck      *deck.Deck
	perAction int
}

// estimate returns the mean round score (win +1, draw 0, lose -1) of
// taking the given first action and then following the chart policy
func (r *rollouts) estimate(hand []deck.Card, upcard deck.Card, hit bool) float64 {
	chart := Chart{}
	score := 0

	for i := 0; i < r.perAction; i++ {
		r.deck.Reset()

		player := append([]deck.Card(nil), hand...)
		if hit {
			player = append(player, r.mustDraw())
			for game.HandValue(player) <= 21 && chart.Decide(player, upcard) {
				player = append(player, r.mustDraw())
			}
		}
		playerValue := game.HandValue(player)
		if playerValue > 21 {
			score--
			continue
		}

		dealer := []deck.Card{upcard, r.mustDraw()}
		for game.HandValue(dealer) < 17 {
			dealer = append(dealer, r.mustDraw())
		}

		switch game.Resolve(playerValue, game.HandValue(dealer)) {
		case game.Win:
			score++
		case game.Lose:
			score--
		}
	}

	return float64(score) / float64(r.perAction)
}

// mustDraw draws from the rollout deck, which is reset every rollout
// and cannot run dry within one
func (r *rollouts) mustDraw() deck.Card {
	card, err := r.deck.Draw()
	if err != nil {
		panic(err)
	}
	return card
}

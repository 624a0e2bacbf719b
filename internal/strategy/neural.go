package strategy

import (
	"fmt"
	"os"

	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	deep "github.com/patrikeh/go-deep"
)

// neural network shape: three inputs (normalised hand value, softness,
// normalised upcard), two hidden layers, one hit probability output
const neuralInputs = 3

// Neural decides hit/stand with a feedforward network over hand
// features. Networks are produced by the trainer and persisted as JSON
// weights, so a trained policy can be reloaded across runs.
type Neural struct {
	network *deep.Neural
}

// NewNeural creates an untrained network-backed strategy
func NewNeural() *Neural {
	return &Neural{network: newNetwork()}
}

func newNetwork() *deep.Neural {
	return deep.NewNeural(&deep.Config{
		Inputs:     neuralInputs,
		Layout:     []int{16, 8, 1},
		Activation: deep.ActivationSigmoid,
		Mode:       deep.ModeBinary,
		Weight:     deep.NewNormal(0.5, 0.0),
		Bias:       true,
	})
}

// Decide implements game.Strategy: hit when the network's hit
// probability exceeds one half
func (n *Neural) Decide(hand []deck.Card, upcard deck.Card) bool {
	out := n.network.Predict(features(hand, upcard))
	return out[0] > 0.5
}

// features encodes a decision point for the network
func features(hand []deck.Card, upcard deck.Card) []float64 {
	soft := 0.0
	if game.IsSoft(hand) {
		soft = 1.0
	}
	return []float64{
		float64(game.HandValue(hand)) / 21.0,
		soft,
		float64(upcardValue(upcard)) / 11.0,
	}
}

// Save writes the network weights as JSON
func (n *Neural) Save(path string) error {
	data, err := n.network.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling network: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing weights: %w", err)
	}
	return nil
}

// LoadNeural restores a trained strategy from a weights file
func LoadNeural(path string) (*Neural, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading weights: %w", err)
	}
	network, err := deep.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling network: %w", err)
	}
	return &Neural{network: network}, nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/simulator"
	"github.com/lox/blackjackforbots/internal/strategy"
)

type CLI struct {
	Rollouts     int     `default:"2000" help:"Monte-Carlo rollouts per state/action pair"`
	Epochs       int     `default:"500" help:"Training iterations over the labeled set"`
	LearningRate float64 `default:"0.1" help:"SGD learning rate"`
	Seed         int64   `default:"0" help:"RNG seed (0 for random)"`
	Output       string  `default:"neural.weights.json" help:"Weights output file"`
	EvalRounds   int     `default:"10000" help:"Rounds to evaluate the trained policy (0 to skip)"`
	Verbose      bool    `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack-train"),
		kong.Description("Train the neural hit/stand policy with Monte-Carlo rollouts"),
		kong.UsageOnError(),
	)

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cli.Seed = randutil.Seed(cli.Seed)
	logger.Info("training", "rollouts", cli.Rollouts, "epochs", cli.Epochs,
		"learningRate", cli.LearningRate, "seed", cli.Seed)

	start := time.Now()
	neural, err := strategy.TrainNeural(strategy.TrainConfig{
		Rollouts:     cli.Rollouts,
		Epochs:       cli.Epochs,
		LearningRate: cli.LearningRate,
		Seed:         cli.Seed,
		Logger:       logger,
	})
	ctx.FatalIfErrorf(err)
	logger.Info("training complete", "duration", time.Since(start).Round(time.Millisecond))

	ctx.FatalIfErrorf(neural.Save(cli.Output))
	fmt.Printf("Wrote weights to %s\n", cli.Output)

	if cli.EvalRounds > 0 {
		evaluate(ctx, &cli, neural, logger)
	}
}

// evaluate reports the trained policy's simulated rates next to the
// chart policy it was trained against
func evaluate(ctx *kong.Context, cli *CLI, neural *strategy.Neural, logger *log.Logger) {
	sim := simulator.New(simulator.Config{
		Rounds: cli.EvalRounds,
		Decks:  1,
		Seed:   cli.Seed + 1,
		Logger: logger,
	})

	neuralStats, err := sim.Run(neural)
	ctx.FatalIfErrorf(err)
	chartStats, err := sim.Run(strategy.Chart{})
	ctx.FatalIfErrorf(err)

	fmt.Printf("Evaluation over %d rounds:\n", cli.EvalRounds)
	fmt.Printf("  neural: wins %.2f%% | losses %.2f%% | draws %.2f%%\n",
		neuralStats.WinRate()*100, neuralStats.LoseRate()*100, neuralStats.DrawRate()*100)
	fmt.Printf("  chart:  wins %.2f%% | losses %.2f%% | draws %.2f%%\n",
		chartStats.WinRate()*100, chartStats.LoseRate()*100, chartStats.DrawRate()*100)
}

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/display"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/simulator"
	"github.com/lox/blackjackforbots/internal/strategy"
)

type CLI struct {
	Decks    int    `default:"1" help:"Number of card decks to use"`
	Runs     int    `default:"0" help:"Number of rounds to simulate (0 or 1 = play a single round)"`
	NoLog    bool   `help:"Disable round output for a single round"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Strategy string `default:"basic" enum:"basic,stand,random,chart,neural" help:"Player strategy"`
	Weights  string `help:"Weights file for the neural strategy"`
	Workers  int    `default:"1" help:"Parallel simulation workers"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Play a round of blackjack or run batch experiments with pluggable strategies"),
		kong.UsageOnError(),
	)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cli.Seed = randutil.Seed(cli.Seed)

	strat, err := strategy.New(cli.Strategy, randutil.New(cli.Seed), cli.Weights)
	ctx.FatalIfErrorf(err)

	if cli.Runs > 1 {
		ctx.FatalIfErrorf(runExperiment(&cli, strat, logger))
	} else {
		ctx.FatalIfErrorf(playRound(&cli, strat, logger))
	}
	ctx.Exit(0)
}

// playRound plays and prints a single logged round
func playRound(cli *CLI, strat game.Strategy, logger *log.Logger) error {
	d, err := deck.New(cli.Decks, cli.Seed)
	if err != nil {
		return err
	}

	engine := game.NewEngine(d, logger)
	renderer := display.NewRenderer(os.Stdout)
	if !cli.NoLog {
		engine.Subscribe(renderer.Observe())
	}

	result, err := engine.PlayRound(strat)
	if err != nil {
		return err
	}

	fmt.Printf("Game result: %s\n", renderer.RenderOutcome(result.Outcome))
	return nil
}

// runExperiment runs the batch path and prints aggregate rates
func runExperiment(cli *CLI, strat game.Strategy, logger *log.Logger) error {
	sim := simulator.New(simulator.Config{
		Rounds:  cli.Runs,
		Decks:   cli.Decks,
		Seed:    cli.Seed,
		Workers: cli.Workers,
		Logger:  logger,
	})

	stats, err := sim.Run(strat)
	if err != nil {
		return err
	}

	fmt.Printf("Ran %d games with %d deck(s).\n", stats.Rounds, cli.Decks)
	fmt.Printf("Wins: %d (%.2f%%) | Losses: %d (%.2f%%) | Draws: %d (%.2f%%)\n",
		stats.Wins, stats.WinRate()*100,
		stats.Losses, stats.LoseRate()*100,
		stats.Draws, stats.DrawRate()*100)
	return nil
}

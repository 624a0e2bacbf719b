package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/client"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/strategy"
)

type CLI struct {
	Server   string `default:"ws://localhost:8080/ws" help:"Server websocket URL"`
	Name     string `default:"bot" help:"Display name for this bot"`
	Strategy string `default:"basic" enum:"basic,stand,random,chart,neural" help:"Player strategy"`
	Weights  string `help:"Weights file for the neural strategy"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("blackjack-bot"),
		kong.Description("Connect a strategy to a blackjack server and play a session"),
		kong.UsageOnError(),
	)

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	strat, err := strategy.New(cli.Strategy, randutil.New(randutil.Seed(cli.Seed)), cli.Weights)
	kctx.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := client.Run(ctx, cli.Server, cli.Name, strat, logger)
	kctx.FatalIfErrorf(err)

	fmt.Printf("Session complete: %d rounds\n", stats.Rounds)
	fmt.Printf("Wins: %d (%.2f%%) | Losses: %d (%.2f%%) | Draws: %d (%.2f%%)\n",
		stats.Wins, stats.WinRate()*100,
		stats.Losses, stats.LoseRate()*100,
		stats.Draws, stats.DrawRate()*100)
}

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/server"
)

type CLI struct {
	Config  string `default:"blackjack-server.hcl" help:"HCL configuration file"`
	Seed    int64  `default:"0" help:"Session deck seed (0 for random)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack-server"),
		kong.Description("Host blackjack sessions for remote strategy clients"),
		kong.UsageOnError(),
	)

	config, err := server.LoadConfig(cli.Config)
	ctx.FatalIfErrorf(err)

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	} else if parsed, err := log.ParseLevel(config.Server.LogLevel); err == nil {
		level = parsed
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := server.New(config, logger, quartz.NewReal(), cli.Seed)
	ctx.FatalIfErrorf(srv.ListenAndServe(runCtx))
}

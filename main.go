package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/difysjs/docsite/cli"
	"github.com/difysjs/docsite/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Default()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		log.Logger.Error().Err(err).Msg("docsite failed")
		cancel()
		os.Exit(1)
	}
}

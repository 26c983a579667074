package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lyricboard/lyricboard/pkg/storyteller"
	"github.com/lyricboard/lyricboard/pkg/storyteller/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupResult, err := setup.Setup(ctx)
	if err != nil {
		slog.Error("failed to setup", "error", err)
		return
	}

	config, err := storyteller.NewStorytellerConfigFromSetupResult(setupResult)
	if err != nil {
		slog.Error("failed to create config", "error", err)
		return
	}

	storyteller, err := storyteller.NewStoryteller(ctx, config)
	if err != nil {
		slog.Error("failed to create storyteller", "error", err)
		return
	}

	if err := storyteller.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server error", "error", err)
	}
}

package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/lyricboard/lyricboard/pkg/storyteller/debug"
)

type SetupResult struct {
	ApiIpPort         string
	ImageBackend      string
	GeminiApiKey      string
	GeminiModel       string
	OpenAiApiKey      string
	OpenAiModel       string
	MaxSamplesPerLine int
}

func Setup(ctx context.Context) (*SetupResult, error) {
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env file")
	}

	config, err := NewConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get config from env: %v", err)
	}

	setupResult := &SetupResult{
		ApiIpPort:         config.ApiIpPort,
		ImageBackend:      config.ImageBackend,
		GeminiApiKey:      config.GeminiApiKey,
		GeminiModel:       config.GeminiModel,
		OpenAiApiKey:      config.OpenAiApiKey,
		OpenAiModel:       config.OpenAiModel,
		MaxSamplesPerLine: config.MaxSamplesPerLine,
	}

	if debug.IsDebugShowSetup() {
		slog.Info("setup output", "setupOutput", setupResult)
	}

	return setupResult, nil
}

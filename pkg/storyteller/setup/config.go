package setup

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v6"
)

const (
	ImageBackendGemini = "gemini"
	ImageBackendOpenAi = "openai"
)

type Config struct {
	ApiIpPort         string `env:"API_IP_PORT" envDefault:":8080"`
	ImageBackend      string `env:"IMAGE_BACKEND" envDefault:"gemini"`
	GeminiApiKey      string `env:"GEMINI_API_KEY"`
	GeminiModel       string `env:"GEMINI_MODEL" envDefault:"imagen-3.0-generate-002"`
	OpenAiApiKey      string `env:"OPENAI_API_KEY"`
	OpenAiModel       string `env:"OPENAI_MODEL" envDefault:"dall-e-3"`
	MaxSamplesPerLine int    `env:"MAX_SAMPLES_PER_LINE" envDefault:"2"`
}

func NewConfigFromEnv() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.ImageBackend {
	case ImageBackendGemini:
		if c.GeminiApiKey == "" {
			return errors.New("GEMINI_API_KEY is required")
		}
	case ImageBackendOpenAi:
		if c.OpenAiApiKey == "" {
			return errors.New("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown image backend: %q", c.ImageBackend)
	}

	if c.MaxSamplesPerLine < 1 {
		return errors.New("MAX_SAMPLES_PER_LINE must be at least 1")
	}

	return nil
}

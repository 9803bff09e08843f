package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/ecosmart/shop/pkg/log"
)

// GeminiConfig is optional: when APIKey is empty the assistant runs in
// local response mode instead of failing at startup.
type GeminiConfig struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	Model   string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}

func (c GeminiConfig) Enabled() bool {
	return c.APIKey != ""
}

package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/ecosmart/shop/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"ECOSHOP_RUNTIME_PATH" envDefault:".ecoshop"`

	// Transport Flags
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:":5000"`
	EnableTelegram bool   `env:"ENABLE_TELEGRAM" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "ecoshop.db")
}

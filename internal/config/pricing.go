package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/ecosmart/shop/pkg/log"
)

// PricingConfig points at the external price prediction service. An
// empty URL disables remote predictions and every price falls back to
// the local rules.
type PricingConfig struct {
	URL string `env:"ML_API_URL"`
}

func NewPricingConfig(ctx context.Context) *PricingConfig {
	c := &PricingConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Pricing config")
	}
	return c
}

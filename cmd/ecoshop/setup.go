package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ecosmart/shop/internal/assistant"
	"github.com/ecosmart/shop/internal/config"
	"github.com/ecosmart/shop/internal/pricing"
	"github.com/ecosmart/shop/internal/providers/genai"
	"github.com/ecosmart/shop/internal/storage/sqlite"
	"github.com/ecosmart/shop/internal/transport/rest"
	"github.com/ecosmart/shop/internal/transport/telegram"
	"github.com/ecosmart/shop/pkg/log"
	"github.com/ecosmart/shop/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	geminiCfg := config.NewGeminiConfig(ctx)
	pricingCfg := config.NewPricingConfig(ctx)

	// 2. Storage
	db, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	groceryRepo := sqlite.NewGroceryRepo(db)
	otherRepo := sqlite.NewOtherRepo(db)

	// 3. Price prediction
	pricer := pricing.NewClient(pricingCfg.URL, 0)
	if !pricer.Configured() {
		logger.Info().Msg("price prediction endpoint not configured, using fallback pricing")
	}

	// 4. Text generation (optional)
	var generator assistant.TextGenerator
	if geminiCfg.Enabled() {
		generator = genai.NewGemini(genai.GeminiConfig{
			BaseURL: geminiCfg.BaseURL,
			APIKey:  geminiCfg.APIKey,
			Model:   geminiCfg.Model,
		})
		logger.Info().Str("model", geminiCfg.Model).Msg("gemini text generation enabled")
	} else {
		logger.Info().Msg("no gemini api key, assistant runs in local mode")
	}

	// 5. Assistant
	asst := assistant.New(assistant.NewStore(), generator)

	// 6. Transports
	transports, err := initTransports(ctx, appCfg, asst, groceryRepo, otherRepo, pricer)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	return sqlite.NewDB(ctx, cfg.GetDatabasePath())
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	asst *assistant.Assistant,
	groceryRepo *sqlite.GroceryRepo,
	otherRepo *sqlite.OtherRepo,
	pricer *pricing.Client,
) ([]srv.Service, error) {
	var services []srv.Service

	// HTTP API
	services = append(services, rest.NewServer(cfg.HTTPAddr, asst, groceryRepo, otherRepo, pricer))

	// Telegram Bot
	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, asst)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}

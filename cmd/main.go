package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acne-bot/config"
	telegram "acne-bot/internal/api"
	"acne-bot/internal/container"
	"acne-bot/internal/domain/placement"
	"acne-bot/internal/domain/zone"
	"acne-bot/internal/infrastructure/storage"
	"acne-bot/internal/infrastructure/vision"
	"acne-bot/internal/infrastructure/zonefile"
	"acne-bot/internal/logging"
)

func main() {
	cfg, cfgErr := config.Load()
	logger := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if cfgErr != nil {
		logger.WithError(cfgErr).Warn("config: invalid values replaced with defaults")
	}

	if cfg.TelegramToken == "" {
		logger.Fatal("TELEGRAM_TOKEN is required")
	}

	exclusions := zone.DefaultExclusionZones()
	if cfg.ExclusionZonesFile != "" {
		zones, err := zonefile.Load(cfg.ExclusionZonesFile)
		if err != nil {
			logger.WithError(err).Fatal("load exclusion zones")
		}
		exclusions = zones
		logger.WithField("zones", len(zones)).Info("custom exclusion zones loaded")
	}

	seed := cfg.PlacementSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	generator := placement.New(
		rand.New(rand.NewPCG(seed, seed>>1|1)),
		placement.WithExclusions(exclusions),
		placement.WithMaxAttempts(cfg.MaxAttempts),
		placement.WithLogger(logging.Component(logger, "placement")),
	)

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, generator, vision.NewRenderer(), logging.Component(logger, "assessment"))

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, logging.Component(logger, "bot"))
	if err != nil {
		logger.WithError(err).Fatal("failed to create bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("bot is running")
	if err := bot.Run(ctx); err != nil {
		logger.WithError(err).Fatal("bot error")
	}
	logger.Info("bot stopped")
}

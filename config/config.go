package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultMaxAttempts = 30

type Config struct {
	TelegramToken      string
	LogLevel           string
	LogFile            string
	ExclusionZonesFile string // YAML с собственным набором исключающих зон
	PlacementSeed      uint64 // 0 — сид от текущего времени
	MaxAttempts        int    // попыток на один элемент
}

// Load читает .env (если есть) и переменные окружения.
// При некорректных числах подставляются значения по умолчанию, ошибка возвращается вместе с конфигом.
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:      os.Getenv("TELEGRAM_TOKEN"),
		LogLevel:           envOr("LOG_LEVEL", "info"),
		LogFile:            os.Getenv("LOG_FILE"),
		ExclusionZonesFile: os.Getenv("EXCLUSION_ZONES_FILE"),
		MaxAttempts:        defaultMaxAttempts,
	}

	var errs []error
	if v := strings.TrimSpace(os.Getenv("PLACEMENT_SEED")); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("PLACEMENT_SEED: %w", err))
		} else {
			cfg.PlacementSeed = seed
		}
	}
	if v := strings.TrimSpace(os.Getenv("PLACEMENT_MAX_ATTEMPTS")); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("PLACEMENT_MAX_ATTEMPTS: %w", err))
		case n <= 0:
			errs = append(errs, fmt.Errorf("PLACEMENT_MAX_ATTEMPTS: must be positive, got %d", n))
		default:
			cfg.MaxAttempts = n
		}
	}

	return cfg, errors.Join(errs...)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"twentyone/internal/game"
)

type Config struct {
	Rules        game.Rules
	BotToken     string
	DatabasePath string
}

// Load reads .env if present and then the process environment. Unset
// variables keep the default rules.
func Load() (*Config, error) {
	godotenv.Load()

	rules := game.DefaultRules()

	var err error
	if rules.BustLimit, err = envInt("BUST_LIMIT", rules.BustLimit); err != nil {
		return nil, err
	}
	if rules.DealerStandsOn, err = envInt("DEALER_STANDS_ON", rules.DealerStandsOn); err != nil {
		return nil, err
	}
	if rules.GrandScore, err = envInt("GRAND_SCORE", rules.GrandScore); err != nil {
		return nil, err
	}
	if rules.CashPerPoint, err = envInt("CASH_PER_POINT", rules.CashPerPoint); err != nil {
		return nil, err
	}
	if rules.Pace, err = envDuration("PACE", rules.Pace); err != nil {
		return nil, err
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	return &Config{
		Rules:        rules,
		BotToken:     os.Getenv("BOT_TOKEN"),
		DatabasePath: ":memory:",
	}, nil
}

// LoadBot is Load plus a mandatory BOT_TOKEN.
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

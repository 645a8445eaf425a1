package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the service.
type Config struct {
	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string
	TelegramToken  string
	// RefreshInterval paces the mirror polling that stands in for backend
	// push.
	RefreshInterval time.Duration
	// AgendaHour is the local hour of the daily agenda delivery.
	AgendaHour int
}

// LoadConfig reads settings from .env and the environment.
func LoadConfig() (*Config, error) {
	// A missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseKey:     os.Getenv("SUPABASE_KEY"),
		SupabaseBucket:  os.Getenv("SUPABASE_BUCKET"),
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		RefreshInterval: parseSeconds(os.Getenv("REFRESH_INTERVAL_SECONDS"), 30*time.Second),
		AgendaHour:      parseHour(os.Getenv("AGENDA_HOUR"), 8),
	}

	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required")
	}
	if cfg.SupabaseBucket == "" {
		cfg.SupabaseBucket = "memos"
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}

func parseSeconds(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func parseHour(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	hour, err := strconv.Atoi(raw)
	if err != nil || hour < 0 || hour > 23 {
		return fallback
	}
	return hour
}

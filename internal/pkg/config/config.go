package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type (
	Admin struct {
		Username string
		Password string
	}

	App struct {
		SeedSampleData bool
		LogLevel       string
	}

	Config struct {
		Admin Admin
		App   App
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	seedSampleData, err := osGetBool("SEED_SAMPLE_DATA", true)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Admin: Admin{
			Username: osGetString("ADMIN_USERNAME", "admin"),
			Password: osGetString("ADMIN_PASSWORD", "admin123"),
		},
		App: App{
			SeedSampleData: seedSampleData,
			LogLevel:       osGetString("LOG_LEVEL", "info"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Admin.Username == "" {
		return errors.New("ADMIN_USERNAME must not be empty")
	}
	if cfg.Admin.Password == "" {
		return errors.New("ADMIN_PASSWORD must not be empty")
	}
	return nil
}

func osGetString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func osGetBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}

// Package config loads demo runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the demonstration driver.
type Config struct {
	// Days is the number of simulated days of consumption.
	Days int
	// Seed drives the simulation's random source. Zero means derive a
	// seed from the clock at startup.
	Seed int64
	// Format selects the report output format: text or json.
	Format string
}

// Load reads settings from the environment, optionally seeded from the
// given dotenv file. Unset variables fall back to defaults.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// A missing .env in the working directory is fine.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Days:   10,
		Seed:   0,
		Format: "text",
	}

	if v := os.Getenv("SUPPLYTRACK_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SUPPLYTRACK_DAYS %q: %w", v, err)
		}
		cfg.Days = days
	}
	if v := os.Getenv("SUPPLYTRACK_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SUPPLYTRACK_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("SUPPLYTRACK_FORMAT"); v != "" {
		cfg.Format = v
	}

	return cfg, nil
}

// Package config loads the function configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix for all settings.
const Prefix = "PRIME"

// Config holds the runtime settings.
type Config struct {
	Environment string `default:"dev"`

	Log    LogConfig
	Warmup WarmupConfig

	// FunctionName is set by the Lambda runtime and used for self-invocation.
	FunctionName string `envconfig:"AWS_LAMBDA_FUNCTION_NAME"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Debug  bool `default:"false"`
	Pretty bool `default:"false"`
}

// WarmupConfig controls warmup fan-out.
type WarmupConfig struct {
	Delay          time.Duration `default:"75ms"`
	MaxConcurrency int           `split_words:"true" default:"10"`
}

// Load reads an optional .env file and then processes the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if cfg.Warmup.MaxConcurrency < 1 {
		return nil, fmt.Errorf("warmup max concurrency must be at least 1, got %d", cfg.Warmup.MaxConcurrency)
	}
	return &cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

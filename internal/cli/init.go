// Package cli provides the foodlog command tree and its common
// initialization: .env loading, configuration, logging and backend wiring.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/joho/godotenv"

	"foodlog/internal/backend"
	"foodlog/internal/config"
	applog "foodlog/internal/log"
	"foodlog/internal/services"
)

// LoadEnvFile loads a .env file for local development. A missing file is
// not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadAndValidateConfig loads configuration from the environment, applies
// flag overrides and validates the result.
func LoadAndValidateConfig(opts *RootOptions) (*config.Config, error) {
	cfg := config.Load()
	if opts != nil {
		if opts.Port != "" {
			cfg.Port = opts.Port
		}
		if opts.Backend != "" {
			cfg.DataBackend = opts.Backend
		}
		if opts.Verbose {
			cfg.LogLevel = "debug"
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the application logger from cfg and makes it the
// slog default.
func SetupLogger(cfg *config.Config, out io.Writer) (*applog.Logger, error) {
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := applog.New(applog.Config{
		Level:     level,
		Format:    cfg.LogFormat,
		Component: applog.ComponentApp,
		Output:    out,
	})
	applog.SetDefault(logger)
	return logger, nil
}

// InitSession creates the configured backend and a fresh UI session over
// it. The returned cleanup releases the backend.
func InitSession(ctx context.Context, cfg *config.Config, logger *applog.Logger) (*services.Session, backend.CleanupFunc, error) {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	result, err := backend.NewFactory(logger).CreateBackend(ctx, bcfg)
	if err != nil {
		return nil, nil, err
	}
	svc := backend.NewService(result, bcfg, logger)
	return services.NewSession(svc), result.Cleanup, nil
}

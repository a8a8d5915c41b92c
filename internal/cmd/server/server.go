// Package server parses server command flags and composes the calculator
// HTTP transport.
package server

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/louisbranch/tnl-dmg-calc/internal/platform/cmd"
	app "github.com/louisbranch/tnl-dmg-calc/internal/services/calc/app"
)

// Config holds server command configuration.
type Config struct {
	HTTPAddr     string `env:"HTTP_ADDR"      envDefault:":8080"`
	BaseURL      string `env:"BASE_URL"`
	DBPath       string `env:"DB_PATH"        envDefault:"data/calc.db"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"262144"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "calculator HTTP listen address")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "public URL that share links point at")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "saved session database path; empty disables saved sessions")
	fs.Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", cfg.MaxBodyBytes, "maximum request body size")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the calculator until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		if dbPath := strings.TrimSpace(cfg.DBPath); dbPath != "" {
			if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
		}
		if err := app.Run(ctx, app.Config{
			HTTPAddr:     cfg.HTTPAddr,
			BaseURL:      cfg.BaseURL,
			DBPath:       cfg.DBPath,
			MaxBodyBytes: cfg.MaxBodyBytes,
		}); err != nil {
			return fmt.Errorf("serve calc: %w", err)
		}
		return nil
	})
}

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"
)

// config is read from the environment. Flags override it.
type config struct {
	LogLevel slog.Level `env:"YARDCORE_LOG_LEVEL" envDefault:"INFO"`
	Beta     float64    `env:"YARDCORE_BETA" envDefault:"0.15"`
	Tau      float64    `env:"YARDCORE_TAU" envDefault:"10"`
	NoColor  string     `env:"NO_COLOR"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor != "",
	}))
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"PORT"            envDefault:"8080"`
	LogLevel        string        `env:"LOGLEVEL"        envDefault:"info"`
	ProcessingDelay time.Duration `env:"PROCESSINGDELAY" envDefault:"2s"`
	SubmitRateLimit float64       `env:"SUBMITRATELIMIT" envDefault:"5"`
	SubmitBurst     int           `env:"SUBMITBURST"     envDefault:"10"`
	RefreshSeconds  int           `env:"REFRESHSECONDS"  envDefault:"1"`
	OTelEndpoint    string        `env:"OTELENDPOINT"`
	ServiceName     string        `env:"SERVICENAME"     envDefault:"fraud-simulator"`
}

// New reads an optional .env file, then the environment. Variables already set
// in the environment win over the file.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the environment only.
func Parse() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ProcessingDelay < 0 {
		return nil, fmt.Errorf("PROCESSINGDELAY must not be negative, got %s", cfg.ProcessingDelay)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles client-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to the transport and the
token store through their constructors.
*/
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the plus-group client.
type Config struct {

	// Runtime settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Remote service
	BaseURL        string        `env:"PLUS_BASE_URL"        envDefault:"http://localhost:8000/api/v2"`
	RequestTimeout time.Duration `env:"PLUS_REQUEST_TIMEOUT" envDefault:"10s"`
	UserAgent      string        `env:"PLUS_USER_AGENT"      envDefault:"plusgroup-client/0.1.0"`

	// DefaultQuery is merged into every outbound query string, e.g. "lang:zh,platform:h5".
	DefaultQuery map[string]string `env:"PLUS_DEFAULT_QUERY" envSeparator:"," envKeyValSeparator:":"`

	// Credentials. A static token wins over the Redis token store.
	AccessToken  string `env:"PLUS_ACCESS_TOKEN"`
	RedisURL     string `env:"REDIS_URL"`
	TokenAccount string `env:"PLUS_TOKEN_ACCOUNT" envDefault:"default"`

	// Outbound throttling. Zero RPS disables the limiter.
	RateLimitRPS   float64 `env:"PLUS_RATE_LIMIT_RPS"   envDefault:"0"`
	RateLimitBurst int     `env:"PLUS_RATE_LIMIT_BURST" envDefault:"1"`

	// Tracing
	TracingEnabled  bool    `env:"TRACING_ENABLED"  envDefault:"false"`
	TracingExporter string  `env:"TRACING_EXPORTER" envDefault:"stdout"`
	OTLPEndpoint    string  `env:"OTLP_ENDPOINT"    envDefault:"localhost:4318"`
	TracingSampler  float64 `env:"TRACING_SAMPLER"  envDefault:"1"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that env tags cannot express.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: PLUS_BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: PLUS_REQUEST_TIMEOUT must be positive")
	}

	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config: PLUS_RATE_LIMIT_RPS must not be negative")
	}

	return nil
}

// IsDevelopment reports whether the client is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

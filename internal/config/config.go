// Package config loads radpair settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every variable name, e.g. RADPAIR_LOG_LEVEL.
const Prefix = "radpair"

// Config holds the runtime settings of the radpair tool.
type Config struct {
	// Dictionary sources loaded on top of the built-in dictionaries
	DictDir string `envconfig:"DICT_DIR"`
	DictURL string `envconfig:"DICT_URL"`

	// DictStrict rejects loaded dictionaries with validation warnings
	DictStrict bool `envconfig:"DICT_STRICT" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Parser limits
	MaxDepth int `envconfig:"MAX_DEPTH" default:"32"`
	MaxLine  int `envconfig:"MAX_LINE" default:"8192"`

	// Pair list store
	RedisAddr    string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPass    string        `envconfig:"REDIS_PASS"`
	RedisDB      int           `envconfig:"REDIS_DB" default:"0"`
	RedisTimeout time.Duration `envconfig:"REDIS_TIMEOUT" default:"3s"`

	// Circuit breaker around the store
	BreakerFailures    uint32        `envconfig:"BREAKER_FAILURES" default:"5"`
	BreakerMaxRequests uint32        `envconfig:"BREAKER_MAX_REQUESTS" default:"1"`
	BreakerInterval    time.Duration `envconfig:"BREAKER_INTERVAL" default:"60s"`
	BreakerTimeout     time.Duration `envconfig:"BREAKER_TIMEOUT" default:"30s"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges that envconfig cannot express.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	if c.MaxLine <= 0 {
		return fmt.Errorf("max line length must be positive, got %d", c.MaxLine)
	}
	if c.RedisAddr == "" {
		return fmt.Errorf("redis address cannot be empty")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("redis db must not be negative, got %d", c.RedisDB)
	}
	if c.RedisTimeout <= 0 {
		return fmt.Errorf("redis timeout must be positive, got %s", c.RedisTimeout)
	}
	if c.BreakerFailures == 0 {
		return fmt.Errorf("breaker failure threshold must be positive")
	}
	if c.BreakerTimeout <= 0 {
		return fmt.Errorf("breaker timeout must be positive, got %s", c.BreakerTimeout)
	}
	return nil
}

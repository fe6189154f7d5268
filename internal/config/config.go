package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

const (
	// MaxDicePerType caps a single request's quantity for one die type
	MaxDicePerType = 50

	// LowPoolThreshold marks pools with fewer remaining numbers as low
	LowPoolThreshold = 10
)

// Config holds all runtime configuration, loaded from the environment
type Config struct {
	// RandomOrgAPIKey authenticates against the random.org JSON-RPC API
	RandomOrgAPIKey string `env:"RANDOM_ORG_API_KEY"`

	// RandomOrgURL is the JSON-RPC endpoint; empty uses the public endpoint
	RandomOrgURL string `env:"RANDOM_ORG_URL"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Port is the HTTP listen port
	Port int `env:"PORT" envDefault:"3001"`

	// CORSOrigin is the allowed frontend origin
	CORSOrigin string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"dicebag-dev-secret"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"168h"`

	// PublicPoolSize is the refill batch size for the shared public pools
	PublicPoolSize int `env:"PUBLIC_POOL_SIZE" envDefault:"100"`

	// UserPoolSize is the refill batch size for per-user pools
	UserPoolSize int `env:"USER_POOL_SIZE" envDefault:"50"`

	// PublicDailyLimit is the anonymous daily roll quota
	PublicDailyLimit int `env:"PUBLIC_DAILY_LIMIT" envDefault:"50"`

	// MaxDicePerRoll caps the total dice in one roll request
	MaxDicePerRoll int `env:"MAX_DICE_PER_ROLL" envDefault:"100"`

	// RollRateLimit caps roll requests per client IP per RollRateWindow
	RollRateLimit  int           `env:"ROLL_RATE_LIMIT" envDefault:"100"`
	RollRateWindow time.Duration `env:"ROLL_RATE_WINDOW" envDefault:"15m"`

	// StatusRateLimit caps pool status and stats reads per client IP
	// per StatusRateWindow
	StatusRateLimit  int           `env:"STATUS_RATE_LIMIT" envDefault:"50"`
	StatusRateWindow time.Duration `env:"STATUS_RATE_WINDOW" envDefault:"5m"`

	// UsageRetentionDays is how long usage records are kept
	UsageRetentionDays int `env:"USAGE_RETENTION_DAYS" envDefault:"7"`

	// CleanupInterval is how often old usage records are swept
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"24h"`
}

// Load parses configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and value ranges
func (c *Config) Validate() error {
	if c.RandomOrgAPIKey == "" {
		return fmt.Errorf("RANDOM_ORG_API_KEY is required")
	}

	// random.org issues API keys as UUIDs
	if _, err := uuid.Parse(c.RandomOrgAPIKey); err != nil {
		return fmt.Errorf("RANDOM_ORG_API_KEY must be a UUID: %w", err)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	if c.PublicPoolSize <= 0 || c.UserPoolSize <= 0 {
		return fmt.Errorf("pool sizes must be positive")
	}

	if c.PublicDailyLimit <= 0 {
		return fmt.Errorf("PUBLIC_DAILY_LIMIT must be positive")
	}

	if c.MaxDicePerRoll <= 0 {
		return fmt.Errorf("MAX_DICE_PER_ROLL must be positive")
	}

	if c.RollRateLimit <= 0 || c.StatusRateLimit <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}

	if c.UsageRetentionDays <= 0 {
		return fmt.Errorf("USAGE_RETENTION_DAYS must be positive")
	}

	return nil
}

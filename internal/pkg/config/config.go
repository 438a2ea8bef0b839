package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Data sources for client records.
const (
	SourceMemory = "memory"
	SourceMongo  = "mongo"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	DataSource string `env:"DATA_SOURCE, default=memory"`

	// RateLimit is requests per second allowed per client IP; 0 disables it.
	RateLimit float64 `env:"RATE_LIMIT, default=20"`

	Engine EngineConfig
	Feed   FeedConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type EngineConfig struct {
	FilterCacheSize int `env:"FILTER_CACHE_SIZE, default=100"`
}

type FeedConfig struct {
	Interval time.Duration `env:"FEED_INTERVAL, default=3s"`
	Workers  int           `env:"FEED_WORKERS,  default=4"`
	Buffer   int           `env:"FEED_BUFFER,   default=200"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=client_dashboard"`
}

type RedisConfig struct {
	Enabled bool          `env:"REDIS_ENABLED, default=false"`
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	KPITTL  time.Duration `env:"KPI_CACHE_TTL, default=1m"`
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.DataSource {
	case SourceMemory, SourceMongo:
	default:
		return fmt.Errorf("config: unknown DATA_SOURCE %q", c.DataSource)
	}
	if c.Engine.FilterCacheSize < 0 {
		return fmt.Errorf("config: FILTER_CACHE_SIZE must not be negative")
	}
	if c.Feed.Interval <= 0 {
		return fmt.Errorf("config: FEED_INTERVAL must be positive")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config: RATE_LIMIT must not be negative")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

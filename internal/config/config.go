package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Log     LogConfig     `mapstructure:"log"`
	Delays  DelayConfig   `mapstructure:"delays"`
	Listing ListingConfig `mapstructure:"listing"`
	Scrape  ScrapeConfig  `mapstructure:"scrape"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	Session SessionConfig `mapstructure:"session"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	AllowOrigins    []string      `mapstructure:"allow_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig selects the key-value backend holding persisted filter selections.
type StoreConfig struct {
	Driver         string `mapstructure:"driver"`
	DatabaseURL    string `mapstructure:"database_url"`
	SQLitePath     string `mapstructure:"sqlite_path"`
	ConnectRetries uint64 `mapstructure:"connect_retries"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DelayConfig holds the simulated latencies of each screen action.
type DelayConfig struct {
	ListingSearch    time.Duration `mapstructure:"listing_search"`
	Scrape           time.Duration `mapstructure:"scrape"`
	Enrich           time.Duration `mapstructure:"enrich"`
	EnrichmentSearch time.Duration `mapstructure:"enrichment_search"`
}

type ListingConfig struct {
	ItemsPerPage  int `mapstructure:"items_per_page"`
	CatalogTotal  int `mapstructure:"catalog_total"`
	FilteredTotal int `mapstructure:"filtered_total"`
}

type ScrapeConfig struct {
	SourceURL string `mapstructure:"source_url"`
	Retries   uint64 `mapstructure:"retries"`
}

type NotifyConfig struct {
	FeedLimit int `mapstructure:"feed_limit"`
}

// SessionConfig bounds the per-session state each service keeps in memory.
type SessionConfig struct {
	MaxSessions int           `mapstructure:"max_sessions"`
	IdleTTL     time.Duration `mapstructure:"idle_ttl"`
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.sqlite_path", "solarscope.db")
	v.SetDefault("store.connect_retries", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("delays.listing_search", "2800ms")
	v.SetDefault("delays.scrape", "2000ms")
	v.SetDefault("delays.enrich", "2000ms")
	v.SetDefault("delays.enrichment_search", "2000ms")
	v.SetDefault("listing.items_per_page", 10)
	v.SetDefault("listing.catalog_total", 24500)
	v.SetDefault("listing.filtered_total", 5600)
	v.SetDefault("scrape.retries", 3)
	v.SetDefault("notify.feed_limit", 50)
	v.SetDefault("session.max_sessions", 10000)
	v.SetDefault("session.idle_ttl", "30m")
}

// Load reads configuration from an optional config.yaml and SOLARSCOPE_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SOLARSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Driver == DriverPostgres && c.Store.DatabaseURL == "" {
		return fmt.Errorf("config: store.database_url is required for the postgres driver")
	}
	if c.Listing.ItemsPerPage <= 0 {
		return fmt.Errorf("config: listing.items_per_page must be positive")
	}
	if c.Session.MaxSessions <= 0 || c.Session.IdleTTL <= 0 {
		return fmt.Errorf("config: session.max_sessions and session.idle_ttl must be positive")
	}
	return nil
}

package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Gridmate
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Clients     ClientsConfig `toml:"clients"`
	Grid        GridConfig    `toml:"grid"`
	Sector      SectorConfig  `toml:"sector"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	ImageDir string `toml:"image_dir"` // chart image cache directory
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Quotes QuotesConfig `toml:"quotes"`
	Broker BrokerConfig `toml:"broker"`
}

// QuotesConfig holds price-history provider configuration
type QuotesConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *QuotesConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// BrokerConfig holds grid-trading backend configuration
type BrokerConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *BrokerConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GridConfig holds bound-calculation defaults. DefaultVolatility and
// FallbackPrice are the degraded-mode assumptions used when history is
// insufficient; they are deliberate product constants, surfaced here rather
// than hardcoded at use sites.
type GridConfig struct {
	Multiplier        float64 `toml:"multiplier"`         // volatility multiplier
	GridCount         int     `toml:"grid_count"`         // default grid levels
	LookbackDays      int     `toml:"lookback_days"`      // default history window
	DefaultVolatility float64 `toml:"default_volatility"` // fallback annualized volatility
	FallbackPrice     float64 `toml:"fallback_price"`     // last-resort current price
}

// SectorConfig holds classification thresholds, recommendation caps, and
// data-quality tiers. All values are product-chosen constants.
type SectorConfig struct {
	StrongGrowthPct     float64 `toml:"strong_growth_pct"`     // both figures must exceed this
	WeakRevenuePct      float64 `toml:"weak_revenue_pct"`      // revenue below this is weak
	WeakProfitPct       float64 `toml:"weak_profit_pct"`       // profit below this is weak
	BuyCap              int     `toml:"buy_cap"`               // max buy suggestions
	AvoidCap            int     `toml:"avoid_cap"`             // max avoid entries
	HighSectorCount     int     `toml:"high_sector_count"`     // quality "high" needs more sectors than this
	HighLineCount       int     `toml:"high_line_count"`       // ...and more lines than this
	ModerateSectorCount int     `toml:"moderate_sector_count"` // quality "moderate" floor
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a config populated with all defaults.
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:     "0.0.0.0",
			Port:     4242,
			ImageDir: "images",
		},
		Clients: ClientsConfig{
			Quotes: QuotesConfig{
				RateLimit: 5,
				Timeout:   "30s",
			},
			Broker: BrokerConfig{
				RateLimit: 5,
				Timeout:   "30s",
			},
		},
		Grid: GridConfig{
			Multiplier:        2.0,
			GridCount:         10,
			LookbackDays:      60,
			DefaultVolatility: 0.20,
			FallbackPrice:     1.0,
		},
		Sector: SectorConfig{
			StrongGrowthPct:     5,
			WeakRevenuePct:      0,
			WeakProfitPct:       -5,
			BuyCap:              6,
			AvoidCap:            5,
			HighSectorCount:     20,
			HighLineCount:       30,
			ModerateSectorCount: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a TOML config file, applies defaults for missing values,
// then applies environment overrides. A missing file is not an error: the
// defaults plus environment are used.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies GRIDMATE_* environment variables over file values.
// Secrets are expected to arrive this way in deployed environments.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GRIDMATE_QUOTES_BASE_URL"); v != "" {
		cfg.Clients.Quotes.BaseURL = v
	}
	if v := os.Getenv("GRIDMATE_QUOTES_API_KEY"); v != "" {
		cfg.Clients.Quotes.APIKey = v
	}
	if v := os.Getenv("GRIDMATE_BROKER_BASE_URL"); v != "" {
		cfg.Clients.Broker.BaseURL = v
	}
	if v := os.Getenv("GRIDMATE_BROKER_API_KEY"); v != "" {
		cfg.Clients.Broker.APIKey = v
	}
	if v := os.Getenv("GRIDMATE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GRIDMATE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks config invariants that would otherwise surface as
// confusing runtime behavior.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Grid.Multiplier <= 0 {
		return fmt.Errorf("grid multiplier must be positive, got %v", c.Grid.Multiplier)
	}
	if c.Grid.GridCount < 2 {
		return fmt.Errorf("grid count must be at least 2, got %d", c.Grid.GridCount)
	}
	if c.Grid.DefaultVolatility <= 0 {
		return fmt.Errorf("default volatility must be positive, got %v", c.Grid.DefaultVolatility)
	}
	if c.Sector.BuyCap <= 0 || c.Sector.AvoidCap <= 0 {
		return fmt.Errorf("recommendation caps must be positive")
	}
	return nil
}

// Package config loads the application configuration from a YAML file with
// environment-variable overrides for deployment secrets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"foodcost/internal/analytics"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`

	Database struct {
		// Dialect is "sqlite3" or "postgres".
		Dialect string `yaml:"dialect"`
		DSN     string `yaml:"dsn"`
	} `yaml:"database"`

	Auth struct {
		Enabled bool   `yaml:"enabled"`
		Secret  string `yaml:"secret"`
	} `yaml:"auth"`

	// Quiet periods for the debounced handlers, in milliseconds.
	Autosave struct {
		DraftDelayMS       int `yaml:"draft_delay_ms"`
		PricingDelayMS     int `yaml:"pricing_delay_ms"`
		CompetitiveDelayMS int `yaml:"competitive_delay_ms"`
	} `yaml:"autosave"`

	Forecast struct {
		DailySales     float64 `yaml:"daily_sales"`
		SeasonalFactor float64 `yaml:"seasonal_factor"`
		BaseRevenue    float64 `yaml:"base_revenue"`
	} `yaml:"forecast"`

	Pricing struct {
		Tiers []analytics.PriceTier `yaml:"tiers"`
	} `yaml:"pricing"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Database.Dialect = "sqlite3"
	cfg.Database.DSN = "foodcost.db"
	cfg.Autosave.DraftDelayMS = 1000
	cfg.Autosave.PricingDelayMS = 300
	cfg.Autosave.CompetitiveDelayMS = 500
	cfg.Forecast.DailySales = analytics.DefaultDailySales
	cfg.Forecast.SeasonalFactor = analytics.DefaultSeasonalFactor
	cfg.Forecast.BaseRevenue = analytics.DefaultBaseRevenue
	cfg.Pricing.Tiers = analytics.DefaultPriceTiers()
	return cfg
}

// Load reads the configuration file at path, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)

	if len(cfg.Pricing.Tiers) == 0 {
		cfg.Pricing.Tiers = analytics.DefaultPriceTiers()
	}
	return cfg, nil
}

// applyEnv overrides file values from the environment. Only deployment
// concerns are overridable; tuning stays in the file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("FOODCOST_DB_DIALECT"); v != "" {
		cfg.Database.Dialect = v
	}
	if v := os.Getenv("FOODCOST_DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("FOODCOST_AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
		cfg.Auth.Enabled = true
	}
}

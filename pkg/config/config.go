package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/tariffcalc/tariffcalc/pkg/models"
)

// Environment variables that override file and default settings.
const (
	EnvVATMultiplier = "TARIFFCALC_VAT_MULTIPLIER"
	EnvPricesDB      = "TARIFFCALC_PRICES_DB"
	EnvLogLevel      = "TARIFFCALC_LOG_LEVEL"
)

// Config holds all tariffcalc configuration.
type Config struct {
	VATMultiplier float64             `yaml:"vat_multiplier"`
	LogLevel      string              `yaml:"log_level"`
	PricesDB      string              `yaml:"prices_db"`
	Tariffs       []models.TariffRate `yaml:"tariffs"`
}

// Default returns a Config carrying the built-in price table.
func Default() *Config {
	return &Config{
		VATMultiplier: 1.05,
		LogLevel:      "info",
		Tariffs:       defaultTariffs(),
	}
}

func defaultTariffs() []models.TariffRate {
	return []models.TariffRate{
		{
			Name:                  "better-energy",
			Rates:                 models.Rates{Power: models.Float(0.1367), Gas: models.Float(0.0288)},
			MonthlyStandingCharge: 8.33,
		},
		{
			Name:                  "2yr-fixed",
			Rates:                 models.Rates{Power: models.Float(0.1397), Gas: models.Float(0.0296)},
			MonthlyStandingCharge: 8.75,
		},
		{
			Name:                  "greener-energy",
			Rates:                 models.Rates{Power: models.Float(0.1544)},
			MonthlyStandingCharge: 8.33,
		},
		{
			Name:                  "simpler-energy",
			Rates:                 models.Rates{Power: models.Float(0.1396), Gas: models.Float(0.0328)},
			MonthlyStandingCharge: 8.75,
		},
	}
}

// Load reads a YAML config file and expands environment variables.
// A file that lists tariffs replaces the built-in table.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	cfg.Tariffs = nil
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Tariffs == nil {
		cfg.Tariffs = defaultTariffs()
	}

	return cfg, nil
}

// ApplyEnv overlays settings from the environment, reading a .env file in
// the working directory first if one exists.
func ApplyEnv(cfg *Config) error {
	_ = godotenv.Load(".env")

	if v := os.Getenv(EnvVATMultiplier); v != "" {
		vat, err := cast.ToFloat64E(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVATMultiplier, err)
		}
		cfg.VATMultiplier = vat
	}
	if v := os.Getenv(EnvPricesDB); v != "" {
		cfg.PricesDB = cast.ToString(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = cast.ToString(v)
	}
	return nil
}

// Validate checks settings that the price list cannot check itself.
func (c *Config) Validate() error {
	if c.VATMultiplier <= 0 {
		return fmt.Errorf("vat_multiplier must be positive, got %v", c.VATMultiplier)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

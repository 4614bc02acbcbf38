// Package config provides configuration management for the pricing CLI.
// The engine itself never reads config; every pricing call takes its
// parameters explicitly. Config only covers collaborator-facing knobs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	apperrors "fx-pricer/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Market  MarketConfig  `mapstructure:"market"`
	Sweep   SweepConfig   `mapstructure:"sweep"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MarketConfig holds default market parameters for CLI calls that omit
// the corresponding flags.
type MarketConfig struct {
	DomesticRate float64 `mapstructure:"domestic_rate"`
	ForeignRate  float64 `mapstructure:"foreign_rate"`
	Volatility   float64 `mapstructure:"volatility"`
}

// SweepConfig holds spot-sweep defaults.
type SweepConfig struct {
	Points  int `mapstructure:"points"`
	Workers int `mapstructure:"workers"`
}

// OutputConfig holds output formatting configuration.
type OutputConfig struct {
	Precision    int  `mapstructure:"precision"`
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Console  bool   `mapstructure:"console"`
	File     bool   `mapstructure:"file"`
	FilePath string `mapstructure:"file_path"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/fx-pricer"
	}
	return filepath.Join(home, ".config", "fx-pricer")
}

// Load loads configuration from the specified directory. If configDir is
// empty, uses the default config directory. A missing config file yields
// the defaults rather than an error.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("market.domestic_rate", 0.0)
	v.SetDefault("market.foreign_rate", 0.0)
	v.SetDefault("market.volatility", 0.10)

	v.SetDefault("sweep.points", 101)
	v.SetDefault("sweep.workers", 0)

	v.SetDefault("output.precision", 4)
	v.SetDefault("output.color_enabled", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", false)
	v.SetDefault("logging.file_path", filepath.Join(configDir, "logs", "fx-pricer.log"))
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FXPRICER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FXPRICER_PRECISION"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Output.Precision = p
		}
	}
	if v := os.Getenv("FXPRICER_SWEEP_POINTS"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Sweep.Points = p
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Market.Volatility < 0 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "market.volatility must be non-negative")
	}
	if c.Sweep.Points < 2 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "sweep.points must be at least 2")
	}
	if c.Sweep.Workers < 0 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "sweep.workers must be non-negative")
	}
	if c.Output.Precision < 0 || c.Output.Precision > 12 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "output.precision must be between 0 and 12")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "invalid logging level: %s", c.Logging.Level)
	}
	return nil
}

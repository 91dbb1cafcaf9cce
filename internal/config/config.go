// Package config resolves runtime settings for the percolate CLI.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// EnvPrefix is prepended to every environment variable, e.g. PERCOLATE_TRIALS.
const EnvPrefix = "PERCOLATE"

// Config holds the Monte Carlo run settings.
// Values are populated from .percolate.{yaml,toml,json}, PERCOLATE_* env vars, and CLI flags.
type Config struct {
	N          int     `mapstructure:"n"`
	Trials     int     `mapstructure:"trials"`
	Seed       int64   `mapstructure:"seed"`
	Workers    int     `mapstructure:"workers"`
	Confidence float64 `mapstructure:"confidence"`
	Format     string  `mapstructure:"format"`
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("n", 200)
	v.SetDefault("trials", 100)
	v.SetDefault("seed", 0)
	v.SetDefault("workers", 1)
	v.SetDefault("confidence", 0.95)
	v.SetDefault("format", "text")
}

// Load reads configuration from the global viper instance, applying
// built-in defaults for any values not set by config file, environment, or flags.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load against an explicit viper instance.
func LoadFrom(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges; it does not check Format, which the renderer owns.
func (c Config) Validate() error {
	switch {
	case c.N <= 0:
		return fmt.Errorf("%w: n must be greater than 0, got %d", ErrInvalidConfig, c.N)
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials must be greater than 0, got %d", ErrInvalidConfig, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	case !(c.Confidence > 0 && c.Confidence < 1):
		return fmt.Errorf("%w: confidence must be in (0, 1), got %v", ErrInvalidConfig, c.Confidence)
	}
	return nil
}

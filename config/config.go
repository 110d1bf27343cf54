// Package config provides Viper-based configuration loading for the wheel.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/spinwheel/constants"
)

// SpinConfig holds the spin session parameters.
type SpinConfig struct {
	// Duration is the total spin time from trigger to rest.
	Duration time.Duration `mapstructure:"duration"`
	// IdleStep is the drift applied per frame while idle, in degrees.
	IdleStep float64 `mapstructure:"idle_step"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

// SoundConfig holds audio output settings.
type SoundConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// EntriesConfig holds the entry list source settings.
type EntriesConfig struct {
	// Path is the YAML entries file; empty starts with an empty wheel.
	Path string `mapstructure:"path"`
	// Watch reloads the file on change while the wheel is idle.
	Watch bool `mapstructure:"watch"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Path is the log file; empty disables logging entirely.
	Path string `mapstructure:"path"`
}

// Config is the top-level application configuration.
type Config struct {
	Spin    SpinConfig    `mapstructure:"spin"`
	Sound   SoundConfig   `mapstructure:"sound"`
	Entries EntriesConfig `mapstructure:"entries"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants and reports every
// violation in one error.
func (c Config) Validate() error {
	var errs []string

	if err := validateSpin(c.Spin); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateEntries(c.Entries); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSpin(s SpinConfig) error {
	var errs []string
	if s.Duration < constants.MinSpinDuration || s.Duration > constants.MaxSpinDuration {
		errs = append(errs, fmt.Sprintf("spin.duration must be between %s and %s, got %s",
			constants.MinSpinDuration, constants.MaxSpinDuration, s.Duration))
	}
	if s.IdleStep < 0 || s.IdleStep >= 360 {
		errs = append(errs, fmt.Sprintf("spin.idle_step must be in [0, 360), got %g", s.IdleStep))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateEntries(e EntriesConfig) error {
	if e.Watch && e.Path == "" {
		return fmt.Errorf("entries.watch requires entries.path")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	return nil
}

// Load reads configuration from the given file path, applies
// environment variable overrides, and validates the result. An empty
// path skips the file and uses defaults plus environment only.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with SPINWHEEL_ prefix
	v.SetEnvPrefix("SPINWHEEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("spin.duration", constants.DefaultSpinDuration)
	v.SetDefault("spin.idle_step", constants.DefaultIdleStep)
	v.SetDefault("spin.seed", 0)

	v.SetDefault("sound.enabled", true)

	v.SetDefault("entries.path", "")
	v.SetDefault("entries.watch", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "")
}

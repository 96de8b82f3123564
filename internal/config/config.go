// Package config loads studyboard settings from flags, STUDYBOARD_* environment
// variables and an optional studyboard.yaml file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading environment variables,
// e.g. STUDYBOARD_LOG_FILE.
const EnvPrefix = "STUDYBOARD"

// Config holds all runtime settings.
type Config struct {
	Env         string   `mapstructure:"env"`
	LogFile     string   `mapstructure:"log_file"`
	LogLevel    string   `mapstructure:"log_level"`
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	RatePerMin  int      `mapstructure:"rate_per_min"`
	RateBurst   int      `mapstructure:"rate_burst"`
	Mouse       bool     `mapstructure:"mouse"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Env:        "development",
		LogLevel:   "info",
		Addr:       "127.0.0.1:8080",
		RatePerMin: 120,
		RateBurst:  20,
		Mouse:      true,
	}
}

// NewViper returns a viper instance wired for studyboard: defaults, env
// prefix and config file search paths. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("env", d.Env)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("addr", d.Addr)
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("rate_per_min", d.RatePerMin)
	v.SetDefault("rate_burst", d.RateBurst)
	v.SetDefault("mouse", d.Mouse)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("studyboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.studyboard")
	return v
}

// Load reads the optional config file and decodes all settings.
// A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.CORSOrigins = splitOrigins(cfg.CORSOrigins)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if c.RatePerMin <= 0 {
		return fmt.Errorf("rate_per_min must be positive, got %d", c.RatePerMin)
	}
	if c.RateBurst <= 0 {
		return fmt.Errorf("rate_burst must be positive, got %d", c.RateBurst)
	}
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	return nil
}

// IsProduction reports whether the production environment is selected.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// splitOrigins flattens comma-separated entries and drops blanks.
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}

// Package config loads the run configuration. Every knob has a default, so a
// run with no config file and no environment produces the standard dataset
// in ./sample_data.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const configFilePath = "fixturegen.yaml"

// Config represents the application's configuration structure.
type Config struct {
	OutputDir   string `mapstructure:"output-dir"`
	Seed        int64  `mapstructure:"seed"`
	Customers   int    `mapstructure:"customers"`
	Orders      int    `mapstructure:"orders"`
	CatalogFile string `mapstructure:"catalog-file"`
	LogLevel    string `mapstructure:"log-level"`
}

var defaults = map[string]any{
	"output-dir":   "./sample_data",
	"seed":         int64(0),
	"customers":    24,
	"orders":       29,
	"catalog-file": "",
	"log-level":    "INFO",
}

// Load reads configuration from an optional fixturegen.yaml in the working
// directory and from environment variables. Environment variables take
// precedence over the config file; an absent file falls back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for key, value := range defaults {
		v.SetDefault(key, value)
		v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if config.Customers < 1 {
		return nil, fmt.Errorf("customers must be positive, got %d", config.Customers)
	}
	if config.Orders < 1 {
		return nil, fmt.Errorf("orders must be positive, got %d", config.Orders)
	}

	return &config, nil
}

// Package config provides configuration utilities for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/yang-jeongman/snapmobile/internal/engine"
	"github.com/yang-jeongman/snapmobile/internal/layout"
	"github.com/yang-jeongman/snapmobile/internal/mobile"
)

// Config aggregates every pipeline stage's configuration plus the
// application-level settings. Stage defaults are the tuned values; a config
// file or SNAPMOBILE_ environment variables override them section by
// section.
type Config struct {
	Engine    engine.Config     `mapstructure:"engine"`
	Layout    layout.Config     `mapstructure:"layout"`
	Cards     layout.CardConfig `mapstructure:"cards"`
	Mobile    mobile.Config     `mapstructure:"mobile"`
	DBPath    string            `mapstructure:"db_path"`
	LogLevel  string            `mapstructure:"log_level"`
	LogFormat string            `mapstructure:"log_format"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Engine:    engine.DefaultConfig(),
		Layout:    layout.DefaultConfig(),
		Cards:     layout.DefaultCardConfig(),
		Mobile:    mobile.DefaultConfig(),
		DBPath:    "~/.snapmobile/snapmobile.db",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds the effective configuration: defaults overlaid with whatever
// Viper has read from the config file and environment. Every section is
// validated before the config is returned.
func Load() (Config, error) {
	cfg := Default()

	sections := map[string]any{
		"engine": &cfg.Engine,
		"layout": &cfg.Layout,
		"cards":  &cfg.Cards,
		"mobile": &cfg.Mobile,
	}
	for key, target := range sections {
		if !viper.IsSet(key) {
			continue
		}
		if err := viper.UnmarshalKey(key, target); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s config: %w", key, err)
		}
	}

	if v := viper.GetString("db_path"); v != "" {
		cfg.DBPath = v
	}
	if v := viper.GetString("log_level"); v != "" {
		cfg.LogLevel = v
	}
	if v := viper.GetString("log_format"); v != "" {
		cfg.LogFormat = v
	}
	cfg.DBPath = ExpandPath(cfg.DBPath)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every stage section so that misconfiguration surfaces at
// startup rather than mid-conversion.
func (c Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if err := c.Cards.Validate(); err != nil {
		return err
	}
	return c.Mobile.Validate()
}

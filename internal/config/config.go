package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Alerts  AlertsConfig  `yaml:"alerts"`
}

// DisplayConfig controls how amounts are rendered.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// AlertsConfig controls the due-soon windows for payables and goals.
type AlertsConfig struct {
	DueSoonDays int `yaml:"due_soon_days"`
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			CurrencySymbol: "$",
		},
		Alerts: AlertsConfig{
			DueSoonDays: 7,
		},
	}
}

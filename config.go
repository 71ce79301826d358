package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds file-based defaults for the CLI options. Flags set
// explicitly on the command line override it.
type Config struct {
	Distance string `yaml:"distance"` // "auto", "oneway" or "twoway"
	CSV      string `yaml:"csv"`      // event table CSV path
	Plot     string `yaml:"plot"`     // trace PNG path
	Chart    string `yaml:"chart"`    // trace HTML path
	GUI      bool   `yaml:"gui"`      // open the interactive viewer
	Rows     int    `yaml:"rows"`     // event rows to print
}

func DefaultConfig() Config {
	return Config{Distance: ModeAuto, Rows: 10}
}

// LoadConfig reads a YAML config file and backfills defaults for anything
// left unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Distance == "" {
		cfg.Distance = ModeAuto
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 10
	}
	return &cfg, nil
}

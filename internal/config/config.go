// Package config loads tool configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PilotConfig identifies the pilot on generated forms.
type PilotConfig struct {
	Name    string `yaml:"name"`
	License string `yaml:"license"`
}

// PathsConfig points at the auxiliary data files.
type PathsConfig struct {
	// Database is the SQLite file holding stored runs.
	Database string `yaml:"database"`

	// Airports is an optional YAML overlay of extra airport coordinates.
	Airports string `yaml:"airports"`

	// Columns is an optional explicit column mapping file.
	Columns string `yaml:"columns"`
}

// ServerConfig configures the review API.
type ServerConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

// Config is the full tool configuration.
type Config struct {
	Pilot  PilotConfig  `yaml:"pilot"`
	Paths  PathsConfig  `yaml:"paths"`
	Server ServerConfig `yaml:"server"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Paths:  PathsConfig{Database: "runs.db"},
		Server: ServerConfig{Port: 8080},
	}
}

// Load reads the YAML config at path, then applies environment overrides.
// A missing file yields the defaults; a missing .env is ignored.
func Load(path string) (*Config, error) {
	// .env is optional and only fills variables not already set.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("LOGBOOK_DB"); v != "" {
		cfg.Paths.Database = v
	}
	if v := os.Getenv("LOGBOOK_AIRPORTS"); v != "" {
		cfg.Paths.Airports = v
	}
	if v := os.Getenv("LOGBOOK_API_KEY"); v != "" {
		cfg.Server.APIKey = v
	}

	return cfg, nil
}

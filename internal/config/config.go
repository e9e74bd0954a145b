package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/todo/internal/config/colors"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database" envPrefix:"TODO_DB_"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	// Path to the database file; empty means ~/.todo/todos.db
	Path string `yaml:"path" env:"PATH"`
	// Driver is "sqlite" (pure Go) or "sqlite3" (cgo)
	Driver string `yaml:"driver" env:"DRIVER"`
}

// fileEnv names the config file through the environment
type fileEnv struct {
	ConfigFile string `env:"TODO_CONFIG_FILE"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
	}
	return cfg
}

// Load reads config from path, or from the user's config directory when
// path is empty. A missing file yields the default config. Environment
// variables (TODO_DB_PATH, TODO_DB_DRIVER) override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		var fe fileEnv
		if err := env.Parse(&fe); err != nil {
			return nil, fmt.Errorf("parse env: %w", err)
		}
		path = fe.ConfigFile
	}
	if path == "" {
		// A missing config path is not fatal; defaults still apply
		path, _ = getConfigPath()
	}

	config := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// use defaults
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			config = &Config{}
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todo", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// Package config loads linkdeck configuration from an optional TOML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file loaded when no --config flag is given.
const DefaultPath = "linkdeck.toml"

type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `toml:"addr"`
	// DBPath is the SQLite database file.
	DBPath string `toml:"db_path"`
	// Title is shown as the dashboard page title.
	Title string `toml:"title"`
}

func Default() Config {
	return Config{
		Addr:   ":8080",
		DBPath: "links.db",
		Title:  "Linkdeck",
	}
}

// Load reads the TOML file at path over the defaults, then applies env
// overrides. A missing file at the default path is not an error; a missing
// file at an explicitly requested path is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
		// Defaults only.
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LINKDECK_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("LINKDECK_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("LINKDECK_TITLE"); v != "" {
		c.Title = v
	}
}

// IsDev reports whether dev mode is enabled via LINKDECK_DEV=1. Dev mode
// disables stylesheet caching so edits show up on reload.
func IsDev() bool {
	return os.Getenv("LINKDECK_DEV") == "1"
}

// Package config loads configuration for the netgraphctl CLI.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration for netgraphctl.
// Precedence: environment variables > config file > defaults.
type Config struct {
	Net ServerNetConfig `toml:"net"`
	Log LogConfig       `toml:"log"`
}

// ServerNetConfig holds the defaults used when netgraphctl bootstraps a
// fresh Net (see netcore.NewNet).
type ServerNetConfig struct {
	DefaultStatusName  string `toml:"default_status_name"`
	AcceptedStatusName string `toml:"accepted_status_name"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Load creates a Config by reading from a TOML config file and environment
// variables. Precedence: environment variables > config file > defaults.
//
// Config file search order (first found wins):
//  1. Path passed via configPath parameter (from --config flag)
//  2. NETGRAPHCTL_CONFIG environment variable
//  3. ./netgraphctl.toml (current directory)
//  4. ~/.config/netgraphctl/netgraphctl.toml (XDG-style)
//
// All fields are optional in the config file. Environment variables always
// override file values.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Net: ServerNetConfig{
			DefaultStatusName:  "default",
			AcceptedStatusName: "accepted",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if err := cfg.loadFile(configPath); err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile finds and parses the TOML config file. If no file is found,
// this is a no-op (config file is optional).
func (c *Config) loadFile(configPath string) error {
	path := resolveConfigPath(configPath)
	if path == "" {
		return nil // no config file found; rely on defaults + env
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	return nil
}

// resolveConfigPath determines which config file to use. Returns empty
// string if no config file is found (config file is optional).
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit // caller wants this file; let DecodeFile report if missing
	}

	if p := os.Getenv("NETGRAPHCTL_CONFIG"); p != "" {
		return p
	}

	if _, err := os.Stat("netgraphctl.toml"); err == nil {
		return "netgraphctl.toml"
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := home + "/.config/netgraphctl/netgraphctl.toml"
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnv overlays environment variables on top of existing config
// values. An env var only takes effect if it is non-empty.
func (c *Config) applyEnv() {
	envOverride("NETGRAPHCTL_DEFAULT_STATUS_NAME", &c.Net.DefaultStatusName)
	envOverride("NETGRAPHCTL_ACCEPTED_STATUS_NAME", &c.Net.AcceptedStatusName)
	envOverride("NETGRAPHCTL_LOG_LEVEL", &c.Log.Level)
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.Net.DefaultStatusName == "" {
		return fmt.Errorf("net.default_status_name must not be empty")
	}
	if c.Net.AcceptedStatusName == "" {
		return fmt.Errorf("net.accepted_status_name must not be empty")
	}
	if c.Net.DefaultStatusName == c.Net.AcceptedStatusName {
		return fmt.Errorf("net.default_status_name and net.accepted_status_name must differ")
	}
	return nil
}

// envOverride sets *dst to the value of the named env var, if it is
// non-empty.
func envOverride(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

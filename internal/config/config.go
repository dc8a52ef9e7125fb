// Package config persists and resolves the generation-service settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order, highest priority first:
//
//  1. CLI flags (--url, --model)
//  2. Environment variables (EO_URL, EO_MODEL)
//  3. YAML config file ($XDG_CONFIG_HOME/eo/config.yaml)
//  4. Built-in defaults
//
// Core packages never read configuration themselves; the resolved
// value is passed down explicitly.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Built-in defaults.
const (
	// DefaultURL is the standard local Ollama endpoint.
	DefaultURL = "http://localhost:11434"

	// DefaultModel is the last-resort model when the service reports
	// none installed and nothing is configured.
	DefaultModel = "llama3:8b-instruct-q4_0"

	// EnvConfigDir overrides the config directory when set.
	EnvConfigDir = "EO_CONFIG_DIR"
)

// Config is the state persisted in config.yaml. An empty field means
// "not configured".
type Config struct {
	URL   string `yaml:"url,omitempty"`
	Model string `yaml:"model,omitempty"`
}

// Path returns the config file location, honoring EO_CONFIG_DIR over
// the XDG config home.
func Path() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	return filepath.Join(xdg.ConfigHome, "eo", "config.yaml")
}

// Load reads the config file at path. A missing file yields the zero
// Config, not an error.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Resolve applies the precedence order. URL always resolves to
// something usable; Model stays empty when nothing configured it, so
// the caller can prefer what the service reports installed. env is an
// environment lookup (os.Getenv outside tests).
func Resolve(flagURL, flagModel string, env func(string) string, file Config) Config {
	eff := Config{URL: DefaultURL}
	if file.URL != "" {
		eff.URL = file.URL
	}
	if file.Model != "" {
		eff.Model = file.Model
	}
	if v := env("EO_URL"); v != "" {
		eff.URL = v
	}
	if v := env("EO_MODEL"); v != "" {
		eff.Model = v
	}
	if flagURL != "" {
		eff.URL = flagURL
	}
	if flagModel != "" {
		eff.Model = flagModel
	}
	return eff
}

// EnvBool reads a boolean from environment variables, trying keys in
// order. The first set key wins: parseable values ("1", "true", "0")
// decide it, anything else counts as present and reports true.
func EnvBool(env func(string) string, keys ...string) bool {
	for _, key := range keys {
		if val := env(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return b
			}
			return true
		}
	}
	return false
}

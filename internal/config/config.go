/*
Package config loads toolmatch application configuration.

Configuration is merged from three layers, lowest priority first: struct
defaults, an optional YAML config file, and TOOLMATCH_-prefixed environment
variables (TOOLMATCH_CACHE__BACKEND maps to cache.backend).
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/khanglvm/toolmatch/internal/scoring"
)

// EnvPrefix is the prefix for configuration environment variables.
const EnvPrefix = "TOOLMATCH_"

// DefaultConfigPaths lists where the config file is searched, in order.
var DefaultConfigPaths = []string{
	"toolmatch.yaml",
	"toolmatch.yml",
}

// Config is the root application configuration.
type Config struct {
	// Database configures the SQLite catalog store.
	Database DatabaseConfig `koanf:"database"`

	// Cache configures the recommendation cache backend.
	Cache CacheConfig `koanf:"cache"`

	// Log configures structured logging.
	Log LogConfig `koanf:"log"`

	// Scoring configures the scoring weight tables.
	Scoring ScoringConfig `koanf:"scoring"`
}

// DatabaseConfig configures the catalog database.
type DatabaseConfig struct {
	// Path is the SQLite database file path.
	Path string `koanf:"path" validate:"required"`
}

// CacheConfig configures the cache store.
type CacheConfig struct {
	// Backend selects the cache implementation.
	Backend string `koanf:"backend" validate:"oneof=memory badger"`

	// Dir is the BadgerDB directory (badger backend only).
	Dir string `koanf:"dir"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level" validate:"oneof=debug info warn error"`

	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`
}

// ScoringConfig points at optional scoring-table overrides.
type ScoringConfig struct {
	// TablesPath is a YAML file replacing the built-in weight tables.
	// Empty means the compiled-in defaults.
	TablesPath string `koanf:"tables_path"`
}

// Default returns the configuration defaults. The database and cache live
// under ~/.toolmatch by default.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".toolmatch")

	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(base, "catalog.db")},
		Cache:    CacheConfig{Backend: "memory", Dir: filepath.Join(base, "cache")},
		Log:      LogConfig{Level: "info", Format: "json"},
	}
}

var validate = validator.New()

// Load builds the configuration from defaults, an optional config file and
// environment variables. An empty path searches DefaultConfigPaths.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// envToKey maps TOOLMATCH_CACHE__BACKEND to cache.backend.
func envToKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// findConfigFile returns the first existing default config path.
func findConfigFile() string {
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadScoringTables returns the scoring weight tables: the compiled-in
// defaults, or the full replacement from path when set.
func LoadScoringTables(path string) (*scoring.Config, error) {
	if path == "" {
		return scoring.DefaultConfig(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load scoring tables %s: %w", path, err)
	}

	var tables scoring.Config
	if err := k.Unmarshal("", &tables); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoring tables: %w", err)
	}

	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return &tables, nil
}

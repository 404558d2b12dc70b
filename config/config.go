// Package config loads travelbuddy settings from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	kenv "github.com/knadh/koanf/providers/env"
	kfile "github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults applied when the file and environment leave a field unset.
const (
	DefaultModel          = "gemini-1.5-flash-002"
	DefaultTimeoutSeconds = 10
	DefaultHistoryDB      = ".travelbuddy/history.db"
)

// Config is the root configuration.
type Config struct {
	Model          string         `koanf:"model"`
	Instruction    string         `koanf:"instruction"`
	APIKey         string         `koanf:"api_key"`
	TimeoutSeconds int            `koanf:"timeout_seconds"`
	HistoryDB      string         `koanf:"history_db"`
	Geocoder       GeocoderConfig `koanf:"geocoder"`
	Weather        WeatherConfig  `koanf:"weather"`
}

// GeocoderConfig points at a Nominatim-compatible endpoint.
type GeocoderConfig struct {
	BaseURL   string `koanf:"base_url"`
	UserAgent string `koanf:"user_agent"`
}

// WeatherConfig points at an Open-Meteo-compatible endpoint.
type WeatherConfig struct {
	BaseURL string `koanf:"base_url"`
}

// RequestTimeout returns the provider call timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from path, falling back to
// TRAVELBUDDY_CONFIG_PATH and then ./travelbuddy.yaml. A missing file is
// not an error; defaults and the environment still apply.
//
// Environment overrides use the TRAVELBUDDY__ prefix with double
// underscores splitting levels, e.g. TRAVELBUDDY__GEOCODER__BASE_URL.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("TRAVELBUDDY_CONFIG_PATH")
	}
	if path == "" {
		path = "travelbuddy.yaml"
	}

	if err := k.Load(kfile.Provider(path), yaml.Parser()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	if err := k.Load(kenv.Provider("TRAVELBUDDY__", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "TRAVELBUDDY__")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}

	resolveEnvVars(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.HistoryDB == "" {
		cfg.HistoryDB = DefaultHistoryDB
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// resolveEnvVars expands ${VAR} references in string fields.
func resolveEnvVars(cfg *Config) {
	cfg.APIKey = resolveEnvString(cfg.APIKey)
	cfg.Model = resolveEnvString(cfg.Model)
	cfg.Geocoder.BaseURL = resolveEnvString(cfg.Geocoder.BaseURL)
	cfg.Geocoder.UserAgent = resolveEnvString(cfg.Geocoder.UserAgent)
	cfg.Weather.BaseURL = resolveEnvString(cfg.Weather.BaseURL)
	cfg.HistoryDB = resolveEnvString(cfg.HistoryDB)
}

func resolveEnvString(value string) string {
	return envVarRegex.ReplaceAllStringFunc(value, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		if resolved, ok := os.LookupEnv(name); ok {
			return resolved
		}
		return match
	})
}

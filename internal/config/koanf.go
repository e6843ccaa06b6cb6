// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tickerboard/config.yaml",
	"/etc/tickerboard/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			TTL:          time.Hour,
			KeyPrecision: 4,
			SingleFlight: false, // duplicate cold-key fetches are tolerated
		},
		Upstream: UpstreamConfig{
			Timeout:      5 * time.Second,
			UserAgent:    "Mozilla/5.0",
			StooqURL:     "https://stooq.com",
			CoinGeckoURL: "https://api.coingecko.com/api/v3",
			OpenMeteoURL: "https://api.open-meteo.com/v1",
			Geocode: GeocodeConfig{
				Enabled:  true,
				URL:      "https://nominatim.openstreetmap.org",
				Language: "ja",
			},
			Breaker: BreakerConfig{
				Enabled: true,
				Timeout: 2 * time.Minute,
			},
		},
		Dashboard: DashboardConfig{
			Timezone:        "Asia/Tokyo",
			Latitude:        35.6762,
			Longitude:       139.6503,
			DefaultLocation: "東京",
			Symbols: SymbolsConfig{
				SP500:     "^spx",
				Nikkei225: "^nkx",
				GoldJPY:   "xaujpy",
				USDJPY:    "usdjpy",
			},
		},
		Sensor: SensorConfig{
			Enabled:      true,
			Key:          "cpu_thermal",
			PollInterval: 30 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     300,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults. The result is validated before it is
// returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// HTTP_PORT -> server.port, CACHE_TTL -> cache.ttl
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",

	// Cache mappings
	"cache_ttl":           "cache.ttl",
	"cache_key_precision": "cache.key_precision",
	"cache_single_flight": "cache.single_flight",

	// Upstream mappings
	"upstream_timeout":    "upstream.timeout",
	"upstream_user_agent": "upstream.user_agent",
	"stooq_url":           "upstream.stooq_url",
	"coingecko_url":       "upstream.coingecko_url",
	"open_meteo_url":      "upstream.open_meteo_url",
	"geocode_enabled":     "upstream.geocode.enabled",
	"geocode_url":         "upstream.geocode.url",
	"geocode_language":    "upstream.geocode.language",
	"breaker_enabled":     "upstream.breaker.enabled",
	"breaker_timeout":     "upstream.breaker.timeout",

	// Dashboard mappings
	"dashboard_timezone": "dashboard.timezone",
	"default_latitude":   "dashboard.latitude",
	"default_longitude":  "dashboard.longitude",
	"default_location":   "dashboard.default_location",
	"symbol_sp500":       "dashboard.symbols.sp500",
	"symbol_nikkei225":   "dashboard.symbols.nikkei225",
	"symbol_gold_jpy":    "dashboard.symbols.gold_jpy",
	"symbol_usd_jpy":     "dashboard.symbols.usd_jpy",

	// Sensor mappings
	"sensor_enabled":       "sensor.enabled",
	"sensor_key":           "sensor.key",
	"sensor_poll_interval": "sensor.poll_interval",

	// Security mappings
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CACHE_TTL -> cache.ttl
//   - SYMBOL_SP500 -> dashboard.symbols.sp500
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

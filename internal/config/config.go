// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	server := http.Server{Addr: cfg.Server.Addr()}
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Cache     CacheConfig     `koanf:"cache"`
	Upstream  UpstreamConfig  `koanf:"upstream"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Sensor    SensorConfig    `koanf:"sensor"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT: Listen port (default: 8080)
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown bound (default: 10s)
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CacheConfig holds the external data cache settings.
//
// Environment Variables:
//   - CACHE_TTL: How long a fetched value stays fresh (default: 1h)
//   - CACHE_KEY_PRECISION: Decimals kept when coordinates form a key (default: 4)
//   - CACHE_SINGLE_FLIGHT: Share one upstream call among concurrent misses (default: false)
type CacheConfig struct {
	TTL          time.Duration `koanf:"ttl"`
	KeyPrecision int           `koanf:"key_precision"`
	SingleFlight bool          `koanf:"single_flight"`
}

// UpstreamConfig holds the external data source settings. Base URLs are
// configurable so tests and mirrors can stand in for the public services.
type UpstreamConfig struct {
	Timeout      time.Duration `koanf:"timeout"`
	UserAgent    string        `koanf:"user_agent"`
	StooqURL     string        `koanf:"stooq_url"`
	CoinGeckoURL string        `koanf:"coingecko_url"`
	OpenMeteoURL string        `koanf:"open_meteo_url"`
	Geocode      GeocodeConfig `koanf:"geocode"`
	Breaker      BreakerConfig `koanf:"breaker"`
}

// GeocodeConfig holds reverse geocoding settings.
type GeocodeConfig struct {
	Enabled  bool   `koanf:"enabled"`
	URL      string `koanf:"url"`
	Language string `koanf:"language"`
}

// BreakerConfig holds the per-endpoint circuit breaker settings.
//
// Environment Variables:
//   - BREAKER_ENABLED: Guard upstream endpoints with circuit breakers (default: true)
//   - BREAKER_TIMEOUT: Open-state duration before a trial request (default: 2m)
type BreakerConfig struct {
	Enabled bool          `koanf:"enabled"`
	Timeout time.Duration `koanf:"timeout"`
}

// DashboardConfig holds what the dashboard shows and where.
type DashboardConfig struct {
	// Timezone renders the snapshot timestamp. Default: Asia/Tokyo
	Timezone string `koanf:"timezone"`

	// Latitude and Longitude are used when a weather request omits them.
	Latitude  float64 `koanf:"latitude"`
	Longitude float64 `koanf:"longitude"`

	// DefaultLocation labels coordinates the geocoder cannot resolve.
	DefaultLocation string `koanf:"default_location"`

	Symbols SymbolsConfig `koanf:"symbols"`
}

// SymbolsConfig holds the Stooq symbol behind each quote tile.
type SymbolsConfig struct {
	SP500     string `koanf:"sp500"`
	Nikkei225 string `koanf:"nikkei225"`
	GoldJPY   string `koanf:"gold_jpy"`
	USDJPY    string `koanf:"usd_jpy"`
}

// SensorConfig holds host sensor settings.
type SensorConfig struct {
	Enabled bool   `koanf:"enabled"`
	Key     string `koanf:"key"`

	// PollInterval refreshes the temperature gauge in the background so
	// /metrics tracks it without dashboard traffic. Zero disables polling.
	PollInterval time.Duration `koanf:"poll_interval"`
}

// SecurityConfig holds inbound API protection settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load loads configuration from all sources. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

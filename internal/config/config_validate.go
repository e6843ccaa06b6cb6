// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that every setting is usable before any component starts.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateUpstream(); err != nil {
		return err
	}

	if err := c.validateDashboard(); err != nil {
		return err
	}

	if err := c.validateSensor(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Cache limits
const (
	minCacheTTL       = time.Second
	maxCacheTTL       = 24 * time.Hour
	minKeyPrecision   = 0
	maxKeyPrecision   = 8
	maxUpstreamBudget = time.Minute
)

// validateCache validates cache configuration
func (c *Config) validateCache() error {
	if c.Cache.TTL < minCacheTTL || c.Cache.TTL > maxCacheTTL {
		return fmt.Errorf("CACHE_TTL must be between %v and %v", minCacheTTL, maxCacheTTL)
	}
	if c.Cache.KeyPrecision < minKeyPrecision || c.Cache.KeyPrecision > maxKeyPrecision {
		return fmt.Errorf("CACHE_KEY_PRECISION must be between %d and %d", minKeyPrecision, maxKeyPrecision)
	}
	return nil
}

// validateUpstream validates upstream source configuration
func (c *Config) validateUpstream() error {
	if c.Upstream.Timeout <= 0 || c.Upstream.Timeout > maxUpstreamBudget {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be between 0 and %v", maxUpstreamBudget)
	}
	if strings.TrimSpace(c.Upstream.UserAgent) == "" {
		return fmt.Errorf("UPSTREAM_USER_AGENT is required")
	}

	urls := []struct {
		value string
		name  string
	}{
		{c.Upstream.StooqURL, "STOOQ_URL"},
		{c.Upstream.CoinGeckoURL, "COINGECKO_URL"},
		{c.Upstream.OpenMeteoURL, "OPEN_METEO_URL"},
	}
	for _, u := range urls {
		if err := validateHTTPURL(u.value, u.name); err != nil {
			return err
		}
	}

	// An empty geocoder URL disables lookups rather than failing startup.
	if c.Upstream.Geocode.Enabled && c.Upstream.Geocode.URL != "" {
		if err := validateHTTPURL(c.Upstream.Geocode.URL, "GEOCODE_URL"); err != nil {
			return err
		}
	}

	if c.Upstream.Breaker.Enabled && c.Upstream.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive when BREAKER_ENABLED=true")
	}
	return nil
}

// validateDashboard validates dashboard configuration
func (c *Config) validateDashboard() error {
	if _, err := time.LoadLocation(c.Dashboard.Timezone); err != nil {
		return fmt.Errorf("DASHBOARD_TIMEZONE %q is not a known timezone: %w", c.Dashboard.Timezone, err)
	}
	if c.Dashboard.Latitude < -90 || c.Dashboard.Latitude > 90 {
		return fmt.Errorf("DEFAULT_LATITUDE must be between -90 and 90")
	}
	if c.Dashboard.Longitude < -180 || c.Dashboard.Longitude > 180 {
		return fmt.Errorf("DEFAULT_LONGITUDE must be between -180 and 180")
	}
	if strings.TrimSpace(c.Dashboard.DefaultLocation) == "" {
		return fmt.Errorf("DEFAULT_LOCATION is required")
	}

	symbols := []struct {
		value string
		name  string
	}{
		{c.Dashboard.Symbols.SP500, "SYMBOL_SP500"},
		{c.Dashboard.Symbols.Nikkei225, "SYMBOL_NIKKEI225"},
		{c.Dashboard.Symbols.GoldJPY, "SYMBOL_GOLD_JPY"},
		{c.Dashboard.Symbols.USDJPY, "SYMBOL_USD_JPY"},
	}
	for _, s := range symbols {
		if strings.TrimSpace(s.value) == "" || strings.ContainsAny(s.value, ", \t\r\n") {
			return fmt.Errorf("%s must be a single non-empty symbol", s.name)
		}
	}
	return nil
}

// validateSensor validates host sensor configuration
func (c *Config) validateSensor() error {
	if c.Sensor.Enabled && strings.TrimSpace(c.Sensor.Key) == "" {
		return fmt.Errorf("SENSOR_KEY is required when SENSOR_ENABLED=true")
	}
	if c.Sensor.PollInterval != 0 && c.Sensor.PollInterval < time.Second {
		return fmt.Errorf("SENSOR_POLL_INTERVAL must be 0 (disabled) or at least 1s, got %v", c.Sensor.PollInterval)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any origin may call the API.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

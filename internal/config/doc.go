// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package config provides centralized configuration management for Tickerboard.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The merged result is validated before
any component starts.

# Configuration File

The first file found is used:

  - $CONFIG_PATH
  - config.yaml / config.yml in the working directory
  - /etc/tickerboard/config.yaml / config.yml

Example:

	cache:
	  ttl: 30m
	  single_flight: true
	upstream:
	  geocode:
	    enabled: false
	dashboard:
	  symbols:
	    sp500: "^dji"

# Environment Variables

Server:
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown bound (default: 10s)

Cache:
  - CACHE_TTL: Freshness window of fetched values (default: 1h)
  - CACHE_KEY_PRECISION: Coordinate decimals in cache keys (default: 4)
  - CACHE_SINGLE_FLIGHT: Deduplicate concurrent cold-key fetches (default: false)

Upstream sources:
  - UPSTREAM_TIMEOUT: Per-call bound (default: 5s)
  - UPSTREAM_USER_AGENT: User-Agent header (default: Mozilla/5.0)
  - STOOQ_URL, COINGECKO_URL, OPEN_METEO_URL: Source base URLs
  - GEOCODE_ENABLED, GEOCODE_URL, GEOCODE_LANGUAGE: Reverse geocoding (default: on, Nominatim, ja)
  - BREAKER_ENABLED, BREAKER_TIMEOUT: Per-endpoint circuit breakers (default: on, 2m)

Dashboard:
  - DASHBOARD_TIMEZONE: Timestamp zone (default: Asia/Tokyo)
  - DEFAULT_LATITUDE, DEFAULT_LONGITUDE: Weather coordinates (default: Tokyo)
  - DEFAULT_LOCATION: Fallback place name (default: 東京)
  - SYMBOL_SP500, SYMBOL_NIKKEI225, SYMBOL_GOLD_JPY, SYMBOL_USD_JPY: Quote symbols

Sensor:
  - SENSOR_ENABLED: Read the host temperature (default: true)
  - SENSOR_KEY: Sensor key prefix (default: cpu_thermal)
  - SENSOR_POLL_INTERVAL: Background gauge refresh, 0 disables (default: 30s)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: Per-IP limit (default: 300 per 1m)
  - DISABLE_RATE_LIMIT: Turn the limiter off (default: false)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER (default: info, json, false)
*/
package config

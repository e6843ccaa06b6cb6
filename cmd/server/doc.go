// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package main is the entry point for the Tickerboard server.

Tickerboard is the backend of a small always-on dashboard. It serves market
quotes (S&P 500, Nikkei 225, gold and USD in yen), the bitcoin price in yen,
the host CPU temperature and the current weather as JSON. Every value is
fetched from a public source, cached in memory and degrades to "N/A" on its
own when its source fails.

# Commands

	tickerboard            # same as "tickerboard serve"
	tickerboard serve      # start the HTTP server
	tickerboard snapshot   # fetch both payloads once and print them

Persistent flags:

	--config PATH          # YAML config file (overrides CONFIG_PATH)
	--log-level LEVEL      # trace, debug, info, warn, error

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("tickerboard")
	├── MonitorSupervisor ("monitor-layer")
	│   └── Sensor poller (when SENSOR_ENABLED and SENSOR_POLL_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Cache: in-memory TTL cache shared by every fetcher
 4. Upstream client: bounded HTTP GETs behind per-endpoint circuit breakers
 5. Fetchers: Stooq quotes, CoinGecko, Open-Meteo, Nominatim, host sensor
 6. Dashboard aggregator: concurrent fan-out into the two payloads
 7. HTTP Server: Chi router with middleware stack
 8. Supervisor Tree: Suture v4 process supervision

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	HTTP_PORT=8080               # HTTP server port
	CACHE_TTL=1h                 # lifetime of every cached upstream value
	UPSTREAM_TIMEOUT=5s          # bound on each outbound call
	DEFAULT_LATITUDE=35.6762     # weather location when a request omits it
	DEFAULT_LONGITUDE=139.6503
	SENSOR_ENABLED=true
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

# Endpoints

	GET /api/dashboard           # market tiles, CPU temperature, timestamp
	GET /api/weather?lat=&lon=   # current weather with a location label
	GET /api/health/live         # liveness probe
	GET /api/health/ready        # readiness with cache and breaker state
	GET /metrics                 # Prometheus metrics

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (SHUTDOWN_TIMEOUT)
 3. Stops the sensor poller
 4. Reports any services that failed to stop

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/dashboard: Payload composition
*/
package main

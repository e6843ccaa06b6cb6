// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)

Upstream Metrics:
  - upstream_requests_total: Outbound calls (counter)
    Labels: source, result
  - upstream_request_duration_seconds: Outbound latency (histogram)
  - fetch_fallbacks_total: Fetches that needed a fallback attempt (counter)
  - fetch_unavailable_total: Fetches that degraded to N/A or a default (counter)

Cache Metrics:
  - cache_hits_total, cache_misses_total (counters)
  - cache_entries (gauge)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total (counter)

Sensor Metrics:
  - host_sensor_temperature_celsius (gauge)
*/
package metrics

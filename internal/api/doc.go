// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package api provides the HTTP surface of Tickerboard.

Routes:

  - GET /api/dashboard: market quotes, BTC price and CPU temperature
  - GET /api/weather?lat=&lon=: current weather with a location label
  - GET /api/health/live: liveness probe
  - GET /api/health/ready: cache and circuit breaker status
  - GET /metrics: Prometheus exposition

The dashboard and weather payloads are written bare; any field whose source
failed is the string "N/A". Only request validation produces an error
status:

	HTTP/1.1 400 Bad Request
	{"status":"error","data":null,"metadata":{...},
	 "error":{"code":"VALIDATION_ERROR","message":"lat must be a valid latitude (-90 to 90)"}}

JSON responses carry an ETag, and a matching If-None-Match yields 304.

Middleware order: request ID, real IP, panic recovery, CORS, then per-group
rate limiting, security headers, Prometheus instrumentation and gzip.
*/
package api

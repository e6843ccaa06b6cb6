// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package middleware provides the HTTP middleware shared by every Tickerboard
route.

Key Components:

  - RequestID: reads or generates X-Request-ID and stores it in the logging
    context so upstream fetch logs carry the ID of the request that caused
    them
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - Compression: gzip for responses of at least 1KB when the client accepts it

All three use the http.HandlerFunc form; the api package adapts them to chi:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))
*/
package middleware

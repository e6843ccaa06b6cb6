// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package logging provides the structured logger used across Tickerboard.

It wraps a process-wide zerolog logger, swapped atomically and configured at startup from the
logging section of the server configuration:

	logging.Init(logging.Config{
	    Level:  cfg.Logging.Level,
	    Format: cfg.Logging.Format,
	    Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("addr", addr).Msg("HTTP server listening")

# Request Context

The request ID middleware stores an ID in the request context. Code that has a
context logs through Ctx so the ID travels with every line. Fetchers use
Fetcher, which also names the data source:

	logging.Fetcher(ctx, "quote").Warn().Str("symbol", symbol).Err(err).Msg("Quote unavailable")
	// {"level":"warn","request_id":"...","fetcher":"quote","symbol":"^spx","error":"...","message":"Quote unavailable"}

# slog Bridge

Libraries that log through log/slog (the suture supervisor via sutureslog)
are routed into zerolog with NewSlogLogger, keeping a single output stream.

# Testing

Tests capture output by swapping the global logger:

	var buf bytes.Buffer
	logging.SetLogger(logging.NewTestLogger(&buf))
*/
package logging

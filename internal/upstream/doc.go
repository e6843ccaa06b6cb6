// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package upstream provides the plumbing shared by every external data fetcher.

# Client

Client performs GET requests bounded by a per-call timeout and detached from
the caller's cancellation, so a client that disconnects never aborts a fetch
whose result is about to be cached:

	c := upstream.NewClient(upstream.ClientConfig{
	    Timeout:  5 * time.Second,
	    Breakers: upstream.NewBreakerSet(upstream.DefaultBreakerSettings()),
	})
	body, err := c.Get(ctx, upstream.Request{
	    Source: "stooq",
	    URL:    upstream.Endpoint(base, "/q/l/"),
	    Params: url.Values{"s": {"^spx"}},
	})

# Error Taxonomy

Every failure wraps one of ErrNetwork, ErrParse, ErrUnavailable or
ErrCapabilityMissing. Fetchers catch them at their boundary and turn them
into the unavailable marker or a default value.

# Circuit Breakers

When a BreakerSet is configured each upstream endpoint (host and path) gets
its own sony/gobreaker breaker, so the Stooq realtime and daily endpoints
trip independently. An open breaker rejects calls immediately with
ErrNetwork, which the fallback chain treats like any other failed attempt.

# Fallback Chains

FirstSuccess runs a list of attempts in order and returns the first value
produced without error, or a joined error describing every failure.
*/
package upstream

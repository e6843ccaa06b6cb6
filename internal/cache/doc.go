// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package cache provides the process-wide store for upstream data.

Every fetcher consults the cache before calling out to an external source and
writes successful results back. Failures are never written, so a failed fetch
is retried on the next request while a successful one is reused for the TTL
(one hour by default).

# Expiry

Expiry is lazy. Get compares the entry's StoredAt against the injected Clock
and reports a miss once the entry is older than the TTL. The stale entry stays
in the map until the next successful Set for the same key replaces it. There
is no cleanup goroutine.

# Keys

Keys are plain strings built with Key and CoordKey:

	quote:^spx                  // index quote
	crypto:bitcoin:jpy          // crypto price
	weather:35.6762,139.6503    // weather snapshot
	geocode:35.6762,139.6503    // reverse-geocoded label

Coordinate components are rounded to a fixed precision (four decimal places
by default) so near-identical requests share an entry.

# Single-flight

Load optionally collapses concurrent misses for the same key into one loader
call via golang.org/x/sync/singleflight. It is off by default: duplicate
outbound calls for a cold key are tolerated.

# Thread Safety

All methods are safe for concurrent use. A sync.RWMutex guards the map, so a
reader sees either the previous entry or the complete new one.
*/
package cache

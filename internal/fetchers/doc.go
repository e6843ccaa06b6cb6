// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package fetchers reads each dashboard value from its external source.

Every fetcher follows the same shape: check the cache, call the source
through upstream.Client, parse, and cache only a success. Failures never
escape a fetcher. They degrade to models.Unavailable (quotes, crypto,
sensor), to an all-unavailable snapshot (weather) or to the default place
name (geocode), and are logged with their failure class.

# Sources

  - QuoteFetcher: Stooq realtime quote line, falling back to the last row of
    the daily history. Cached under "quote:<symbol>".
  - CryptoFetcher: CoinGecko simple/price for BTC in JPY.
  - GeocodeFetcher: Nominatim reverse lookup, labelled "<region> <locality>".
  - WeatherFetcher: Open-Meteo current weather, labelled by GeocodeFetcher.
  - SensorReader: host temperature sensors through gopsutil. Never cached.
*/
package fetchers

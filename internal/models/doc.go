// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package models defines the payloads exchanged with the dashboard client.

Key Components:

  - Value[T]: a tagged variant holding either a T or the unavailable marker.
    Number, Code and Text are its float64, int and string instances. The
    marker is serialized as the string "N/A" and never as a number.
  - DashboardSnapshot: BTC, index, gold, USD/JPY and CPU temperature values
    plus a formatted timestamp.
  - WeatherSnapshot: current weather with the resolved location label.
  - APIResponse / APIError: envelope for errors and health checks.

Example:

	snap := models.DashboardSnapshot{
	    BTC:  models.Of(9_876_543.0),
	    SP500: models.Unavailable[float64](),
	}
	// {"btc":9876543,"sp500":"N/A",...}
*/
package models

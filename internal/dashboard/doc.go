// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

// Package dashboard assembles the two payloads served to the browser: the
// market snapshot (BTC, S&P 500, Nikkei 225, gold, USD/JPY and the host CPU
// temperature, stamped in Japan time) and the weather snapshot.
package dashboard

// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package cache

import (
	"strconv"
	"strings"
)

// DefaultKeyPrecision is the number of decimal places kept for coordinate
// components of a key. Four places is roughly 11m at the equator.
const DefaultKeyPrecision = 4

// Key joins a prefix and its parameters with ':'.
//
//	cache.Key("quote", "^spx") // "quote:^spx"
func Key(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

// CoordKey builds a key from a coordinate pair rounded to precision decimal
// places, so near-identical requests collapse onto one entry.
//
//	cache.CoordKey("weather", 35.67621, 139.65034, 4) // "weather:35.6762,139.6503"
func CoordKey(prefix string, lat, lon float64, precision int) string {
	if precision < 0 {
		precision = DefaultKeyPrecision
	}
	return Key(prefix, formatCoord(lat, precision)+","+formatCoord(lon, precision))
}

func formatCoord(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	// -0.0000 and 0.0000 must share a key.
	if strings.TrimLeft(s, "-0.") == "" {
		return strconv.FormatFloat(0, 'f', precision, 64)
	}
	return s
}

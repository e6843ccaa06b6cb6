// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package validation

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// WeatherQuery holds the optional coordinates of GET /api/weather.
type WeatherQuery struct {
	Lat *float64 `query:"lat" validate:"omitempty,latitude"`
	Lon *float64 `query:"lon" validate:"omitempty,longitude"`
}

// ParseWeatherQuery reads lat and lon from values. Absent or empty
// parameters stay nil. Non-numeric and out-of-range values are reported
// together.
func ParseWeatherQuery(values url.Values) (WeatherQuery, *RequestValidationError) {
	var q WeatherQuery
	var parseErrs []ValidationError

	parse := func(name, kind string) *float64 {
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			return nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			parseErrs = append(parseErrs, ValidationError{
				field:   name,
				tag:     "numeric",
				value:   raw,
				message: name + " must be a valid " + kind,
			})
			return nil
		}
		return &f
	}

	q.Lat = parse("lat", "latitude")
	q.Lon = parse("lon", "longitude")

	if verr := ValidateStruct(&q); verr != nil {
		parseErrs = append(parseErrs, verr.errors...)
	}
	if len(parseErrs) > 0 {
		return WeatherQuery{}, &RequestValidationError{errors: parseErrs}
	}
	return q, nil
}

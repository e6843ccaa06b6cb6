// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

// Package validation validates inbound request parameters with
// go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata after first use and reports field names by their query tag, so a
// bad latitude is reported as "lat" rather than "Lat".
//
// Weather coordinates are parsed and validated in one step:
//
//	q, verr := validation.ParseWeatherQuery(r.URL.Query())
//	if verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Both parameters are optional. A value that is not a finite number, or that
// falls outside [-90, 90] for lat or [-180, 180] for lon, is rejected.
package validation

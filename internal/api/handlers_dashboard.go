// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package api

import (
	"net/http"

	"github.com/tomtom215/tickerboard/internal/logging"
	"github.com/tomtom215/tickerboard/internal/validation"
)

// Dashboard handles GET /api/dashboard. It always answers 200; fields whose
// source failed are "N/A".
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Dashboard(r.Context())
	respondJSON(w, r, http.StatusOK, snap, h.dashboardMaxAge)
}

// Weather handles GET /api/weather. Both lat and lon are optional; a value
// that is not a number in range is rejected with 400 VALIDATION_ERROR.
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	q, verr := validation.ParseWeatherQuery(r.URL.Query())
	if verr != nil {
		logging.CtxDebug(r.Context()).
			Str("query", sanitizeLogValue(r.URL.RawQuery)).
			Str("reason", verr.Error()).
			Msg("Rejected weather query")
		apiErr := verr.ToAPIError()
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	snap := h.service.Weather(r.Context(), q.Lat, q.Lon)
	respondJSON(w, r, http.StatusOK, snap, h.weatherMaxAge)
}

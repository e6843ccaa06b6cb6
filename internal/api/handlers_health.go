// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tickerboard/internal/models"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK while the process can serve HTTP, regardless of upstreams.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"}, 0)
}

// HealthReady handles readiness probe requests.
//
// The server is always ready: upstream failures degrade individual fields
// rather than the service. Status is "degraded" while any upstream circuit is
// open so monitoring can still tell.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:       "ready",
		Version:      h.version,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		CacheEntries: h.cache.Len(),
		CacheHitRate: h.cache.HitRate(),
		CacheTTL:     h.cache.TTL().String(),
	}
	if h.sensor != nil {
		health.SensorPresent = h.sensor.Present(r.Context())
	}
	if h.breakers != nil {
		health.Breakers = h.breakers.States()
		for _, state := range health.Breakers {
			if state == "open" {
				health.Status = "degraded"
				break
			}
		}
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	}, 0)
}

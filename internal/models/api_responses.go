// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package models

import (
	"time"
)

// APIResponse is the envelope for error and health responses.
//
// The dashboard and weather payloads are written bare because the polling
// client reads their fields directly.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "lat must be between -90 and 90"
//	  },
//	  "metadata": {"timestamp": "2025-11-28T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Response could not be produced
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the data payload of the readiness endpoint.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version,omitempty"`
	Uptime        string  `json:"uptime"`
	CacheEntries  int     `json:"cache_entries"`
	CacheHitRate  float64 `json:"cache_hit_rate"`
	CacheTTL      string  `json:"cache_ttl"`
	SensorPresent bool    `json:"sensor_present"`

	// Breakers maps each upstream endpoint seen so far to its circuit state.
	Breakers map[string]string `json:"breakers,omitempty"`
}

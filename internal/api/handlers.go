// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package api

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/tickerboard/internal/cache"
	"github.com/tomtom215/tickerboard/internal/models"
)

// DashboardService produces the two payloads. *dashboard.Aggregator
// implements it.
type DashboardService interface {
	Dashboard(ctx context.Context) models.DashboardSnapshot
	Weather(ctx context.Context, lat, lon *float64) models.WeatherSnapshot
}

// SensorProbe reports whether the configured host sensor is readable.
type SensorProbe interface {
	Present(ctx context.Context) bool
}

// BreakerStates reports circuit breaker state per upstream endpoint.
type BreakerStates interface {
	States() map[string]string
}

// HandlerConfig wires a Handler.
type HandlerConfig struct {
	Service DashboardService
	Cache   *cache.Cache

	// Sensor and Breakers are optional; readiness omits what is nil.
	Sensor   SensorProbe
	Breakers BreakerStates

	// Version is reported by the readiness probe.
	Version string

	// DashboardMaxAge and WeatherMaxAge set Cache-Control on the payloads.
	DashboardMaxAge time.Duration
	WeatherMaxAge   time.Duration
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_dashboard.go: dashboard and weather payloads
//   - handlers_health.go: liveness and readiness probes
//   - handlers_helpers.go: JSON and error responses
type Handler struct {
	service         DashboardService
	cache           *cache.Cache
	sensor          SensorProbe
	breakers        BreakerStates
	version         string
	dashboardMaxAge time.Duration
	weatherMaxAge   time.Duration
	startTime       time.Time
}

// Defaults for browser caching, matching how often the dashboard client
// polls each payload.
const (
	DefaultDashboardMaxAge = 30 * time.Second
	DefaultWeatherMaxAge   = 10 * time.Minute
)

// NewHandler creates a Handler. Service and Cache are required.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Service == nil {
		return nil, errors.New("api: dashboard service is required")
	}
	if cfg.Cache == nil {
		return nil, errors.New("api: cache is required")
	}
	h := &Handler{
		service:         cfg.Service,
		cache:           cfg.Cache,
		sensor:          cfg.Sensor,
		breakers:        cfg.Breakers,
		version:         cfg.Version,
		dashboardMaxAge: cfg.DashboardMaxAge,
		weatherMaxAge:   cfg.WeatherMaxAge,
		startTime:       time.Now(),
	}
	if h.dashboardMaxAge <= 0 {
		h.dashboardMaxAge = DefaultDashboardMaxAge
	}
	if h.weatherMaxAge <= 0 {
		h.weatherMaxAge = DefaultWeatherMaxAge
	}
	return h, nil
}

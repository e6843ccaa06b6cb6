// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package fetchers

import (
	"context"
	"net/http"
	"testing"

	"github.com/tomtom215/tickerboard/internal/cache"
	"github.com/tomtom215/tickerboard/internal/models"
)

const forecastPath = "/forecast"

func newTestWeather(t *testing.T, forecast http.HandlerFunc, geocode http.HandlerFunc) (*WeatherFetcher, *countingServer, *cache.Cache) {
	t.Helper()
	routes := map[string]http.HandlerFunc{forecastPath: forecast}
	if geocode != nil {
		routes[reversePath] = geocode
	}
	srv := newCountingServer(t, routes)
	c := testCache()
	g := NewGeocodeFetcher(testClient(), c, GeocodeConfig{Enabled: geocode != nil, BaseURL: srv.URL})
	cfg := DefaultWeatherConfig()
	cfg.BaseURL = srv.URL
	w := NewWeatherFetcher(testClient(), c, g, cfg)
	return w, srv, c
}

func TestWeatherFetcherSuccess(t *testing.T) {
	t.Parallel()

	w, srv, c := newTestWeather(t,
		func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("latitude") != "34.6937" || q.Get("longitude") != "135.5023" {
				t.Errorf("unexpected coordinates in %q", r.URL.RawQuery)
			}
			if q.Get("current_weather") != "true" || q.Get("timezone") != "Asia/Tokyo" {
				t.Errorf("unexpected query %q", r.URL.RawQuery)
			}
			w.Write([]byte(`{"current_weather":{"temperature":12.3,"windspeed":4.5,"weathercode":3,"time":"2024-01-02T09:00"}}`))
		},
		textHandler(`{"address":{"city":"大阪市","state":"大阪府"}}`),
	)

	got := w.Fetch(context.Background(), ptr(34.6937), ptr(135.5023))
	if v, ok := got.Temperature.Get(); !ok || v != 12.3 {
		t.Errorf("Temperature = (%v, %v), want 12.3", v, ok)
	}
	if v, ok := got.WeatherCode.Get(); !ok || v != 3 {
		t.Errorf("WeatherCode = (%v, %v), want 3", v, ok)
	}
	if v, ok := got.WindSpeed.Get(); !ok || v != 4.5 {
		t.Errorf("WindSpeed = (%v, %v), want 4.5", v, ok)
	}
	if v, ok := got.ObservedAt.Get(); !ok || v != "2024-01-02T09:00" {
		t.Errorf("ObservedAt = (%v, %v), want 2024-01-02T09:00", v, ok)
	}
	if got.Location != "大阪府 大阪市" {
		t.Errorf("Location = %q, want 大阪府 大阪市", got.Location)
	}

	key := WeatherKey(34.6937, 135.5023, cache.DefaultKeyPrecision)
	if _, ok := cache.Lookup[models.WeatherSnapshot](c, key); !ok {
		t.Errorf("expected snapshot cached under %s", key)
	}

	w.Fetch(context.Background(), ptr(34.6937), ptr(135.5023))
	if srv.Hits(forecastPath) != 1 || srv.Hits(reversePath) != 1 {
		t.Errorf("hits forecast=%d reverse=%d, want 1 each with a warm cache", srv.Hits(forecastPath), srv.Hits(reversePath))
	}
}

func TestWeatherFetcherMissingWindSpeed(t *testing.T) {
	t.Parallel()

	w, _, _ := newTestWeather(t,
		textHandler(`{"current_weather":{"temperature":12.3,"weathercode":3,"time":"2024-01-02T09:00"}}`),
		textHandler(`{"address":{"town":"箱根町","state":"神奈川県"}}`),
	)

	got := w.Fetch(context.Background(), ptr(35.2324), ptr(139.1069))
	if got.WindSpeed.Available() {
		t.Errorf("WindSpeed = %v, want unavailable", got.WindSpeed)
	}
	if !got.Temperature.Available() || !got.WeatherCode.Available() || !got.ObservedAt.Available() {
		t.Errorf("other fields should be populated, got %+v", got)
	}
	if got.Location != "神奈川県 箱根町" {
		t.Errorf("Location = %q, want 神奈川県 箱根町", got.Location)
	}
}

func TestWeatherFetcherDefaultsToTokyo(t *testing.T) {
	t.Parallel()

	w, _, c := newTestWeather(t,
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("latitude") != "35.6762" || r.URL.Query().Get("longitude") != "139.6503" {
				t.Errorf("expected default coordinates, got %q", r.URL.RawQuery)
			}
			w.Write([]byte(`{"current_weather":{"temperature":8}}`))
		},
		textHandler(`{"address":{"city":"X","state":"Y"}}`),
	)

	got := w.Fetch(context.Background(), nil, nil)
	if got.Location != DefaultLocationName {
		t.Errorf("Location = %q, want default %q", got.Location, DefaultLocationName)
	}
	if _, ok := cache.Lookup[models.WeatherSnapshot](c, WeatherKey(DefaultLatitude, DefaultLongitude, cache.DefaultKeyPrecision)); !ok {
		t.Error("expected snapshot cached under the default coordinates")
	}
}

func TestWeatherFetcherZeroDefaultCoordinates(t *testing.T) {
	t.Parallel()

	srv := newCountingServer(t, map[string]http.HandlerFunc{
		forecastPath: func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("latitude") != "0" || r.URL.Query().Get("longitude") != "0" {
				t.Errorf("expected configured (0, 0), got %q", r.URL.RawQuery)
			}
			w.Write([]byte(`{"current_weather":{"temperature":27.5}}`))
		},
	})
	c := testCache()
	g := NewGeocodeFetcher(testClient(), c, GeocodeConfig{Enabled: false, DefaultName: "Null Island"})
	w := NewWeatherFetcher(testClient(), c, g, WeatherConfig{BaseURL: srv.URL, Latitude: 0, Longitude: 0})

	got := w.Fetch(context.Background(), nil, nil)
	if v, ok := got.Temperature.Get(); !ok || v != 27.5 {
		t.Errorf("Temperature = %v, want 27.5", got.Temperature)
	}
	if _, ok := cache.Lookup[models.WeatherSnapshot](c, WeatherKey(0, 0, cache.DefaultKeyPrecision)); !ok {
		t.Error("expected snapshot cached under (0, 0)")
	}
}

func TestWeatherFetcherFailureKeepsLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", statusHandler(http.StatusBadGateway)},
		{"malformed", textHandler(`{"current_weather":`)},
		{"no current weather", textHandler(`{"latitude":35.6}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, srv, c := newTestWeather(t, tt.handler, textHandler(`{"address":{"city":"札幌市","state":"北海道"}}`))

			got := w.Fetch(context.Background(), ptr(43.0618), ptr(141.3545))
			want := models.UnavailableWeather("北海道 札幌市")
			if got != want {
				t.Errorf("Fetch = %+v, want %+v", got, want)
			}
			// Only the geocode label is cached.
			if c.Len() != 1 {
				t.Errorf("cache Len() = %d, want 1", c.Len())
			}

			w.Fetch(context.Background(), ptr(43.0618), ptr(141.3545))
			if srv.Hits(forecastPath) != 2 {
				t.Errorf("forecast hits = %d, want 2 since failures are not cached", srv.Hits(forecastPath))
			}
		})
	}
}

func TestWeatherFetcherSingleFlightFailureKeepsLocation(t *testing.T) {
	t.Parallel()

	srv := newCountingServer(t, map[string]http.HandlerFunc{forecastPath: statusHandler(http.StatusBadGateway)})
	c := cache.New(0, cache.WithSingleFlight(true))
	g := NewGeocodeFetcher(testClient(), c, GeocodeConfig{Enabled: false, DefaultName: "Home"})
	cfg := DefaultWeatherConfig()
	cfg.BaseURL = srv.URL
	w := NewWeatherFetcher(testClient(), c, g, cfg)

	if got := w.Fetch(context.Background(), nil, nil); got != models.UnavailableWeather("Home") {
		t.Errorf("Fetch = %+v, want all unavailable at Home", got)
	}
}

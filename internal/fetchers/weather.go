// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package fetchers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tomtom215/tickerboard/internal/cache"
	"github.com/tomtom215/tickerboard/internal/logging"
	"github.com/tomtom215/tickerboard/internal/metrics"
	"github.com/tomtom215/tickerboard/internal/models"
	"github.com/tomtom215/tickerboard/internal/upstream"
)

const (
	// DefaultOpenMeteoURL is the production forecast source.
	DefaultOpenMeteoURL = "https://api.open-meteo.com/v1"

	// DefaultLatitude and DefaultLongitude point at central Tokyo.
	DefaultLatitude  = 35.6762
	DefaultLongitude = 139.6503

	// DefaultTimezone is passed to the forecast API for observation times.
	DefaultTimezone = "Asia/Tokyo"
)

// WeatherConfig configures a WeatherFetcher.
type WeatherConfig struct {
	BaseURL      string
	Latitude     float64
	Longitude    float64
	Timezone     string
	KeyPrecision int
}

// forecastResponse is the subset of the forecast response we read. Each
// field decodes to unavailable when missing or null.
type forecastResponse struct {
	CurrentWeather *struct {
		Temperature models.Number `json:"temperature"`
		WeatherCode models.Code   `json:"weathercode"`
		WindSpeed   models.Number `json:"windspeed"`
		Time        models.Text   `json:"time"`
	} `json:"current_weather"`
}

// WeatherFetcher reads current conditions and labels them with a resolved
// place name.
type WeatherFetcher struct {
	client   *upstream.Client
	cache    *cache.Cache
	geocoder *GeocodeFetcher
	cfg      WeatherConfig
}

// DefaultWeatherConfig returns the production forecast source centred on
// Tokyo.
func DefaultWeatherConfig() WeatherConfig {
	return WeatherConfig{
		BaseURL:      DefaultOpenMeteoURL,
		Latitude:     DefaultLatitude,
		Longitude:    DefaultLongitude,
		Timezone:     DefaultTimezone,
		KeyPrecision: cache.DefaultKeyPrecision,
	}
}

// NewWeatherFetcher creates a WeatherFetcher. Latitude and Longitude are used
// as given, so (0, 0) is a valid default location; start from
// DefaultWeatherConfig for Tokyo.
func NewWeatherFetcher(client *upstream.Client, c *cache.Cache, geocoder *GeocodeFetcher, cfg WeatherConfig) *WeatherFetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenMeteoURL
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.KeyPrecision <= 0 {
		cfg.KeyPrecision = cache.DefaultKeyPrecision
	}
	return &WeatherFetcher{client: client, cache: c, geocoder: geocoder, cfg: cfg}
}

// WeatherKey returns the cache key for the coordinates at the given precision.
func WeatherKey(lat, lon float64, precision int) string {
	return cache.CoordKey("weather", lat, lon, precision)
}

// Fetch returns the current weather at the coordinates, defaulting each
// missing coordinate. The location is resolved on every cache miss so a
// failed forecast still carries a place name. Failures are not cached.
func (f *WeatherFetcher) Fetch(ctx context.Context, lat, lon *float64) models.WeatherSnapshot {
	la, lo := f.cfg.Latitude, f.cfg.Longitude
	if lat != nil {
		la = *lat
	}
	if lon != nil {
		lo = *lon
	}
	key := WeatherKey(la, lo, f.cfg.KeyPrecision)

	snap, err := cache.Load(ctx, f.cache, key, func(ctx context.Context) (models.WeatherSnapshot, error) {
		location := f.geocoder.Resolve(ctx, lat, lon)
		snap, err := f.current(ctx, la, lo)
		if err != nil {
			return models.UnavailableWeather(location), err
		}
		snap.Location = location
		return snap, nil
	})
	if err != nil {
		metrics.RecordUnavailable("weather")
		logging.Fetcher(ctx, "weather").Warn().Err(err).Str("key", key).Str("reason", upstream.Reason(err)).Msg("Weather unavailable")
		if snap.Location == "" {
			snap = models.UnavailableWeather(f.geocoder.DefaultName())
		}
	}
	return snap
}

func (f *WeatherFetcher) current(ctx context.Context, lat, lon float64) (models.WeatherSnapshot, error) {
	resp, err := upstream.GetJSON[forecastResponse](ctx, f.client, upstream.Request{
		Source: "open-meteo",
		URL:    upstream.Endpoint(f.cfg.BaseURL, "/forecast"),
		Params: url.Values{
			"latitude":        {strconv.FormatFloat(lat, 'f', -1, 64)},
			"longitude":       {strconv.FormatFloat(lon, 'f', -1, 64)},
			"current_weather": {"true"},
			"timezone":        {f.cfg.Timezone},
		},
	})
	if err != nil {
		return models.WeatherSnapshot{}, err
	}
	if resp.CurrentWeather == nil {
		return models.WeatherSnapshot{}, fmt.Errorf("%w: response has no current_weather", upstream.ErrParse)
	}

	cw := resp.CurrentWeather
	return models.WeatherSnapshot{
		Temperature: cw.Temperature,
		WeatherCode: cw.WeatherCode,
		WindSpeed:   cw.WindSpeed,
		ObservedAt:  cw.Time,
	}, nil
}

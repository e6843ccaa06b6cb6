// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package main

import (
	"fmt"
	"time"

	"github.com/tomtom215/tickerboard/internal/api"
	"github.com/tomtom215/tickerboard/internal/cache"
	"github.com/tomtom215/tickerboard/internal/config"
	"github.com/tomtom215/tickerboard/internal/dashboard"
	"github.com/tomtom215/tickerboard/internal/fetchers"
	"github.com/tomtom215/tickerboard/internal/logging"
	"github.com/tomtom215/tickerboard/internal/upstream"
)

// app holds the components shared by the serve and snapshot commands.
type app struct {
	cfg        *config.Config
	cache      *cache.Cache
	breakers   *upstream.BreakerSet
	sensor     *fetchers.SensorReader
	aggregator *dashboard.Aggregator
}

// newApp wires the cache, the upstream client and every fetcher behind a
// dashboard aggregator.
func newApp(cfg *config.Config) (*app, error) {
	dataCache := cache.New(cfg.Cache.TTL, cache.WithSingleFlight(cfg.Cache.SingleFlight))

	var breakers *upstream.BreakerSet
	if cfg.Upstream.Breaker.Enabled {
		settings := upstream.DefaultBreakerSettings()
		settings.Timeout = cfg.Upstream.Breaker.Timeout
		breakers = upstream.NewBreakerSet(settings)
	}

	client := upstream.NewClient(upstream.ClientConfig{
		Timeout:   cfg.Upstream.Timeout,
		UserAgent: cfg.Upstream.UserAgent,
		Breakers:  breakers,
	})

	quotes := fetchers.NewQuoteFetcher(client, dataCache, cfg.Upstream.StooqURL)
	crypto := fetchers.NewCryptoFetcher(client, dataCache, cfg.Upstream.CoinGeckoURL)
	geocoder := fetchers.NewGeocodeFetcher(client, dataCache, fetchers.GeocodeConfig{
		Enabled:      cfg.Upstream.Geocode.Enabled,
		BaseURL:      cfg.Upstream.Geocode.URL,
		Language:     cfg.Upstream.Geocode.Language,
		DefaultName:  cfg.Dashboard.DefaultLocation,
		KeyPrecision: cfg.Cache.KeyPrecision,
	})
	weather := fetchers.NewWeatherFetcher(client, dataCache, geocoder, fetchers.WeatherConfig{
		BaseURL:      cfg.Upstream.OpenMeteoURL,
		Latitude:     cfg.Dashboard.Latitude,
		Longitude:    cfg.Dashboard.Longitude,
		Timezone:     cfg.Dashboard.Timezone,
		KeyPrecision: cfg.Cache.KeyPrecision,
	})
	sensor := fetchers.NewSensorReader(fetchers.SensorConfig{
		Enabled: cfg.Sensor.Enabled,
		Key:     cfg.Sensor.Key,
	})

	loc, err := time.LoadLocation(cfg.Dashboard.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Dashboard.Timezone, err)
	}

	symbols := cfg.Dashboard.Symbols
	aggregator, err := dashboard.New(dashboard.Config{
		Quotes:  quotes,
		Crypto:  crypto,
		Sensor:  sensor,
		Weather: weather,
		Symbols: dashboard.Symbols{
			SP500:     symbols.SP500,
			Nikkei225: symbols.Nikkei225,
			GoldJPY:   symbols.GoldJPY,
			USDJPY:    symbols.USDJPY,
		},
		Location: loc,
	})
	if err != nil {
		return nil, err
	}

	logging.Info().
		Dur("cache_ttl", cfg.Cache.TTL).
		Bool("single_flight", cfg.Cache.SingleFlight).
		Bool("breakers", breakers != nil).
		Bool("geocode", cfg.Upstream.Geocode.Enabled).
		Bool("sensor", cfg.Sensor.Enabled).
		Str("timezone", loc.String()).
		Msg("Data sources configured")

	return &app{
		cfg:        cfg,
		cache:      dataCache,
		breakers:   breakers,
		sensor:     sensor,
		aggregator: aggregator,
	}, nil
}

// handler builds the API handler over the app's components.
func (a *app) handler(version string) (*api.Handler, error) {
	hc := api.HandlerConfig{
		Service: a.aggregator,
		Cache:   a.cache,
		Sensor:  a.sensor,
		Version: version,
	}
	// A nil *BreakerSet must not become a non-nil interface.
	if a.breakers != nil {
		hc.Breakers = a.breakers
	}
	return api.NewHandler(hc)
}

// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package dashboard

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // Asia/Tokyo must resolve on hosts without zoneinfo

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/tickerboard/internal/cache"
	"github.com/tomtom215/tickerboard/internal/logging"
	"github.com/tomtom215/tickerboard/internal/models"
)

// DefaultTimezone is the zone the snapshot timestamp is rendered in.
const DefaultTimezone = "Asia/Tokyo"

// Symbols are the quote symbols shown on the dashboard.
type Symbols struct {
	SP500     string
	Nikkei225 string
	GoldJPY   string
	USDJPY    string
}

// DefaultSymbols returns the Stooq symbols for the four quote tiles.
func DefaultSymbols() Symbols {
	return Symbols{
		SP500:     "^spx",
		Nikkei225: "^nkx",
		GoldJPY:   "xaujpy",
		USDJPY:    "usdjpy",
	}
}

// QuoteSource returns the latest close for a symbol.
type QuoteSource interface {
	Fetch(ctx context.Context, symbol string) models.Number
}

// PriceSource returns a single fixed price.
type PriceSource interface {
	Fetch(ctx context.Context) models.Number
}

// SensorSource returns a live host reading.
type SensorSource interface {
	Read(ctx context.Context) models.Number
}

// WeatherSource returns the current weather for optional coordinates.
type WeatherSource interface {
	Fetch(ctx context.Context, lat, lon *float64) models.WeatherSnapshot
}

// Config wires an Aggregator.
type Config struct {
	Quotes  QuoteSource
	Crypto  PriceSource
	Sensor  SensorSource
	Weather WeatherSource
	Symbols Symbols

	// Location for the snapshot timestamp. Nil means Asia/Tokyo.
	Location *time.Location

	// Clock supplies the current time. Nil means the system clock.
	Clock cache.Clock
}

// Aggregator composes the dashboard and weather payloads. Each field is
// fetched independently so one failing source never blanks another.
type Aggregator struct {
	quotes  QuoteSource
	crypto  PriceSource
	sensor  SensorSource
	weather WeatherSource
	symbols Symbols
	loc     *time.Location
	clock   cache.Clock
}

// New creates an Aggregator.
func New(cfg Config) (*Aggregator, error) {
	if cfg.Quotes == nil || cfg.Crypto == nil || cfg.Sensor == nil || cfg.Weather == nil {
		return nil, fmt.Errorf("dashboard: every source must be set")
	}
	if cfg.Symbols == (Symbols{}) {
		cfg.Symbols = DefaultSymbols()
	}
	if cfg.Location == nil {
		loc, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			return nil, fmt.Errorf("dashboard: load %s: %w", DefaultTimezone, err)
		}
		cfg.Location = loc
	}
	if cfg.Clock == nil {
		cfg.Clock = cache.SystemClock{}
	}
	return &Aggregator{
		quotes:  cfg.Quotes,
		crypto:  cfg.Crypto,
		sensor:  cfg.Sensor,
		weather: cfg.Weather,
		symbols: cfg.Symbols,
		loc:     cfg.Location,
		clock:   cfg.Clock,
	}, nil
}

// Dashboard fetches every tile concurrently and returns whatever succeeded.
// It never fails.
func (a *Aggregator) Dashboard(ctx context.Context) models.DashboardSnapshot {
	start := a.clock.Now()
	var snap models.DashboardSnapshot

	// Sources never return errors, so the group is only used to fan out
	// and join. Each goroutine writes a distinct field.
	var g errgroup.Group
	g.Go(func() error {
		snap.BTC = a.crypto.Fetch(ctx)
		return nil
	})
	g.Go(func() error {
		snap.SP500 = a.quotes.Fetch(ctx, a.symbols.SP500)
		return nil
	})
	g.Go(func() error {
		snap.Nikkei225 = a.quotes.Fetch(ctx, a.symbols.Nikkei225)
		return nil
	})
	g.Go(func() error {
		snap.GoldJPY = a.quotes.Fetch(ctx, a.symbols.GoldJPY)
		return nil
	})
	g.Go(func() error {
		snap.USDJPY = a.quotes.Fetch(ctx, a.symbols.USDJPY)
		return nil
	})
	g.Go(func() error {
		snap.CPUTemp = a.sensor.Read(ctx)
		return nil
	})
	_ = g.Wait()

	snap.Time = a.clock.Now().In(a.loc).Format(models.DashboardTimeLayout)

	logging.CtxDebug(ctx).
		Dur("duration", a.clock.Now().Sub(start)).
		Int("unavailable", countUnavailable(snap)).
		Msg("Dashboard snapshot assembled")
	return snap
}

// Weather returns the current weather for the optional coordinates.
func (a *Aggregator) Weather(ctx context.Context, lat, lon *float64) models.WeatherSnapshot {
	return a.weather.Fetch(ctx, lat, lon)
}

func countUnavailable(s models.DashboardSnapshot) int {
	n := 0
	for _, v := range []models.Number{s.BTC, s.SP500, s.Nikkei225, s.GoldJPY, s.USDJPY, s.CPUTemp} {
		if !v.Available() {
			n++
		}
	}
	return n
}

// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/tickerboard/internal/models"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeQuotes struct {
	mu     sync.Mutex
	prices map[string]models.Number
	calls  []string
}

func (f *fakeQuotes) Fetch(_ context.Context, symbol string) models.Number {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, symbol)
	return f.prices[symbol]
}

type fakePrice struct{ v models.Number }

func (f fakePrice) Fetch(context.Context) models.Number { return f.v }

type fakeSensor struct{ v models.Number }

func (f fakeSensor) Read(context.Context) models.Number { return f.v }

type fakeWeather struct {
	gotLat, gotLon *float64
}

func (f *fakeWeather) Fetch(_ context.Context, lat, lon *float64) models.WeatherSnapshot {
	f.gotLat, f.gotLon = lat, lon
	return models.WeatherSnapshot{Temperature: models.Of(20.5), Location: "東京"}
}

func TestAggregatorDashboard(t *testing.T) {
	t.Parallel()

	quotes := &fakeQuotes{prices: map[string]models.Number{
		"^spx":   models.Of(4742.83),
		"^nkx":   models.Unavailable[float64](),
		"xaujpy": models.Of(300000.0),
		"usdjpy": models.Of(151.25),
	}}
	agg, err := New(Config{
		Quotes:  quotes,
		Crypto:  fakePrice{models.Of(9876543.0)},
		Sensor:  fakeSensor{models.Unavailable[float64]()},
		Weather: &fakeWeather{},
		Clock:   fixedClock{time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	snap := agg.Dashboard(context.Background())

	if v, _ := snap.BTC.Get(); v != 9876543 {
		t.Errorf("BTC = %v, want 9876543", snap.BTC)
	}
	if v, _ := snap.SP500.Get(); v != 4742.83 {
		t.Errorf("SP500 = %v, want 4742.83", snap.SP500)
	}
	if snap.Nikkei225.Available() {
		t.Errorf("Nikkei225 = %v, want unavailable", snap.Nikkei225)
	}
	if v, _ := snap.GoldJPY.Get(); v != 300000 {
		t.Errorf("GoldJPY = %v, want 300000", snap.GoldJPY)
	}
	if v, _ := snap.USDJPY.Get(); v != 151.25 {
		t.Errorf("USDJPY = %v, want 151.25", snap.USDJPY)
	}
	if snap.CPUTemp.Available() {
		t.Errorf("CPUTemp = %v, want unavailable", snap.CPUTemp)
	}
	if snap.Time != "2024-01-02 09:30:00 JST" {
		t.Errorf("Time = %q, want 2024-01-02 09:30:00 JST", snap.Time)
	}
	if len(quotes.calls) != 4 {
		t.Errorf("quote calls = %v, want 4 symbols", quotes.calls)
	}
}

func TestAggregatorCustomSymbols(t *testing.T) {
	t.Parallel()

	quotes := &fakeQuotes{prices: map[string]models.Number{"^dji": models.Of(1.0)}}
	agg, err := New(Config{
		Quotes:  quotes,
		Crypto:  fakePrice{},
		Sensor:  fakeSensor{},
		Weather: &fakeWeather{},
		Symbols: Symbols{SP500: "^dji", Nikkei225: "^nkx", GoldJPY: "xaujpy", USDJPY: "usdjpy"},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if v, ok := agg.Dashboard(context.Background()).SP500.Get(); !ok || v != 1 {
		t.Errorf("SP500 = (%v, %v), want the ^dji price", v, ok)
	}
}

func TestAggregatorWeatherPassesCoordinates(t *testing.T) {
	t.Parallel()

	w := &fakeWeather{}
	agg, err := New(Config{Quotes: &fakeQuotes{}, Crypto: fakePrice{}, Sensor: fakeSensor{}, Weather: w})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	lat, lon := 35.0, 139.0
	got := agg.Weather(context.Background(), &lat, &lon)
	if got.Location != "東京" {
		t.Errorf("Location = %q, want 東京", got.Location)
	}
	if w.gotLat == nil || *w.gotLat != lat || w.gotLon == nil || *w.gotLon != lon {
		t.Errorf("weather source got (%v, %v), want (%v, %v)", w.gotLat, w.gotLon, lat, lon)
	}
}

func TestNewRequiresSources(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); err == nil {
		t.Error("expected an error when sources are missing")
	}
}

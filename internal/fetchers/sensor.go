// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package fetchers

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/sensors"

	"github.com/tomtom215/tickerboard/internal/logging"
	"github.com/tomtom215/tickerboard/internal/metrics"
	"github.com/tomtom215/tickerboard/internal/models"
	"github.com/tomtom215/tickerboard/internal/upstream"
)

// DefaultSensorKey matches the SoC temperature sensor on Raspberry Pi class
// boards.
const DefaultSensorKey = "cpu_thermal"

// sensorTimeout bounds a host sensor read.
const sensorTimeout = 5 * time.Second

// TemperatureSource lists the host's temperature sensors.
type TemperatureSource func(ctx context.Context) ([]sensors.TemperatureStat, error)

// SensorConfig configures a SensorReader.
type SensorConfig struct {
	// Enabled turns sensor reads on. When false the reading is always
	// unavailable.
	Enabled bool

	// Key is matched as a prefix against sensor keys.
	Key string

	// Source overrides the host sensor listing, mainly for tests.
	Source TemperatureSource
}

// SensorReader reports the host CPU temperature. Readings are live and never
// cached.
type SensorReader struct {
	cfg SensorConfig
}

// NewSensorReader creates a SensorReader backed by gopsutil unless cfg
// supplies a Source.
func NewSensorReader(cfg SensorConfig) *SensorReader {
	if cfg.Key == "" {
		cfg.Key = DefaultSensorKey
	}
	if cfg.Source == nil {
		cfg.Source = sensors.TemperaturesWithContext
	}
	return &SensorReader{cfg: cfg}
}

// Read returns the temperature in Celsius rounded to one decimal, or the
// unavailable marker when the host has no matching sensor.
func (r *SensorReader) Read(ctx context.Context) models.Number {
	v, err := r.read(ctx)
	if err != nil {
		logging.Fetcher(ctx, "sensor").Debug().Err(err).Str("sensor", r.cfg.Key).Str("reason", upstream.Reason(err)).Msg("Sensor reading unavailable")
		return models.Unavailable[float64]()
	}
	metrics.SensorTemperature.Set(v)
	return models.Of(v)
}

// Present reports whether a matching sensor can currently be read.
func (r *SensorReader) Present(ctx context.Context) bool {
	_, err := r.read(ctx)
	return err == nil
}

func (r *SensorReader) read(ctx context.Context) (float64, error) {
	if !r.cfg.Enabled {
		return 0, fmt.Errorf("%w: sensor reading disabled", upstream.ErrCapabilityMissing)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sensorTimeout)
	defer cancel()

	// Some platforms return readings alongside a warning, so the readings
	// are scanned even when err is set.
	temps, err := r.cfg.Source(ctx)
	for _, t := range temps {
		if !strings.HasPrefix(t.SensorKey, r.cfg.Key) {
			continue
		}
		if math.IsNaN(t.Temperature) || math.IsInf(t.Temperature, 0) {
			return 0, fmt.Errorf("%w: sensor %s reported %v", upstream.ErrParse, t.SensorKey, t.Temperature)
		}
		return models.Round1(t.Temperature), nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", upstream.ErrCapabilityMissing, err)
	}
	return 0, fmt.Errorf("%w: no sensor matching %q", upstream.ErrCapabilityMissing, r.cfg.Key)
}

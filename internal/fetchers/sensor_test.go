// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package fetchers

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shirou/gopsutil/v4/sensors"
)

func staticSource(temps []sensors.TemperatureStat, err error) TemperatureSource {
	return func(context.Context) ([]sensors.TemperatureStat, error) {
		return temps, err
	}
}

func TestSensorReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    SensorConfig
		want   float64
		wantOK bool
	}{
		{
			name:   "rounds to one decimal",
			cfg:    SensorConfig{Enabled: true, Source: staticSource([]sensors.TemperatureStat{{SensorKey: "cpu_thermal", Temperature: 48.312}}, nil)},
			want:   48.3,
			wantOK: true,
		},
		{
			name: "prefix match skips other sensors",
			cfg: SensorConfig{Enabled: true, Source: staticSource([]sensors.TemperatureStat{
				{SensorKey: "nvme_composite", Temperature: 30},
				{SensorKey: "cpu_thermal_input", Temperature: 51.06},
			}, nil)},
			want:   51.1,
			wantOK: true,
		},
		{
			name: "custom key",
			cfg: SensorConfig{Enabled: true, Key: "coretemp", Source: staticSource([]sensors.TemperatureStat{
				{SensorKey: "coretemp_package_id_0", Temperature: 62},
			}, nil)},
			want:   62,
			wantOK: true,
		},
		{
			name:   "warning with readings",
			cfg:    SensorConfig{Enabled: true, Source: staticSource([]sensors.TemperatureStat{{SensorKey: "cpu_thermal", Temperature: 40}}, errors.New("partial read"))},
			want:   40,
			wantOK: true,
		},
		{
			name: "no matching sensor",
			cfg:  SensorConfig{Enabled: true, Source: staticSource([]sensors.TemperatureStat{{SensorKey: "acpitz", Temperature: 40}}, nil)},
		},
		{
			name: "empty readings",
			cfg:  SensorConfig{Enabled: true, Source: staticSource(nil, nil)},
		},
		{
			name: "source error",
			cfg:  SensorConfig{Enabled: true, Source: staticSource(nil, errors.New("not implemented yet"))},
		},
		{
			name: "not finite",
			cfg:  SensorConfig{Enabled: true, Source: staticSource([]sensors.TemperatureStat{{SensorKey: "cpu_thermal", Temperature: math.NaN()}}, nil)},
		},
		{
			name: "disabled",
			cfg:  SensorConfig{Enabled: false, Source: staticSource([]sensors.TemperatureStat{{SensorKey: "cpu_thermal", Temperature: 40}}, nil)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewSensorReader(tt.cfg)
			got, ok := r.Read(context.Background()).Get()
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Read = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
			if r.Present(context.Background()) != tt.wantOK {
				t.Errorf("Present = %v, want %v", !tt.wantOK, tt.wantOK)
			}
		})
	}
}

// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package models

import "math"

// DashboardTimeLayout formats the snapshot timestamp, e.g. "2024-01-02 09:30:00 JST".
const DashboardTimeLayout = "2006-01-02 15:04:05 MST"

// DashboardSnapshot is the payload of GET /api/dashboard.
// Every numeric field fails independently.
type DashboardSnapshot struct {
	BTC       Number `json:"btc"`
	SP500     Number `json:"sp500"`
	Nikkei225 Number `json:"nikkei225"`
	GoldJPY   Number `json:"gold_jpy"`
	USDJPY    Number `json:"usd_jpy"`
	CPUTemp   Number `json:"temp"`
	Time      string `json:"time"`
}

// WeatherSnapshot is the payload of GET /api/weather. Location is always set,
// falling back to the configured default name.
type WeatherSnapshot struct {
	Temperature Number `json:"temperature"`
	WeatherCode Code   `json:"weathercode"`
	WindSpeed   Number `json:"windspeed"`
	ObservedAt  Text   `json:"time"`
	Location    string `json:"location"`
}

// UnavailableWeather returns a snapshot with every weather field unavailable.
func UnavailableWeather(location string) WeatherSnapshot {
	return WeatherSnapshot{Location: location}
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(f float64) float64 {
	return math.Round(f*10) / 10
}

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
	"strings"

	"github.com/tomtom215/tickerboard/internal/cache"
	"github.com/tomtom215/tickerboard/internal/logging"
	"github.com/tomtom215/tickerboard/internal/metrics"
	"github.com/tomtom215/tickerboard/internal/upstream"
)

const (
	// DefaultNominatimURL is the production reverse geocoder.
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"

	// DefaultLocationName labels coordinates that could not be resolved.
	DefaultLocationName = "東京"

	// DefaultGeocodeLanguage is sent as Accept-Language.
	DefaultGeocodeLanguage = "ja"
)

// GeocodeConfig configures a GeocodeFetcher.
type GeocodeConfig struct {
	// Enabled turns reverse geocoding on. When false every lookup returns
	// DefaultName without a network call.
	Enabled bool

	// BaseURL of the Nominatim instance. Empty disables geocoding.
	BaseURL string

	// Language requested for address names.
	Language string

	// DefaultName is returned whenever no label can be derived.
	DefaultName string

	// KeyPrecision is the number of decimals coordinates are rounded to in
	// the cache key.
	KeyPrecision int
}

// reverseResponse is the subset of a jsonv2 reverse lookup we read.
type reverseResponse struct {
	Error   string  `json:"error"`
	Address address `json:"address"`
}

type address struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	State        string `json:"state"`
	Province     string `json:"province"`
}

// label returns "<region> <locality>", or false when either part is missing.
func (a address) label() (string, bool) {
	locality := firstNonEmpty(a.City, a.Town, a.Village, a.Municipality)
	region := firstNonEmpty(a.State, a.Province)
	if locality == "" || region == "" {
		return "", false
	}
	return region + " " + locality, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// GeocodeFetcher turns coordinates into a human readable place name.
type GeocodeFetcher struct {
	client *upstream.Client
	cache  *cache.Cache
	cfg    GeocodeConfig
}

// NewGeocodeFetcher creates a GeocodeFetcher, filling unset config fields
// with their defaults.
func NewGeocodeFetcher(client *upstream.Client, c *cache.Cache, cfg GeocodeConfig) *GeocodeFetcher {
	if cfg.Language == "" {
		cfg.Language = DefaultGeocodeLanguage
	}
	if cfg.DefaultName == "" {
		cfg.DefaultName = DefaultLocationName
	}
	if cfg.KeyPrecision <= 0 {
		cfg.KeyPrecision = cache.DefaultKeyPrecision
	}
	return &GeocodeFetcher{client: client, cache: c, cfg: cfg}
}

// DefaultName returns the fallback location label.
func (f *GeocodeFetcher) DefaultName() string {
	return f.cfg.DefaultName
}

// Available reports whether lookups can reach a geocoder at all.
func (f *GeocodeFetcher) Available() bool {
	return f.cfg.Enabled && f.cfg.BaseURL != ""
}

// Resolve returns a place name for the coordinates. A missing coordinate, a
// disabled geocoder or any lookup failure yields DefaultName, which is never
// cached.
func (f *GeocodeFetcher) Resolve(ctx context.Context, lat, lon *float64) string {
	if lat == nil || lon == nil {
		return f.cfg.DefaultName
	}
	if !f.Available() {
		logging.Fetcher(ctx, "geocode").Debug().Err(upstream.ErrCapabilityMissing).Msg("Geocoder not configured, using default location")
		return f.cfg.DefaultName
	}

	key := cache.CoordKey("geocode", *lat, *lon, f.cfg.KeyPrecision)
	name, err := cache.Load(ctx, f.cache, key, func(ctx context.Context) (string, error) {
		return f.reverse(ctx, *lat, *lon)
	})
	if err != nil {
		metrics.RecordUnavailable("geocode")
		logging.Fetcher(ctx, "geocode").Warn().Err(err).Str("key", key).Str("reason", upstream.Reason(err)).Msg("Reverse geocode failed, using default location")
		return f.cfg.DefaultName
	}
	return name
}

func (f *GeocodeFetcher) reverse(ctx context.Context, lat, lon float64) (string, error) {
	resp, err := upstream.GetJSON[reverseResponse](ctx, f.client, upstream.Request{
		Source: "nominatim",
		URL:    upstream.Endpoint(f.cfg.BaseURL, "/reverse"),
		Params: url.Values{
			"format":         {"jsonv2"},
			"lat":            {strconv.FormatFloat(lat, 'f', -1, 64)},
			"lon":            {strconv.FormatFloat(lon, 'f', -1, 64)},
			"zoom":           {"10"},
			"addressdetails": {"1"},
		},
		Headers: map[string]string{"Accept-Language": f.cfg.Language},
	})
	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("%w: %s", upstream.ErrUnavailable, resp.Error)
	}

	label, ok := resp.Address.label()
	if !ok {
		return "", fmt.Errorf("%w: address lacks a region or locality", upstream.ErrUnavailable)
	}
	return label, nil
}

// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package fetchers

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"github.com/tomtom215/tickerboard/internal/cache"
	"github.com/tomtom215/tickerboard/internal/logging"
	"github.com/tomtom215/tickerboard/internal/metrics"
	"github.com/tomtom215/tickerboard/internal/models"
	"github.com/tomtom215/tickerboard/internal/upstream"
)

// DefaultCoinGeckoURL is the production crypto price source.
const DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

const (
	cryptoAsset    = "bitcoin"
	cryptoCurrency = "jpy"
)

// CryptoKey is the cache key of the BTC/JPY price.
var CryptoKey = cache.Key("crypto", cryptoAsset, cryptoCurrency)

// simplePrice is the simple/price response: {"bitcoin":{"jpy":9876543}}.
type simplePrice map[string]map[string]*float64

// CryptoFetcher reads the BTC price in JPY from a single source.
type CryptoFetcher struct {
	client  *upstream.Client
	cache   *cache.Cache
	baseURL string
}

// NewCryptoFetcher creates a CryptoFetcher. An empty baseURL means
// DefaultCoinGeckoURL.
func NewCryptoFetcher(client *upstream.Client, c *cache.Cache, baseURL string) *CryptoFetcher {
	if baseURL == "" {
		baseURL = DefaultCoinGeckoURL
	}
	return &CryptoFetcher{client: client, cache: c, baseURL: baseURL}
}

// Fetch returns the BTC/JPY price or the unavailable marker.
func (f *CryptoFetcher) Fetch(ctx context.Context) models.Number {
	price, err := cache.Load(ctx, f.cache, CryptoKey, f.price)
	if err != nil {
		metrics.RecordUnavailable("crypto")
		logging.Fetcher(ctx, "crypto").Warn().Err(err).Str("reason", upstream.Reason(err)).Msg("Crypto price unavailable")
		return models.Unavailable[float64]()
	}
	return models.Of(price)
}

func (f *CryptoFetcher) price(ctx context.Context) (float64, error) {
	resp, err := upstream.GetJSON[simplePrice](ctx, f.client, upstream.Request{
		Source: "coingecko",
		URL:    upstream.Endpoint(f.baseURL, "/simple/price"),
		Params: url.Values{
			"ids":           {cryptoAsset},
			"vs_currencies": {cryptoCurrency},
		},
	})
	if err != nil {
		return 0, err
	}

	prices, ok := resp[cryptoAsset]
	if !ok {
		return 0, fmt.Errorf("%w: response has no %s entry", upstream.ErrParse, cryptoAsset)
	}
	v, ok := prices[cryptoCurrency]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: response has no %s price", upstream.ErrUnavailable, cryptoCurrency)
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, fmt.Errorf("%w: price is not finite", upstream.ErrParse)
	}
	return *v, nil
}

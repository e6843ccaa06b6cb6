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
	"strconv"
	"strings"

	"github.com/tomtom215/tickerboard/internal/cache"
	"github.com/tomtom215/tickerboard/internal/logging"
	"github.com/tomtom215/tickerboard/internal/metrics"
	"github.com/tomtom215/tickerboard/internal/models"
	"github.com/tomtom215/tickerboard/internal/upstream"
)

// DefaultStooqURL is the production quote source.
const DefaultStooqURL = "https://stooq.com"

const (
	// realtimeCloseField is the close column of the f=sd2t2ohlcv layout:
	// Symbol,Date,Time,Open,High,Low,Close,Volume.
	realtimeCloseField = 6

	// dailyCloseField is the close column of the daily history layout:
	// Date,Open,High,Low,Close,Volume.
	dailyCloseField = 4
)

// QuoteKey returns the cache key for symbol.
func QuoteKey(symbol string) string {
	return cache.Key("quote", symbol)
}

// QuoteFetcher reads the latest close for an index, commodity or currency
// pair. It asks for the realtime quote line first and falls back to the last
// row of the daily history, which still has a close when the market is shut.
type QuoteFetcher struct {
	client  *upstream.Client
	cache   *cache.Cache
	baseURL string
}

// NewQuoteFetcher creates a QuoteFetcher. An empty baseURL means DefaultStooqURL.
func NewQuoteFetcher(client *upstream.Client, c *cache.Cache, baseURL string) *QuoteFetcher {
	if baseURL == "" {
		baseURL = DefaultStooqURL
	}
	return &QuoteFetcher{client: client, cache: c, baseURL: baseURL}
}

// Fetch returns the close for symbol, or the unavailable marker when neither
// source produced one. Only successful prices are cached.
func (f *QuoteFetcher) Fetch(ctx context.Context, symbol string) models.Number {
	key := QuoteKey(symbol)

	price, err := cache.Load(ctx, f.cache, key, func(ctx context.Context) (float64, error) {
		return upstream.FirstSuccess(ctx,
			upstream.Attempt[float64]{Name: "realtime", Fn: func(ctx context.Context) (float64, error) {
				return f.realtime(ctx, symbol)
			}},
			upstream.Attempt[float64]{Name: "daily", Fn: func(ctx context.Context) (float64, error) {
				metrics.RecordFallback("quote")
				logging.Fetcher(ctx, "quote").Debug().Str("symbol", symbol).Msg("Realtime quote failed, trying daily history")
				return f.daily(ctx, symbol)
			}},
		)
	})
	if err != nil {
		metrics.RecordUnavailable("quote")
		logging.Fetcher(ctx, "quote").Warn().Err(err).Str("symbol", symbol).Str("reason", upstream.Reason(err)).Msg("Quote unavailable")
		return models.Unavailable[float64]()
	}
	return models.Of(price)
}

func (f *QuoteFetcher) realtime(ctx context.Context, symbol string) (float64, error) {
	body, err := f.client.Get(ctx, upstream.Request{
		Source: "stooq",
		URL:    upstream.Endpoint(f.baseURL, "/q/l/"),
		Params: url.Values{
			"s": {symbol},
			"f": {"sd2t2ohlcv"},
			"h": {""},
			"e": {"csv"},
		},
	})
	if err != nil {
		return 0, err
	}
	return parseRealtimeCSV(string(body), symbol)
}

func (f *QuoteFetcher) daily(ctx context.Context, symbol string) (float64, error) {
	body, err := f.client.Get(ctx, upstream.Request{
		Source: "stooq",
		URL:    upstream.Endpoint(f.baseURL, "/q/d/l/"),
		Params: url.Values{
			"s": {symbol},
			"i": {"d"},
		},
	})
	if err != nil {
		return 0, err
	}
	return parseDailyCSV(string(body))
}

// parseRealtimeCSV extracts the close from a realtime quote response. The
// data line is the one whose first field names the symbol, or else the line
// after the header.
func parseRealtimeCSV(body, symbol string) (float64, error) {
	lines := nonBlankLines(body)
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w: empty realtime response", upstream.ErrParse)
	}

	var data string
	for _, line := range lines {
		first, _, _ := strings.Cut(line, ",")
		if strings.EqualFold(strings.TrimSpace(first), symbol) {
			data = line
			break
		}
	}
	if data == "" {
		if len(lines) < 2 {
			return 0, fmt.Errorf("%w: realtime response has no data line", upstream.ErrParse)
		}
		data = lines[1]
	}
	return closeField(data, realtimeCloseField)
}

// parseDailyCSV extracts the close from the most recent row of a daily
// history response.
func parseDailyCSV(body string) (float64, error) {
	lines := nonBlankLines(body)
	if len(lines) < 2 {
		return 0, fmt.Errorf("%w: daily response has no data rows", upstream.ErrParse)
	}
	return closeField(lines[len(lines)-1], dailyCloseField)
}

func nonBlankLines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// closeField parses field idx of a comma separated row. "N/A" and "N/D" in
// any case mean the source has no price.
func closeField(line string, idx int) (float64, error) {
	fields := strings.Split(line, ",")
	if len(fields) <= idx {
		return 0, fmt.Errorf("%w: expected at least %d fields, got %d", upstream.ErrParse, idx+1, len(fields))
	}

	raw := strings.TrimSpace(fields[idx])
	switch strings.ToUpper(raw) {
	case "N/A", "N/D":
		return 0, fmt.Errorf("%w: close is %s", upstream.ErrUnavailable, raw)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: close %q: %w", upstream.ErrParse, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: close %q is not finite", upstream.ErrParse, raw)
	}
	return v, nil
}

// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package fetchers

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/tickerboard/internal/cache"
	"github.com/tomtom215/tickerboard/internal/upstream"
)

// countingServer starts an httptest server and counts requests per path.
type countingServer struct {
	*httptest.Server
	hits map[string]*atomic.Int32
}

func newCountingServer(t *testing.T, routes map[string]http.HandlerFunc) *countingServer {
	t.Helper()

	cs := &countingServer{hits: make(map[string]*atomic.Int32)}
	mux := http.NewServeMux()
	for path, h := range routes {
		counter := &atomic.Int32{}
		cs.hits[path] = counter
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			counter.Add(1)
			h(w, r)
		})
	}
	cs.Server = httptest.NewServer(mux)
	t.Cleanup(cs.Close)
	return cs
}

func (cs *countingServer) Hits(path string) int32 {
	if c, ok := cs.hits[path]; ok {
		return c.Load()
	}
	return 0
}

func textHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func statusHandler(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(code), code)
	}
}

func testClient() *upstream.Client {
	return upstream.NewClient(upstream.ClientConfig{Timeout: 2 * time.Second})
}

func testCache() *cache.Cache {
	return cache.New(time.Hour)
}

func ptr(f float64) *float64 {
	return &f
}

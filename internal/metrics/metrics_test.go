// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// histogramCount returns the number of observations recorded by h.
func histogramCount(t *testing.T, h prometheus.Observer) uint64 {
	t.Helper()
	m, ok := h.(prometheus.Metric)
	if !ok {
		t.Fatalf("%T is not a prometheus.Metric", h)
	}
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return out.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/dashboard", "200"))

	RecordAPIRequest("GET", "/api/dashboard", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/dashboard", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordUpstreamRequest(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		result string
	}{
		{"success", nil, "success"},
		{"failure", errors.New("connection refused"), "failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := UpstreamRequestsTotal.WithLabelValues("test-source-"+tt.name, tt.result)
			hist := UpstreamRequestDuration.WithLabelValues("test-source-" + tt.name)
			before := testutil.ToFloat64(counter)
			samplesBefore := histogramCount(t, hist)

			RecordUpstreamRequest("test-source-"+tt.name, 100*time.Millisecond, tt.err)

			if delta := testutil.ToFloat64(counter) - before; delta != 1 {
				t.Errorf("upstream_requests_total{result=%q} delta = %v, want 1", tt.result, delta)
			}
			if delta := histogramCount(t, hist) - samplesBefore; delta != 1 {
				t.Errorf("upstream_request_duration_seconds samples delta = %d, want 1", delta)
			}
		})
	}
}

func TestRecordFallbackAndUnavailable(t *testing.T) {
	fb := FetchFallbacksTotal.WithLabelValues("quote")
	na := FetchUnavailableTotal.WithLabelValues("quote")
	fbBefore, naBefore := testutil.ToFloat64(fb), testutil.ToFloat64(na)

	RecordFallback("quote")
	RecordUnavailable("quote")
	RecordUnavailable("quote")

	if d := testutil.ToFloat64(fb) - fbBefore; d != 1 {
		t.Errorf("fetch_fallbacks_total delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(na) - naBefore; d != 2 {
		t.Errorf("fetch_unavailable_total delta = %v, want 2", d)
	}
}

// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tickerboard/internal/supervisor"
	"github.com/tomtom215/tickerboard/internal/supervisor/services"
)

// fakeUpstreams serves canned Stooq, CoinGecko and Open-Meteo responses and
// counts every request.
func fakeUpstreams(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/q/l/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		sym := r.URL.Query().Get("s")
		fmt.Fprintf(w, "Symbol,Date,Time,Open,High,Low,Close,Volume\n%s,20240101,000000,1,2,3,100.50,1000\n", sym)
	})
	mux.HandleFunc("/simple/price", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"bitcoin":{"jpy":9876543}}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("latitude") != "34.6937" {
			t.Errorf("unexpected forecast query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"current_weather":{"temperature":12.3,"windspeed":4.5,"weathercode":3,"time":"2024-01-02T09:00"}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

// isolate points every upstream at srv and keeps host config files out of
// the test.
func isolate(t *testing.T, srv *httptest.Server) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STOOQ_URL", srv.URL)
	t.Setenv("COINGECKO_URL", srv.URL)
	t.Setenv("OPEN_METEO_URL", srv.URL)
	t.Setenv("GEOCODE_ENABLED", "false")
	t.Setenv("SENSOR_ENABLED", "false")
	t.Setenv("BREAKER_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmdSubcommands(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd("1.2.3")
	if cmd.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", cmd.Version)
	}
	for _, name := range []string{"serve", "snapshot"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Errorf("subcommand %q not registered: %v", name, err)
		}
	}
	for _, flag := range []string{"config", "log-level"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s not registered", flag)
		}
	}
}

func TestSnapshotCommand(t *testing.T) {
	srv, _ := fakeUpstreams(t)
	isolate(t, srv)

	out, err := execute(t, "snapshot", "--lat", "34.6937", "--lon", "135.5023")
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	var got struct {
		Dashboard map[string]any `json:"dashboard"`
		Weather   map[string]any `json:"weather"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Errorf("output to a non-terminal should be compact, got %q", out)
	}

	if got.Dashboard["btc"] != float64(9876543) {
		t.Errorf("btc = %v, want 9876543", got.Dashboard["btc"])
	}
	for _, field := range []string{"sp500", "nikkei225", "gold_jpy", "usd_jpy"} {
		if got.Dashboard[field] != 100.5 {
			t.Errorf("%s = %v, want 100.5", field, got.Dashboard[field])
		}
	}
	if got.Dashboard["temp"] != "N/A" {
		t.Errorf("temp = %v, want N/A with the sensor disabled", got.Dashboard["temp"])
	}
	if tm, _ := got.Dashboard["time"].(string); !strings.HasSuffix(tm, "JST") {
		t.Errorf("time = %q, want a JST timestamp", tm)
	}

	if got.Weather["temperature"] != 12.3 {
		t.Errorf("temperature = %v, want 12.3", got.Weather["temperature"])
	}
	if got.Weather["location"] != "東京" {
		t.Errorf("location = %v, want the default location", got.Weather["location"])
	}
}

func TestSnapshotCommandRejectsInvalidCoordinates(t *testing.T) {
	srv, hits := fakeUpstreams(t)
	isolate(t, srv)

	_, err := execute(t, "snapshot", "--lat", "north", "--lon", "181")
	if err == nil {
		t.Fatal("expected invalid coordinates to fail")
	}
	for _, want := range []string{"lat must be a valid latitude", "lon must be a valid longitude"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
	if hits.Load() != 0 {
		t.Errorf("upstream hits = %d, want 0", hits.Load())
	}
}

func TestConfigFlagMissingFile(t *testing.T) {
	srv, _ := fakeUpstreams(t)
	isolate(t, srv)

	_, err := execute(t, "snapshot", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "config file") {
		t.Errorf("err = %v, want a config file error", err)
	}
}

func TestRunReportsConfigError(t *testing.T) {
	srv, hits := fakeUpstreams(t)
	isolate(t, srv)
	t.Setenv("HTTP_PORT", "99999")

	_, err := execute(t, "snapshot")
	if err == nil || !strings.Contains(err.Error(), "HTTP_PORT must be between 1 and 65535") {
		t.Errorf("err = %v, want an HTTP_PORT range error", err)
	}

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"serve"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "HTTP_PORT must be between 1 and 65535") {
		t.Errorf("stderr = %q, want the config error", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if hits.Load() != 0 {
		t.Errorf("upstream hits = %d, want 0", hits.Load())
	}
}

func TestServeTreeStopsOnCancel(t *testing.T) {
	t.Parallel()

	tree, err := supervisor.NewSupervisorTree(slog.New(slog.NewTextHandler(io.Discard, nil)), supervisor.TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}

	var polls atomic.Int64
	poller, err := services.NewPollService("test-poller", 10*time.Millisecond, func(context.Context) {
		polls.Add(1)
	})
	if err != nil {
		t.Fatalf("NewPollService: %v", err)
	}
	tree.AddMonitorService(poller)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveTree(ctx, tree) }()

	deadline := time.Now().Add(2 * time.Second)
	for polls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if polls.Load() < 2 {
		t.Fatalf("poller ran %d times, want at least 2", polls.Load())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serveTree returned %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serveTree did not return after cancel")
	}
}

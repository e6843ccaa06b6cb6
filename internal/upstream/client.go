// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tickerboard/internal/metrics"
)

const (
	// DefaultTimeout bounds every outbound call.
	DefaultTimeout = 5 * time.Second

	// DefaultUserAgent is sent when no user agent is configured. Stooq
	// refuses requests without a browser-like agent.
	DefaultUserAgent = "Mozilla/5.0"

	// maxBodyBytes caps how much of an upstream response is read.
	maxBodyBytes = 1 << 20

	// maxErrorBodyBytes caps the body excerpt included in status errors.
	maxErrorBodyBytes = 256
)

// ClientConfig configures a Client.
type ClientConfig struct {
	// Timeout bounds each call. Zero means DefaultTimeout.
	Timeout time.Duration

	// UserAgent is sent on every request. Empty means DefaultUserAgent.
	UserAgent string

	// Breakers guards each upstream endpoint. Nil disables circuit breaking.
	Breakers *BreakerSet

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client performs bounded GET requests against external data sources.
type Client struct {
	http      *http.Client
	timeout   time.Duration
	userAgent string
	breakers  *BreakerSet
}

// NewClient creates a Client from cfg.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		http:      cfg.HTTPClient,
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
		breakers:  cfg.Breakers,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	return c
}

// Request describes one outbound GET.
type Request struct {
	// Source labels the call in metrics and logs, e.g. "stooq".
	Source string

	// URL is the endpoint without query parameters.
	URL string

	// Params are encoded into the query string.
	Params url.Values

	// Headers are added on top of User-Agent.
	Headers map[string]string
}

// Timeout returns the per-call bound.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get performs the request and returns the response body.
//
// The call is detached from ctx's cancellation so that an abandoned inbound
// request does not abort an upstream fetch whose result will be cached, and
// is bounded by the client timeout instead. Transport errors, timeouts and
// non-2xx statuses are wrapped with ErrNetwork.
func (c *Client) Get(ctx context.Context, r Request) ([]byte, error) {
	reqURL, err := buildURL(r.URL, r.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNetwork, r.Source, err)
	}

	call := func() ([]byte, error) {
		return c.do(ctx, r, reqURL)
	}

	start := time.Now()
	var body []byte
	if c.breakers != nil {
		body, err = c.breakers.For(breakerKey(reqURL)).Execute(call)
	} else {
		body, err = call()
	}
	metrics.RecordUpstreamRequest(r.Source, time.Since(start), err)
	return body, err
}

// breakerKey names the breaker guarding an endpoint: host plus path. Stooq's
// realtime and daily endpoints get separate breakers so a tripped realtime
// endpoint never blocks the daily fallback.
func breakerKey(u *url.URL) string {
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return u.Host + path
}

func (c *Client) do(ctx context.Context, r Request, reqURL *url.URL) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: create request failed: %w", ErrNetwork, r.Source, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: request failed: %w", ErrNetwork, r.Source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("%w: %s: request failed with status %d: %s", ErrNetwork, r.Source, resp.StatusCode, string(excerpt))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body failed: %w", ErrNetwork, r.Source, err)
	}
	return body, nil
}

// GetJSON performs the request and decodes the body into T. A body that is
// not valid JSON for T is wrapped with ErrParse.
func GetJSON[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var out T
	body, err := c.Get(ctx, r)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("%w: %s: failed to decode response: %w", ErrParse, r.Source, err)
	}
	return out, nil
}

func buildURL(base string, params url.Values) (*url.URL, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid upstream url %q", base)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u, nil
}

// Endpoint joins a configured base URL and a path, tolerating a trailing
// slash on the base.
func Endpoint(base, path string) string {
	base = strings.TrimRight(base, "/")
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

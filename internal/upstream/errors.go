// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package upstream

import "errors"

// Failure classes. Fetchers wrap one of these with %w so callers can tell
// why a source was skipped; none of them ever reaches an HTTP response.
var (
	// ErrNetwork covers transport failures, timeouts, non-2xx statuses and
	// circuit breaker rejections.
	ErrNetwork = errors.New("upstream network error")

	// ErrParse indicates a response with an unexpected shape.
	ErrParse = errors.New("upstream parse error")

	// ErrUnavailable indicates the source explicitly reported no data.
	ErrUnavailable = errors.New("upstream value unavailable")

	// ErrCapabilityMissing indicates the source is not configured or not
	// present on this host.
	ErrCapabilityMissing = errors.New("capability missing")
)

// Classify returns the failure class of err, or nil for a nil error.
// Anything that is not a parse, unavailable or capability failure (timeouts,
// breaker rejections, dial errors) is reported as ErrNetwork.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrParse):
		return ErrParse
	case errors.Is(err, ErrUnavailable):
		return ErrUnavailable
	case errors.Is(err, ErrCapabilityMissing):
		return ErrCapabilityMissing
	default:
		return ErrNetwork
	}
}

// Reason returns a short label for err's failure class, for logs and metrics.
func Reason(err error) string {
	switch Classify(err) {
	case nil:
		return "ok"
	case ErrParse:
		return "parse"
	case ErrUnavailable:
		return "unavailable"
	case ErrCapabilityMissing:
		return "capability_missing"
	default:
		return "network"
	}
}

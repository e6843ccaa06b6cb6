// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package upstream

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoAttempts is returned by FirstSuccess when called with no attempts.
var ErrNoAttempts = errors.New("fallback chain has no attempts")

// Attempt is one step of a fallback chain.
type Attempt[T any] struct {
	// Name identifies the step in logs and in the joined error.
	Name string

	// Fn produces the value or an explicit failure.
	Fn func(ctx context.Context) (T, error)
}

// FirstSuccess runs the attempts in order and returns the first value produced
// without error. Later attempts are not run once one succeeds.
//
// When every attempt fails the returned error joins each failure, prefixed
// with the attempt name, so errors.Is sees through to the sentinels.
//
//	price, err := upstream.FirstSuccess(ctx,
//	    upstream.Attempt[float64]{Name: "realtime", Fn: realtime},
//	    upstream.Attempt[float64]{Name: "daily", Fn: daily},
//	)
func FirstSuccess[T any](ctx context.Context, attempts ...Attempt[T]) (T, error) {
	var zero T
	if len(attempts) == 0 {
		return zero, ErrNoAttempts
	}

	failures := make([]error, 0, len(attempts))
	for _, a := range attempts {
		v, err := a.Fn(ctx)
		if err == nil {
			return v, nil
		}
		failures = append(failures, fmt.Errorf("%s: %w", a.Name, err))
	}
	return zero, errors.Join(failures...)
}

// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package upstream

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyAndReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		class  error
		reason string
	}{
		{"nil", nil, nil, "ok"},
		{"wrapped parse", fmt.Errorf("stooq: %w", ErrParse), ErrParse, "parse"},
		{"wrapped unavailable", fmt.Errorf("stooq: %w", ErrUnavailable), ErrUnavailable, "unavailable"},
		{"capability", ErrCapabilityMissing, ErrCapabilityMissing, "capability_missing"},
		{"network", fmt.Errorf("%w: timeout", ErrNetwork), ErrNetwork, "network"},
		{"unclassified", context.DeadlineExceeded, ErrNetwork, "network"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.err); !errors.Is(got, tt.class) || (tt.class == nil && got != nil) {
				t.Errorf("Classify() = %v, want %v", got, tt.class)
			}
			if got := Reason(tt.err); got != tt.reason {
				t.Errorf("Reason() = %q, want %q", got, tt.reason)
			}
		})
	}
}

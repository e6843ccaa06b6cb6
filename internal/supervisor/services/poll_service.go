// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package services

import (
	"context"
	"fmt"
	"time"
)

// PollService calls fn once at start and then every interval until the
// supervisor stops it. fn must bound its own work; a panic in fn is
// recovered by suture and the service restarted.
//
//	poller := services.NewPollService("sensor-poller", 30*time.Second, func(ctx context.Context) {
//	    sensor.Read(ctx)
//	})
//	tree.AddMonitorService(poller)
type PollService struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
}

// NewPollService creates a poller. interval must be positive.
func NewPollService(name string, interval time.Duration, fn func(ctx context.Context)) (*PollService, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("poll service %s: interval must be positive, got %v", name, interval)
	}
	if fn == nil {
		return nil, fmt.Errorf("poll service %s: fn is required", name)
	}
	return &PollService{name: name, interval: interval, fn: fn}, nil
}

// Serve implements suture.Service.
func (p *PollService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.fn(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.fn(ctx)
		}
	}
}

// String names the service in supervisor events.
func (p *PollService) String() string {
	return p.name
}

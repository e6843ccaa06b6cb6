// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// GenerateRequestID creates a new random request ID.
func GenerateRequestID() string {
	return uuid.NewString()
}

// ContextWithRequestID returns ctx carrying id. Every line logged through
// Ctx or Fetcher with the returned context includes it.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// ContextWithNewRequestID returns ctx carrying a fresh request ID. The
// snapshot command uses it so CLI runs are traceable like requests.
func ContextWithNewRequestID(ctx context.Context) context.Context {
	return ContextWithRequestID(ctx, GenerateRequestID())
}

// RequestIDFromContext returns the request ID in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Ctx returns the process logger with the request ID from ctx attached.
//
//	logging.Ctx(ctx).Info().Msg("Dashboard served")
//	// {"level":"info","request_id":"uuid","message":"Dashboard served"}
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if id := RequestIDFromContext(ctx); id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	return &l
}

// Fetcher returns a request-scoped logger labelled with the fetcher name, so
// a degraded dashboard tile can be traced to its source and request.
//
//	logging.Fetcher(ctx, "quote").Warn().Str("symbol", sym).Msg("Quote unavailable")
func Fetcher(ctx context.Context, name string) *zerolog.Logger {
	l := Ctx(ctx).With().Str("fetcher", name).Logger()
	return &l
}

// CtxDebug starts a debug level message with context fields.
func CtxDebug(ctx context.Context) *zerolog.Event {
	return Ctx(ctx).Debug()
}

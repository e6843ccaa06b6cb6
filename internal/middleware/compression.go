// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package middleware

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// MinCompressSize is the smallest body that gets gzipped. The dashboard
// payload is usually below it; the buffer keeps small bodies uncompressed.
const MinCompressSize = 1024

// gzipWriterPool pools gzip writers to reduce allocations
var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipResponseWriter buffers the first MinCompressSize bytes and only then
// decides whether to compress.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	buf         []byte
	status      int
	wroteHeader bool
	passthrough bool
	compressing bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = status
	if !bodyAllowed(status) {
		w.passthrough = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	switch {
	case w.passthrough:
		return w.ResponseWriter.Write(b)
	case w.compressing:
		return w.gz.Write(b)
	}

	w.buf = append(w.buf, b...)
	if len(w.buf) >= MinCompressSize {
		if err := w.startGzip(); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}

func (w *gzipResponseWriter) startGzip() error {
	h := w.Header()
	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")
	w.ResponseWriter.WriteHeader(w.status)

	w.gz = gzipWriterPool.Get().(*gzip.Writer)
	w.gz.Reset(w.ResponseWriter)
	w.compressing = true

	_, err := w.gz.Write(w.buf)
	w.buf = nil
	return err
}

// finish flushes a body that stayed under the threshold, or closes the
// gzip stream.
func (w *gzipResponseWriter) finish() {
	switch {
	case w.compressing:
		_ = w.gz.Close() // best-effort, response already sent
		gzipWriterPool.Put(w.gz)
	case w.passthrough:
	default:
		status := w.status
		if !w.wroteHeader {
			status = http.StatusOK
		}
		w.ResponseWriter.WriteHeader(status)
		if len(w.buf) > 0 {
			_, _ = w.ResponseWriter.Write(w.buf)
		}
	}
}

func bodyAllowed(status int) bool {
	return status >= 200 && status != http.StatusNoContent && status != http.StatusNotModified
}

// Compression gzips response bodies of at least MinCompressSize bytes when
// the client sends Accept-Encoding: gzip.
func Compression(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") || r.Method == http.MethodHead {
			next(w, r)
			return
		}

		gzw := &gzipResponseWriter{ResponseWriter: w}
		defer gzw.finish()
		next(gzw, r)
	}
}

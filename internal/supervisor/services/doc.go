// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

// Package services adapts Tickerboard components to suture.Service.
//
//   - HTTPServerService: runs an *http.Server and shuts it down gracefully
//     when the supervisor stops
//   - PollService: calls a function on a fixed interval, used to keep the
//     sensor temperature gauge current
package services

// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

/*
Package supervisor runs Tickerboard's long-lived services under a suture v4
supervisor tree.

	tickerboard (root)
	├── monitor-layer
	│   └── sensor-poller
	└── api-layer
	    └── http-server

Services that return an error or panic are restarted with suture's failure
decay and backoff. Supervisor events are logged through sutureslog, which the
server points at the zerolog bridge from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx) // blocks until ctx is canceled
*/
package supervisor

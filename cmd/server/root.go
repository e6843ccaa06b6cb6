// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tickerboard/internal/config"
	"github.com/tomtom215/tickerboard/internal/logging"
)

// newRootCmd creates the tickerboard command. Running it without a
// subcommand starts the server.
func newRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tickerboard",
		Short:         "Market and weather dashboard backend",
		Long:          "Tickerboard serves market quotes, the host CPU temperature and the current weather as JSON.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "path to a YAML config file (overrides "+config.ConfigPathEnvVar+")")
	cmd.PersistentFlags().String("log-level", "", "log level override: trace, debug, info, warn, error")
	cmd.AddCommand(newServeCmd(), newSnapshotCmd())

	return cmd
}

const rootCmdExample = `  # Start the server with defaults (port 8080)
  tickerboard

  # Start the server from a config file
  tickerboard serve --config /etc/tickerboard/config.yaml

  # Print one dashboard and weather payload and exit
  tickerboard snapshot --lat 34.6937 --lon 135.5023`

// loadConfig applies the persistent flags, loads configuration and
// initializes logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := os.Setenv(config.ConfigPathEnvVar, path); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", config.ConfigPathEnvVar, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})
	return cfg, nil
}

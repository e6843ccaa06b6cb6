// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package main

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomtom215/tickerboard/internal/logging"
	"github.com/tomtom215/tickerboard/internal/models"
	"github.com/tomtom215/tickerboard/internal/validation"
)

// snapshotOutput is what the snapshot command prints.
type snapshotOutput struct {
	Dashboard models.DashboardSnapshot `json:"dashboard"`
	Weather   models.WeatherSnapshot   `json:"weather"`
}

func newSnapshotCmd() *cobra.Command {
	var (
		lat, lon string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch the dashboard and weather payloads once and print them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := url.Values{}
			if cmd.Flags().Changed("lat") {
				params.Set("lat", lat)
			}
			if cmd.Flags().Changed("lon") {
				params.Set("lon", lon)
			}
			q, verr := validation.ParseWeatherQuery(params)
			if verr != nil {
				return verr
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			ctx := logging.ContextWithNewRequestID(cmd.Context())
			out := snapshotOutput{
				Dashboard: a.aggregator.Dashboard(ctx),
				Weather:   a.aggregator.Weather(ctx, q.Lat, q.Lon),
			}

			if !cmd.Flags().Changed("pretty") {
				pretty = isTerminal(cmd.OutOrStdout())
			}

			var data []byte
			if pretty {
				data, err = json.MarshalIndent(out, "", "  ")
			} else {
				data, err = json.Marshal(out)
			}
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVar(&lat, "lat", "", "latitude for the weather payload (default: configured location)")
	cmd.Flags().StringVar(&lon, "lon", "", "longitude for the weather payload (default: configured location)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output (default: true when stdout is a terminal)")

	return cmd
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

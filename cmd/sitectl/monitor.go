// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/site-sync/internal/tui"
)

var monitorRefresh time.Duration

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Open the terminal monitor of the site",
	Long: `Open the terminal monitor of the site.

Keys:
  s  start a sync run
  r  refresh now
  c  copy the last error to the clipboard
  v  show build info
  q  quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, ctx, err := siteAPI(cmd)
		if err != nil {
			return err
		}
		return tui.New(api, buildInfo(), monitorRefresh).Monitor(ctx)
	},
}

func init() {
	monitorCmd.Flags().DurationVar(&monitorRefresh, "refresh", tui.DefaultRefreshInterval, "status poll interval")
	rootCmd.AddCommand(monitorCmd)
}

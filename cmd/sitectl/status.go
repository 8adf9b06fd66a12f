// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/site-sync/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the sync status of the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, ctx, err := siteAPI(cmd)
		if err != nil {
			return err
		}

		status, err := api.SyncStatus(ctx)
		if err != nil {
			return fmt.Errorf("get sync status: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), status)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build of sitectl and of the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := map[string]models.AppBuildInfo{"sitectl": buildInfo()}

		api, ctx, err := siteAPI(cmd)
		if err != nil {
			return err
		}
		if site, err := api.Version(ctx); err == nil {
			out["site"] = site
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "site version unavailable: %v\n", err)
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

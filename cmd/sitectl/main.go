// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command sitectl drives a running site: it shows the sync status, starts
// sync runs and opens the terminal monitor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	siteURL        string
	requestTimeout time.Duration
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Control a running site sync server",
	Long: `sitectl talks to the control API of a running site.

Example usage:
  sitectl status                        # Print the sync status as JSON
  sitectl sync --wait                   # Start a sync run and wait for it
  sitectl monitor                       # Open the terminal monitor
  sitectl --url http://10.0.0.5:8000 status`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteURL, "url", "http://localhost:8000", "site control API address")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo("sitectl", buildVersion, buildDate, buildCommit)
}

// siteAPI returns the site client and the context commands run with.
func siteAPI(cmd *cobra.Command) (adapter.SiteAPI, context.Context, error) {
	api, err := adapter.NewHTTPSiteAPI(siteURL, requestTimeout)
	if err != nil {
		return nil, nil, err
	}

	ctx := cmd.Context()
	if verbose {
		ctx = logger.NewLogger("sitectl").WithContext(ctx)
	}
	return api, ctx, nil
}

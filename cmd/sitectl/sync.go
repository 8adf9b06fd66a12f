// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/models"
)

var errSyncFailed = errors.New("sync run failed")

var (
	syncWait         bool
	syncPollInterval time.Duration
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Start a sync run on the site",
	Long: `Start a sync run on the site.

Without --wait the command returns once the site has accepted the run.
With --wait it polls the site until the run finishes and exits non-zero
when the run failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, ctx, err := siteAPI(cmd)
		if err != nil {
			return err
		}

		before, err := api.SyncStatus(ctx)
		if err != nil {
			return fmt.Errorf("get sync status: %w", err)
		}

		if err = api.TriggerSync(ctx); err != nil {
			if errors.Is(err, adapter.ErrConflict) {
				return errors.New("a sync run is already in progress")
			}
			return fmt.Errorf("start sync: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "sync started")

		if !syncWait {
			return nil
		}
		return waitForSync(ctx, api, lastRunID(before), syncPollInterval, cmd.OutOrStdout())
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&syncWait, "wait", "w", false, "wait for the run to finish")
	syncCmd.Flags().DurationVar(&syncPollInterval, "poll-interval", time.Second, "status poll interval while waiting")
	rootCmd.AddCommand(syncCmd)
}

// waitForSync polls until the site reports a finished run other than
// previousRun and returns errSyncFailed when that run recorded an error.
func waitForSync(ctx context.Context, api adapter.SiteAPI, previousRun string, interval time.Duration, out io.Writer) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		status, err := api.SyncStatus(ctx)
		if err != nil {
			return fmt.Errorf("get sync status: %w", err)
		}
		if status.IsRunning || lastRunID(status) == previousRun {
			continue
		}

		return reportRun(status.LastRun, out)
	}
}

func lastRunID(status models.SyncStatus) string {
	if status.LastRun == nil {
		return ""
	}
	return status.LastRun.ID
}

func reportRun(run *models.SyncLog, out io.Writer) error {
	if run == nil {
		return errors.New("site reports no sync run")
	}
	if run.ErrorMessage != nil {
		code := models.SyncErrorCodeUnknown
		if run.ErrorCode != nil {
			code = *run.ErrorCode
		}
		return fmt.Errorf("%w: %s: %s", errSyncFailed, code, *run.ErrorMessage)
	}

	var took time.Duration
	if run.Finished != nil {
		took = run.Finished.Sub(run.Started).Round(time.Millisecond)
	}
	fmt.Fprintf(out, "sync finished in %s\n", took)
	return nil
}

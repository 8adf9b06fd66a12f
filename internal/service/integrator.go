// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/translator"
	"github.com/MKhiriev/site-sync/models"
)

// IntegrationStrategy decides how failures during integration are handled.
type IntegrationStrategy int

const (
	// InitialSyncStrategy integrates every record in its own transaction.
	// A failing record is counted, its error is stored on the buffer row and
	// integration goes on.
	InitialSyncStrategy IntegrationStrategy = iota
	// SteadyStateStrategy integrates everything in one transaction. The
	// first failure rolls it back and is returned.
	SteadyStateStrategy
)

func (s IntegrationStrategy) String() string {
	if s == SteadyStateStrategy {
		return "steady_state"
	}
	return "initial_sync"
}

// TableResult counts what happened to the records of one table.
type TableResult struct {
	Integrated int64
	Errors     int64
	Ignored    int64
}

// IntegrationResults holds the per table outcome of an integration.
type IntegrationResults struct {
	Tables map[string]TableResult
}

func newIntegrationResults() IntegrationResults {
	return IntegrationResults{Tables: make(map[string]TableResult)}
}

// Errors returns the number of records that failed.
func (r IntegrationResults) Errors() int64 {
	var n int64
	for _, t := range r.Tables {
		n += t.Errors
	}
	return n
}

// Integrated returns the number of records written to the domain tables.
func (r IntegrationResults) Integrated() int64 {
	var n int64
	for _, t := range r.Tables {
		n += t.Integrated
	}
	return n
}

func (r IntegrationResults) update(table string, fn func(*TableResult)) {
	t := r.Tables[table]
	fn(&t)
	r.Tables[table] = t
}

type recordOutcome int

const (
	outcomeIntegrated recordOutcome = iota
	outcomeIgnored
)

// integrationPass is one action integrated for one table.
type integrationPass struct {
	translator translator.Translator
	action     models.SyncBufferAction
}

// Integrator translates pending sync buffer records and writes them to the
// domain tables.
type Integrator struct {
	storage  store.SiteStorage
	registry *translator.Registry
	now      func() time.Time
}

// NewIntegrator creates an integrator using the translators of registry.
func NewIntegrator(storage store.SiteStorage, registry *translator.Registry) *Integrator {
	return &Integrator{
		storage:  storage,
		registry: registry,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Integrate integrates every pending record. Upserts go first with parents
// before children, deletes follow with children before parents and merges
// come last. progress is called with the number of records left.
func (i *Integrator) Integrate(ctx context.Context, strategy IntegrationStrategy, progress func(remaining int64)) (IntegrationResults, error) {
	log := logger.FromContext(ctx)

	remaining, err := i.storage.Repositories().SyncBuffer.CountPending(ctx)
	if err != nil {
		return IntegrationResults{}, fmt.Errorf("count pending records: %w", err)
	}
	progress(remaining)

	log.Info().
		Str("func", "Integrator.Integrate").
		Str("strategy", strategy.String()).
		Int64("pending", remaining).
		Msg("integrating pulled records")

	results := newIntegrationResults()

	switch strategy {
	case SteadyStateStrategy:
		// progress is written through its own connection and must wait for
		// the commit
		err = i.storage.Transaction(ctx, func(ctx context.Context, repos *store.SiteRepositories) error {
			return i.integrateSteadyState(ctx, repos, results, func() { remaining-- })
		})
		if err == nil {
			progress(remaining)
		}
	default:
		err = i.integrateInitial(ctx, results, func() {
			remaining--
			progress(remaining)
		})
	}
	if err != nil {
		return results, err
	}

	for table, r := range results.Tables {
		log.Debug().
			Str("func", "Integrator.Integrate").
			Str("table_name", table).
			Int64("integrated", r.Integrated).
			Int64("errors", r.Errors).
			Int64("ignored", r.Ignored).
			Msg("table integrated")
	}
	return results, nil
}

func (i *Integrator) passes() []integrationPass {
	ordered := i.registry.Ordered()
	reversed := slices.Clone(ordered)
	slices.Reverse(reversed)

	passes := make([]integrationPass, 0, 3*len(ordered))
	for _, t := range ordered {
		passes = append(passes, integrationPass{translator: t, action: models.SyncBufferActionUpsert})
	}
	for _, t := range reversed {
		passes = append(passes, integrationPass{translator: t, action: models.SyncBufferActionDelete})
	}
	for _, t := range ordered {
		passes = append(passes, integrationPass{translator: t, action: models.SyncBufferActionMerge})
	}
	return passes
}

func (i *Integrator) pending(ctx context.Context, repos *store.SiteRepositories, pass integrationPass) ([]models.SyncBufferRow, error) {
	action := pass.action
	rows, err := repos.SyncBuffer.Find(ctx, models.SyncBufferFilter{
		Action:      &action,
		TableNames:  []string{pass.translator.TableName().String()},
		OnlyPending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("read pending %s %s records: %w", pass.translator.TableName(), action, err)
	}
	return rows, nil
}

// orphans returns the pending records no translator handles.
func (i *Integrator) orphans(ctx context.Context, repos *store.SiteRepositories) ([]models.SyncBufferRow, error) {
	rows, err := repos.SyncBuffer.Find(ctx, models.SyncBufferFilter{OnlyPending: true})
	if err != nil {
		return nil, fmt.Errorf("read pending records: %w", err)
	}
	return slices.DeleteFunc(rows, func(r models.SyncBufferRow) bool {
		_, ok := i.registry.Find(r.TableName)
		return ok
	}), nil
}

func (i *Integrator) integrateSteadyState(ctx context.Context, repos *store.SiteRepositories, results IntegrationResults, step func()) error {
	orphans, err := i.orphans(ctx, repos)
	if err != nil {
		return err
	}
	if len(orphans) > 0 {
		return fmt.Errorf("%w: %s", ErrTranslatorNotFound, orphans[0].TableName)
	}

	for _, pass := range i.passes() {
		rows, err := i.pending(ctx, repos, pass)
		if err != nil {
			return err
		}
		for _, row := range rows {
			outcome, err := i.integrateRecord(ctx, repos, pass.translator, row)
			if err != nil {
				return fmt.Errorf("%w: %s %s: %w", ErrIntegrationFailed, row.TableName, row.RecordID, err)
			}
			results.update(row.TableName, outcome.count)
			step()
		}
	}
	return nil
}

func (i *Integrator) integrateInitial(ctx context.Context, results IntegrationResults, step func()) error {
	log := logger.FromContext(ctx)
	repos := i.storage.Repositories()

	orphans, err := i.orphans(ctx, repos)
	if err != nil {
		return err
	}
	for _, row := range orphans {
		log.Warn().
			Str("func", "Integrator.integrateInitial").
			Str("table_name", row.TableName).
			Str("record_id", row.RecordID).
			Msg("no translator for pulled record")
		i.recordFailure(ctx, repos, row, ErrTranslatorNotFound)
		results.update(row.TableName, func(r *TableResult) { r.Errors++ })
		step()
	}

	for _, pass := range i.passes() {
		rows, err := i.pending(ctx, repos, pass)
		if err != nil {
			return err
		}
		for _, row := range rows {
			var outcome recordOutcome
			err = i.storage.Transaction(ctx, func(ctx context.Context, tx *store.SiteRepositories) error {
				outcome, err = i.integrateRecord(ctx, tx, pass.translator, row)
				return err
			})
			if err != nil {
				log.Err(err).
					Str("func", "Integrator.integrateInitial").
					Str("table_name", row.TableName).
					Str("record_id", row.RecordID).
					Msg("failed to integrate record")
				i.recordFailure(ctx, repos, row, err)
				results.update(row.TableName, func(r *TableResult) { r.Errors++ })
			} else {
				results.update(row.TableName, outcome.count)
			}
			step()
		}
	}
	return nil
}

func (i *Integrator) recordFailure(ctx context.Context, repos *store.SiteRepositories, row models.SyncBufferRow, cause error) {
	if err := repos.SyncBuffer.MarkIntegrationError(ctx, row.TableName, row.RecordID, cause.Error()); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "Integrator.recordFailure").
			Str("record_id", row.RecordID).
			Msg("failed to store integration error")
	}
}

func (i *Integrator) integrateRecord(ctx context.Context, repos *store.SiteRepositories, t translator.Translator, row models.SyncBufferRow) (recordOutcome, error) {
	result, err := translatePull(ctx, repos.Rows, t, row)
	if err != nil {
		return 0, err
	}

	switch {
	case !result.Matched():
		return 0, fmt.Errorf("%w: %s not matched by its translator", ErrTranslatorNotFound, row.TableName)
	case result.Ignored():
		reason := result.Reason
		if err = repos.SyncBuffer.MarkIntegrated(ctx, row.TableName, row.RecordID, i.now(), &reason); err != nil {
			return 0, err
		}
		return outcomeIgnored, nil
	}

	meta := models.SyncChange(row.SourceSiteID)
	for _, op := range result.Items {
		if err = op.Apply(ctx, repos.Rows, meta); err != nil {
			return 0, err
		}
	}
	if err = repos.SyncBuffer.MarkIntegrated(ctx, row.TableName, row.RecordID, i.now(), nil); err != nil {
		return 0, err
	}
	return outcomeIntegrated, nil
}

func translatePull(ctx context.Context, rows translator.RowReader, t translator.Translator, row models.SyncBufferRow) (translator.PullResult, error) {
	switch row.Action {
	case models.SyncBufferActionDelete:
		return t.TryTranslateFromDelete(ctx, rows, row)
	case models.SyncBufferActionMerge:
		merger, ok := t.(translator.Merger)
		if !ok {
			return translator.IgnoredPull("merge is not supported for " + row.TableName), nil
		}
		return merger.TryTranslateFromMerge(ctx, rows, row)
	case models.SyncBufferActionUpsert:
		return t.TryTranslateFromUpsert(ctx, rows, row)
	}
	return translator.PullResult{}, errors.New("unknown sync buffer action " + string(row.Action))
}

func (o recordOutcome) count(r *TableResult) {
	if o == outcomeIgnored {
		r.Ignored++
		return
	}
	r.Integrated++
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

// syncLogStepPrefixes maps every step onto its column prefix in sync_log.
// Steps with hasProgress also carry progress_total/progress_done columns.
var syncLogStepPrefixes = []struct {
	step        models.SyncStep
	prefix      string
	hasProgress bool
}{
	{models.SyncStepPrepareInitial, "prepare_initial", false},
	{models.SyncStepPush, "push", true},
	{models.SyncStepPullCentral, "pull_central", true},
	{models.SyncStepPullRemote, "pull_remote", true},
	{models.SyncStepIntegrate, "integrate", true},
}

func syncLogColumns() []string {
	columns := []string{"id", "started_datetime", "finished_datetime"}
	for _, s := range syncLogStepPrefixes {
		columns = append(columns, s.prefix+"_started", s.prefix+"_finished")
		if s.hasProgress {
			columns = append(columns, s.prefix+"_progress_total", s.prefix+"_progress_done")
		}
	}
	return append(columns, "error_message", "error_code")
}

func syncLogValues(l models.SyncLog) []any {
	values := []any{l.ID, l.Started.UTC(), utcPtr(l.Finished)}
	for _, s := range syncLogStepPrefixes {
		step := l.Step(s.step)
		values = append(values, utcPtr(step.Started), utcPtr(step.Finished))
		if s.hasProgress {
			values = append(values, step.Total, step.Done)
		}
	}

	var code *string
	if l.ErrorCode != nil {
		c := string(*l.ErrorCode)
		code = &c
	}
	return append(values, l.ErrorMessage, code)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// buildUpsertSyncLogQuery writes the whole row of a run.
func buildUpsertSyncLogQuery(l models.SyncLog) (string, []any, error) {
	columns := syncLogColumns()

	updates := make([]string, 0, len(columns)-1)
	for _, c := range columns[1:] {
		updates = append(updates, c+" = excluded."+c)
	}

	query, args, err := sqliteSQL.
		Insert("sync_log").
		Columns(columns...).
		Values(syncLogValues(l)...).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildLatestSyncLogQuery selects the most recently started run, optionally
// only among the runs that finished without error.
func buildLatestSyncLogQuery(onlySuccessful bool) (string, []any, error) {
	query := sqliteSQL.Select(syncLogColumns()...).From("sync_log")
	if onlySuccessful {
		query = query.Where(sq.And{
			sq.NotEq{"finished_datetime": nil},
			sq.Eq{"error_message": nil},
		})
	}

	sqlStr, args, err := query.OrderBy("started_datetime DESC").Limit(1).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

type syncLogRepository struct {
	q Querier
}

// NewSyncLogRepository constructs a [SyncLogRepository] running its
// statements on q.
func NewSyncLogRepository(q Querier) SyncLogRepository {
	return &syncLogRepository{q: q}
}

// Upsert writes the current state of a run.
func (r *syncLogRepository) Upsert(ctx context.Context, l models.SyncLog) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSyncLogQuery(l)
	if err != nil {
		log.Err(err).Str("func", "syncLogRepository.Upsert").Msg("failed to create query")
		return err
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "syncLogRepository.Upsert").Str("sync_log_id", l.ID).Msg("failed to upsert sync log")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *syncLogRepository) Latest(ctx context.Context) (*models.SyncLog, error) {
	return r.latest(ctx, false)
}

func (r *syncLogRepository) LatestSuccessful(ctx context.Context) (*models.SyncLog, error) {
	return r.latest(ctx, true)
}

func (r *syncLogRepository) latest(ctx context.Context, onlySuccessful bool) (*models.SyncLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLatestSyncLogQuery(onlySuccessful)
	if err != nil {
		log.Err(err).Str("func", "syncLogRepository.latest").Msg("failed to create query")
		return nil, err
	}

	l, err := scanSyncLog(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "syncLogRepository.latest").Msg("failed to scan sync log")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return l, nil
}

func scanSyncLog(s rowScanner) (*models.SyncLog, error) {
	var (
		l     models.SyncLog
		code  *string
		steps = make([]models.SyncStepLog, len(syncLogStepPrefixes))
	)

	targets := []any{&l.ID, &l.Started, &l.Finished}
	for i, p := range syncLogStepPrefixes {
		targets = append(targets, &steps[i].Started, &steps[i].Finished)
		if p.hasProgress {
			targets = append(targets, &steps[i].Total, &steps[i].Done)
		}
	}
	targets = append(targets, &l.ErrorMessage, &code)

	if err := s.Scan(targets...); err != nil {
		return nil, err
	}

	for i, p := range syncLogStepPrefixes {
		if steps[i] != (models.SyncStepLog{}) {
			l.SetStep(p.step, steps[i])
		}
	}
	if code != nil {
		c := models.SyncErrorCode(*code)
		l.ErrorCode = &c
	}
	return &l, nil
}

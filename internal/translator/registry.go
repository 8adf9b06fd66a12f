// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

// Registry holds the translators in pull dependency order: a table always
// comes after every table it depends on.
type Registry struct {
	ordered []Translator
	byTable map[models.TableName]Translator
}

// NewRegistry orders translators with Kahn's algorithm. Among the tables
// that are ready at the same time the one with the smaller name goes
// first, so the order does not depend on the order of the arguments.
func NewRegistry(translators ...Translator) (*Registry, error) {
	byTable := make(map[models.TableName]Translator, len(translators))
	for _, t := range translators {
		if _, ok := byTable[t.TableName()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTranslator, t.TableName())
		}
		byTable[t.TableName()] = t
	}

	inDegree := make(map[models.TableName]int, len(byTable))
	dependants := make(map[models.TableName][]models.TableName, len(byTable))
	for table, t := range byTable {
		inDegree[table] = len(t.PullDependencies())
		for _, dep := range t.PullDependencies() {
			if _, ok := byTable[dep]; !ok {
				return nil, fmt.Errorf("%w: %s depends on %s", ErrUnknownDependency, table, dep)
			}
			dependants[dep] = append(dependants[dep], table)
		}
	}

	var ready []models.TableName
	for table, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, table)
		}
	}

	ordered := make([]Translator, 0, len(byTable))
	for len(ready) > 0 {
		slices.Sort(ready)
		next := ready[0]
		ready = ready[1:]

		ordered = append(ordered, byTable[next])
		for _, dependant := range dependants[next] {
			inDegree[dependant]--
			if inDegree[dependant] == 0 {
				ready = append(ready, dependant)
			}
		}
	}

	if len(ordered) != len(byTable) {
		var stuck []string
		for table, degree := range inDegree {
			if degree > 0 {
				stuck = append(stuck, table.String())
			}
		}
		slices.Sort(stuck)
		return nil, fmt.Errorf("%w: %s", ErrCircularDependency, strings.Join(stuck, ", "))
	}

	return &Registry{ordered: ordered, byTable: byTable}, nil
}

// Ordered returns the translators with dependencies first.
func (r *Registry) Ordered() []Translator {
	return slices.Clone(r.ordered)
}

// Tables returns the table names in dependency order.
func (r *Registry) Tables() []models.TableName {
	tables := make([]models.TableName, 0, len(r.ordered))
	for _, t := range r.ordered {
		tables = append(tables, t.TableName())
	}
	return tables
}

// Find returns the translator of table.
func (r *Registry) Find(table string) (Translator, bool) {
	t, ok := r.byTable[models.TableName(table)]
	return t, ok
}

// TranslateChangelog asks every translator about entry and returns all the
// push records they produce. An entry no translator matches yields none.
func (r *Registry) TranslateChangelog(ctx context.Context, rows RowReader, entry models.Changelog) ([]models.PushRecord, error) {
	log := logger.FromContext(ctx)

	var records []models.PushRecord
	for _, t := range r.ordered {
		var (
			result PushResult
			err    error
		)
		switch entry.RowAction {
		case models.RowActionDelete:
			result, err = t.TryTranslateToDelete(ctx, rows, entry)
		default:
			result, err = t.TryTranslateToUpsert(ctx, rows, entry)
		}
		if err != nil {
			return nil, fmt.Errorf("translate changelog %d (%s %s): %w", entry.Cursor, entry.TableName, entry.RecordID, err)
		}

		switch {
		case result.Ignored():
			log.Debug().
				Str("func", "Registry.TranslateChangelog").
				Int64("cursor", entry.Cursor).
				Str("table_name", entry.TableName.String()).
				Str("reason", result.Reason).
				Msg("changelog entry ignored by translator")
		case result.Matched():
			records = append(records, result.Items...)
		}
	}

	for i := range records {
		records[i].SyncID = recordSyncID(entry, i)
	}
	return records, nil
}

// TranslateChangelogs translates a batch of entries in cursor order.
func (r *Registry) TranslateChangelogs(ctx context.Context, rows RowReader, entries []models.Changelog) ([]models.PushRecord, error) {
	var records []models.PushRecord
	for _, entry := range entries {
		translated, err := r.TranslateChangelog(ctx, rows, entry)
		if err != nil {
			return nil, err
		}
		records = append(records, translated...)
	}
	return records, nil
}

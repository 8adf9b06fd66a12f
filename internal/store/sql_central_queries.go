// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createSite = `
		INSERT INTO sites (site_id, site_uuid, name, password_hash)
		VALUES ($1, $2, $3, $4);`

	findSiteByName = `
		SELECT site_id, site_uuid, name, password_hash, hardware_id, initialised, status, created_at
		FROM sites
		WHERE name = $1;`

	findSiteByID = `
		SELECT site_id, site_uuid, name, password_hash, hardware_id, initialised, status, created_at
		FROM sites
		WHERE site_id = $1;`

	setSiteInitialised = `UPDATE sites SET initialised = TRUE, hardware_id = $2 WHERE site_id = $1;`

	setSiteStatus = `UPDATE sites SET status = $2 WHERE site_id = $1;`

	assignStoreToSite = `
		INSERT INTO store_sites (store_id, name_id, site_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_id) DO UPDATE SET
			name_id = EXCLUDED.name_id,
			site_id = EXCLUDED.site_id;`

	siteStoreIDs = `SELECT store_id FROM store_sites WHERE site_id = $1 ORDER BY store_id;`

	appendCentralRecord = `
		INSERT INTO central_records (table_name, record_id, data)
		VALUES ($1, $2, $3)
		RETURNING cursor;`

	centralRecordsAfter = `
		SELECT cursor, table_name, record_id, data
		FROM central_records
		WHERE cursor > $1
		ORDER BY cursor
		LIMIT $2;`

	maxCentralCursor = `SELECT COALESCE(MAX(cursor), 0) FROM central_records;`

	upsertRemoteRecord = `
		INSERT INTO remote_records (table_name, record_id, action, store_id, name_id, source_site_id, data, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (table_name, record_id) DO UPDATE SET
			action = EXCLUDED.action,
			store_id = EXCLUDED.store_id,
			name_id = EXCLUDED.name_id,
			source_site_id = EXCLUDED.source_site_id,
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at;`

	getRemoteRecord = `
		SELECT table_name, record_id, action, store_id, name_id, source_site_id, data, updated_at
		FROM remote_records
		WHERE table_name = $1 AND record_id = $2;`

	recordPushReceipt = `
		INSERT INTO push_receipts (site_id, sync_id, table_name)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;`

	addPendingPush = `
		INSERT INTO pending_pushes (site_id, table_name, record_id)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;`

	drainPendingPushes = `DELETE FROM pending_pushes WHERE site_id = $1 RETURNING table_name, record_id;`

	clearPushReceipts = `DELETE FROM push_receipts WHERE site_id = $1;`

	enqueueSiteRecord = `
		INSERT INTO site_queue (sync_id, site_id, table_name, record_id, action, data, source_site_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	nextQueuedRecords = `
		SELECT sync_id, table_name, record_id, action, data, source_site_id
		FROM site_queue
		WHERE site_id = $1
		ORDER BY queue_id
		LIMIT $2;`

	siteQueueLength = `SELECT COUNT(*) FROM site_queue WHERE site_id = $1;`
)

// buildOwnersQuery selects the sites owning a store id or a store name id.
func buildOwnersQuery(storeID, nameID *string) (string, []any, error) {
	or := sq.Or{}
	if storeID != nil {
		or = append(or, sq.Eq{"store_id": *storeID})
	}
	if nameID != nil {
		or = append(or, sq.Eq{"name_id": *nameID})
	}

	query, args, err := postgresSQL.
		Select("site_id").
		Distinct().
		From("store_sites").
		Where(or).
		OrderBy("site_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildRemoteRecordsForStoresQuery selects the live remote records of the
// given stores.
func buildRemoteRecordsForStoresQuery(storeIDs []string) (string, []any, error) {
	query, args, err := postgresSQL.
		Select("table_name", "record_id", "action", "store_id", "name_id", "source_site_id", "data", "updated_at").
		From("remote_records").
		Where(sq.Eq{"store_id": storeIDs}).
		Where(sq.NotEq{"action": "delete"}).
		OrderBy("updated_at", "table_name", "record_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildAcknowledgeQuery deletes acknowledged entries from a site queue.
func buildAcknowledgeQuery(siteID int64, syncIDs []string) (string, []any, error) {
	query, args, err := postgresSQL.
		Delete("site_queue").
		Where(sq.Eq{"site_id": siteID}).
		Where(sq.Eq{"sync_id": syncIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

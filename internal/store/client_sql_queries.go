// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-records-sync/models"
)

const (
	entitiesTable       = "entities"
	pendingChangesTable = "pending_changes"

	// rows per multi-row INSERT and ids per IN list
	writeBatchSize = 200
)

var (
	entityColumns        = []string{"id", "updated_at", "payload"}
	pendingChangeColumns = []string{
		"seq", "tenant_id", "collection", "entity_id", "operation",
		"payload", "created_at", "revision", "attempts", "last_error",
	}
)

const upsertEntitySuffix = `ON CONFLICT (tenant_id, collection, id) DO UPDATE SET
		updated_at = excluded.updated_at,
		payload = excluded.payload`

// querier is implemented by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func payloadArg(p json.RawMessage) any {
	if len(p) == 0 {
		return nil
	}
	return string(p)
}

func payloadValue(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}

func buildSelectEntitiesQuery(b sq.StatementBuilderType, tenantID, collection string, ids []string) (string, []any, error) {
	where := sq.Eq{"tenant_id": tenantID, "collection": collection}
	if ids != nil {
		where["id"] = ids
	}

	query, args, err := b.Select(entityColumns...).
		From(entitiesTable).
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertEntitiesQuery(b sq.StatementBuilderType, tenantID, collection string, entities []models.Entity) (string, []any, error) {
	insert := b.Insert(entitiesTable).
		Columns("tenant_id", "collection", "id", "updated_at", "payload")
	for _, e := range entities {
		insert = insert.Values(tenantID, collection, e.ID, e.UpdatedAt, payloadArg(e.Payload))
	}

	query, args, err := insert.Suffix(upsertEntitySuffix).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteEntitiesQuery(b sq.StatementBuilderType, tenantID, collection string, ids []string) (string, []any, error) {
	query, args, err := b.Delete(entitiesTable).
		Where(sq.Eq{"tenant_id": tenantID, "collection": collection, "id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPendingDeletesQuery(b sq.StatementBuilderType, tenantID, collection string, ids []string) (string, []any, error) {
	query, args, err := b.Select("entity_id").
		From(pendingChangesTable).
		Where(sq.Eq{
			"tenant_id":  tenantID,
			"collection": collection,
			"operation":  string(models.OperationDelete),
			"entity_id":  ids,
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func scanEntities(rows *sql.Rows) ([]models.Entity, error) {
	entities := make([]models.Entity, 0, 16)
	for rows.Next() {
		var (
			e       models.Entity
			payload []byte
		)
		if err := rows.Scan(&e.ID, &e.UpdatedAt, &payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.Payload = payloadValue(payload)
		entities = append(entities, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return entities, nil
}

func scanPendingChange(scan func(dest ...any) error) (models.PendingChange, error) {
	var (
		c         models.PendingChange
		payload   []byte
		createdAt int64
	)
	err := scan(&c.Seq, &c.TenantID, &c.Collection, &c.EntityID, &c.Operation,
		&payload, &createdAt, &c.Revision, &c.Attempts, &c.LastError)
	if err != nil {
		return models.PendingChange{}, err
	}

	c.Payload = payloadValue(payload)
	c.CreatedAt = time.Unix(0, createdAt).UTC()
	return c, nil
}

// batches splits n items into [start, end) windows of at most size items.
func batches(n, size int) [][2]int {
	var out [][2]int
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

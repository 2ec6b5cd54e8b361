// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/models"
)

const recordsTable = "records"

var recordColumns = []string{"collection", "id", "updated_at", "deleted", "payload"}

const upsertRecordSuffix = `ON CONFLICT (tenant_id, collection, id) DO UPDATE SET
		updated_at = GREATEST(EXCLUDED.updated_at, records.updated_at + 1),
		deleted = EXCLUDED.deleted,
		payload = EXCLUDED.payload
	RETURNING id, updated_at, deleted, payload`

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. All tenants share the "records" table.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// FetchCollections returns every record of the requested collections ordered
// by collection and id.
func (r *recordRepository) FetchCollections(ctx context.Context, tenantID string, collections []string) (map[string][]models.Entity, error) {
	log := logger.FromContext(ctx)

	builder := r.builder.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"tenant_id": tenantID})
	if len(collections) > 0 {
		builder = builder.Where(sq.Eq{"collection": collections})
	}

	query, args, err := builder.OrderBy("collection", "id").ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.FetchCollections").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.FetchCollections").
			Str("tenant_id", tenantID).
			Strs("collections", collections).
			Msg("failed to execute query for fetching collections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make(map[string][]models.Entity, len(collections))
	for _, c := range collections {
		result[c] = []models.Entity{}
	}

	for rows.Next() {
		var (
			collection string
			e          models.Entity
			payload    []byte
		)
		if err = rows.Scan(&collection, &e.ID, &e.UpdatedAt, &e.Deleted, &payload); err != nil {
			log.Err(err).
				Str("func", "recordRepository.FetchCollections").
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.Payload = payloadValue(payload)
		result[collection] = append(result[collection], e)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.FetchCollections").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// FetchChunk counts the collection and returns the page [Offset, Offset+Limit)
// ordered by id.
func (r *recordRepository) FetchChunk(ctx context.Context, req models.ChunkRequest) ([]models.Entity, int, error) {
	log := logger.FromContext(ctx)

	where := sq.And{sq.Eq{"tenant_id": req.TenantID}, sq.Eq{"collection": req.Collection}}

	countQuery, countArgs, err := r.builder.Select("COUNT(*)").
		From(recordsTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "recordRepository.FetchChunk").
			Str("collection", req.Collection).
			Msg("failed to count collection")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := r.builder.Select("id", "updated_at", "deleted", "payload").
		From(recordsTable).
		Where(where).
		OrderBy("id").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.FetchChunk").
			Str("collection", req.Collection).
			Int("limit", req.Limit).
			Int("offset", req.Offset).
			Msg("failed to execute query for fetching chunk")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]models.Entity, 0, req.Limit)
	for rows.Next() {
		var (
			e       models.Entity
			payload []byte
		)
		if err = rows.Scan(&e.ID, &e.UpdatedAt, &e.Deleted, &payload); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.Payload = payloadValue(payload)
		entities = append(entities, e)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, total, nil
}

// ApplyChange upserts the record of change. A delete keeps the row as a
// tombstone with an empty payload so that clients learn about it.
func (r *recordRepository) ApplyChange(ctx context.Context, tenantID string, change models.PushRequest, updatedAt int64) (models.Entity, error) {
	log := logger.FromContext(ctx)

	deleted := change.Operation == models.OperationDelete
	payload := payloadArg(change.Payload)
	if deleted {
		payload = nil
	}

	query, args, err := r.builder.Insert(recordsTable).
		Columns("tenant_id", "collection", "id", "updated_at", "deleted", "payload").
		Values(tenantID, change.Collection, change.EntityID, updatedAt, deleted, payload).
		Suffix(upsertRecordSuffix).
		ToSql()
	if err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored models.Entity
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		var raw []byte
		if scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&stored.ID, &stored.UpdatedAt, &stored.Deleted, &raw); scanErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}
		stored.Payload = payloadValue(raw)
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ApplyChange").
			Str("tenant_id", tenantID).
			Str("collection", change.Collection).
			Str("entity_id", change.EntityID).
			Str("operation", string(change.Operation)).
			Msg("failed to apply pushed change")
		return models.Entity{}, err
	}

	return stored, nil
}

func (r *recordRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

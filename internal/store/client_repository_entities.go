package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/models"
)

// localRepository is the SQLite implementation of [LocalStore].
type localRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalRepository constructs a [LocalStore] over a migrated SQLite
// handle.
func NewLocalRepository(db *DB, logger *logger.Logger) LocalStore {
	return &localRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localRepository) GetAll(ctx context.Context, tenantID, collection string) ([]models.Entity, error) {
	return l.selectEntities(ctx, l.DB.DB, tenantID, collection, nil)
}

func (l *localRepository) Get(ctx context.Context, tenantID, collection, id string) (models.Entity, error) {
	entities, err := l.selectEntities(ctx, l.DB.DB, tenantID, collection, []string{id})
	if err != nil {
		return models.Entity{}, err
	}
	if len(entities) == 0 {
		return models.Entity{}, fmt.Errorf("%w: %s/%s", ErrEntityNotFound, collection, id)
	}

	return entities[0], nil
}

func (l *localRepository) Upsert(ctx context.Context, tenantID, collection string, entities ...models.Entity) error {
	if len(entities) == 0 {
		return nil
	}

	return l.inTx(ctx, func(tx *sql.Tx) error {
		return l.upsertEntities(ctx, tx, tenantID, collection, entities)
	})
}

func (l *localRepository) Delete(ctx context.Context, tenantID, collection string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	return l.inTx(ctx, func(tx *sql.Tx) error {
		return l.deleteEntities(ctx, tx, tenantID, collection, ids)
	})
}

func (l *localRepository) ApplyMerge(ctx context.Context, tenantID, collection string, remote []models.Entity, merge MergeFunc) (models.MergeResult, error) {
	log := logger.FromContext(ctx)

	var result models.MergeResult
	err := l.inTx(ctx, func(tx *sql.Tx) error {
		deleted, err := l.selectPendingDeletes(ctx, tx, tenantID, collection, models.EntityIDs(remote))
		if err != nil {
			return err
		}
		kept, withheld := withholdDeleted(remote, deleted)

		local, err := l.selectEntities(ctx, tx, tenantID, collection, models.EntityIDs(kept))
		if err != nil {
			return err
		}

		result = merge(local, kept)
		result.Skipped += withheld

		if err = l.upsertEntities(ctx, tx, tenantID, collection, result.Upserted); err != nil {
			return err
		}
		return l.deleteEntities(ctx, tx, tenantID, collection, result.Removed)
	})
	if err != nil {
		log.Err(err).
			Str("func", "localRepository.ApplyMerge").
			Str("collection", collection).
			Int("remote", len(remote)).
			Msg("failed to apply merged chunk")
		return models.MergeResult{}, err
	}

	return result, nil
}

func (l *localRepository) SetUpdatedAt(ctx context.Context, tenantID, collection, id string, updatedAt int64) error {
	query, args, err := l.builder.Update(entitiesTable).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"tenant_id": tenantID, "collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s/%s", ErrEntityNotFound, collection, id)
	}

	return nil
}

func (l *localRepository) Enqueue(ctx context.Context, change models.PendingChange) (models.PendingChange, error) {
	if err := validateChange(change); err != nil {
		return models.PendingChange{}, err
	}

	var stored models.PendingChange
	err := l.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		stored, err = l.enqueue(ctx, tx, change)
		return err
	})

	return stored, err
}

func (l *localRepository) RecordLocalChange(ctx context.Context, change models.PendingChange, updatedAt int64) (models.PendingChange, error) {
	log := logger.FromContext(ctx)

	if err := validateChange(change); err != nil {
		return models.PendingChange{}, err
	}

	var stored models.PendingChange
	err := l.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		switch change.Operation {
		case models.OperationDelete:
			err = l.deleteEntities(ctx, tx, change.TenantID, change.Collection, []string{change.EntityID})
		default:
			entity := models.Entity{ID: change.EntityID, UpdatedAt: updatedAt, Payload: change.Payload}
			err = l.upsertEntities(ctx, tx, change.TenantID, change.Collection, []models.Entity{entity})
		}
		if err != nil {
			return err
		}

		stored, err = l.enqueue(ctx, tx, change)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "localRepository.RecordLocalChange").
			Str("collection", change.Collection).
			Str("entity_id", change.EntityID).
			Msg("failed to record local change")
		return models.PendingChange{}, err
	}

	return stored, nil
}

func (l *localRepository) List(ctx context.Context, tenantID string) ([]models.PendingChange, error) {
	query, args, err := l.builder.Select(pendingChangeColumns...).
		From(pendingChangesTable).
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	changes := make([]models.PendingChange, 0, 8)
	for rows.Next() {
		c, err := scanPendingChange(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		changes = append(changes, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}

func (l *localRepository) Ack(ctx context.Context, change models.PendingChange) (bool, error) {
	query, args, err := l.builder.Delete(pendingChangesTable).
		Where(sq.Eq{"seq": change.Seq, "revision": change.Revision}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n > 0, nil
}

func (l *localRepository) MarkFailed(ctx context.Context, change models.PendingChange, reason string) error {
	query, args, err := l.builder.Update(pendingChangesTable).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", reason).
		Where(sq.Eq{"seq": change.Seq}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localRepository) Count(ctx context.Context, tenantID string) (int, error) {
	query, args, err := l.builder.Select("COUNT(*)").
		From(pendingChangesTable).
		Where(sq.Eq{"tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = l.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func (l *localRepository) Close() error {
	return l.DB.Close()
}

// enqueue inserts change or folds it into the queued row of the same entity.
func (l *localRepository) enqueue(ctx context.Context, q querier, change models.PendingChange) (models.PendingChange, error) {
	query, args, err := l.builder.Select(pendingChangeColumns...).
		From(pendingChangesTable).
		Where(sq.Eq{
			"tenant_id":  change.TenantID,
			"collection": change.Collection,
			"entity_id":  change.EntityID,
		}).
		ToSql()
	if err != nil {
		return models.PendingChange{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	existing, err := scanPendingChange(q.QueryRowContext(ctx, query, args...).Scan)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return l.insertChange(ctx, q, change)
	case err != nil:
		return models.PendingChange{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	folded := foldChange(existing, change)
	query, args, err = l.builder.Update(pendingChangesTable).
		Set("operation", folded.Operation).
		Set("payload", payloadArg(folded.Payload)).
		Set("revision", folded.Revision).
		Where(sq.Eq{"seq": folded.Seq}).
		ToSql()
	if err != nil {
		return models.PendingChange{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return models.PendingChange{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return folded, nil
}

func (l *localRepository) insertChange(ctx context.Context, q querier, change models.PendingChange) (models.PendingChange, error) {
	if change.CreatedAt.IsZero() {
		change.CreatedAt = l.now().UTC()
	}
	change.Revision = 1
	change.Attempts = 0
	change.LastError = ""
	if change.Operation == models.OperationDelete {
		change.Payload = nil
	}

	query, args, err := l.builder.Insert(pendingChangesTable).
		Columns("tenant_id", "collection", "entity_id", "operation", "payload", "created_at", "revision").
		Values(change.TenantID, change.Collection, change.EntityID, change.Operation,
			payloadArg(change.Payload), change.CreatedAt.UnixNano(), change.Revision).
		ToSql()
	if err != nil {
		return models.PendingChange{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return models.PendingChange{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if change.Seq, err = res.LastInsertId(); err != nil {
		return models.PendingChange{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return change, nil
}

func (l *localRepository) selectEntities(ctx context.Context, q querier, tenantID, collection string, ids []string) ([]models.Entity, error) {
	if ids == nil {
		return l.queryEntities(ctx, q, tenantID, collection, nil)
	}

	out := make([]models.Entity, 0, len(ids))
	for _, w := range batches(len(ids), writeBatchSize) {
		part, err := l.queryEntities(ctx, q, tenantID, collection, ids[w[0]:w[1]])
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

// selectPendingDeletes returns the ids among ids that have a queued delete.
func (l *localRepository) selectPendingDeletes(ctx context.Context, q querier, tenantID, collection string, ids []string) (map[string]struct{}, error) {
	deleted := make(map[string]struct{})
	for _, w := range batches(len(ids), writeBatchSize) {
		query, args, err := buildSelectPendingDeletesQuery(l.builder, tenantID, collection, ids[w[0]:w[1]])
		if err != nil {
			return nil, err
		}

		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		for rows.Next() {
			var id string
			if err = rows.Scan(&id); err != nil {
				rows.Close()
				return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			deleted[id] = struct{}{}
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}
	return deleted, nil
}

func (l *localRepository) queryEntities(ctx context.Context, q querier, tenantID, collection string, ids []string) ([]models.Entity, error) {
	query, args, err := buildSelectEntitiesQuery(l.builder, tenantID, collection, ids)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanEntities(rows)
}

func (l *localRepository) upsertEntities(ctx context.Context, q querier, tenantID, collection string, entities []models.Entity) error {
	for _, e := range entities {
		if !e.Valid() {
			return ErrInvalidEntity
		}
	}

	for _, w := range batches(len(entities), writeBatchSize) {
		query, args, err := buildUpsertEntitiesQuery(l.builder, tenantID, collection, entities[w[0]:w[1]])
		if err != nil {
			return err
		}
		if _, err = q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

func (l *localRepository) deleteEntities(ctx context.Context, q querier, tenantID, collection string, ids []string) error {
	for _, w := range batches(len(ids), writeBatchSize) {
		query, args, err := buildDeleteEntitiesQuery(l.builder, tenantID, collection, ids[w[0]:w[1]])
		if err != nil {
			return err
		}
		if _, err = q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

package store

import (
	"context"

	"github.com/MKhiriev/go-records-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// MergeFunc reconciles the local copies of a set of entities with their
// remote versions.
type MergeFunc func(local, remote []models.Entity) models.MergeResult

// EntityStore is the durable local copy of the tenant's collections.
// Implementations are safe for concurrent use.
type EntityStore interface {
	GetAll(ctx context.Context, tenantID, collection string) ([]models.Entity, error)
	Get(ctx context.Context, tenantID, collection, id string) (models.Entity, error)
	Upsert(ctx context.Context, tenantID, collection string, entities ...models.Entity) error
	Delete(ctx context.Context, tenantID, collection string, ids ...string) error

	// ApplyMerge loads the local copies of the remote ids, runs merge and
	// writes its Upserted and Removed sets, all in one atomic step. The
	// returned result's Merged covers only the ids of remote. Remote copies
	// of entities with a queued delete are not merged and count as Skipped.
	ApplyMerge(ctx context.Context, tenantID, collection string, remote []models.Entity, merge MergeFunc) (models.MergeResult, error)

	// SetUpdatedAt replaces the version marker of a stored entity, e.g. with
	// the server timestamp of an acknowledged push.
	SetUpdatedAt(ctx context.Context, tenantID, collection, id string, updatedAt int64) error
}

// PendingChangeQueue is the ordered log of local mutations awaiting
// acknowledgment. It holds at most one change per (tenant, collection,
// entity).
type PendingChangeQueue interface {
	// Enqueue adds a change or folds it into the queued one for the same
	// entity (see [models.Operation.Escalate]). The folded change keeps its
	// position and gets a new revision.
	Enqueue(ctx context.Context, change models.PendingChange) (models.PendingChange, error)

	// List returns the tenant's changes in creation order.
	List(ctx context.Context, tenantID string) ([]models.PendingChange, error)

	// Ack removes a pushed change. It returns false, and keeps the row, when
	// the change was superseded after it was listed.
	Ack(ctx context.Context, change models.PendingChange) (bool, error)

	// MarkFailed records a failed push attempt.
	MarkFailed(ctx context.Context, change models.PendingChange, reason string) error

	// Count returns the number of queued changes of the tenant.
	Count(ctx context.Context, tenantID string) (int, error)
}

// LocalStore is the full client storage: entities, the pending queue and
// the combined local mutation.
type LocalStore interface {
	EntityStore
	PendingChangeQueue

	// RecordLocalChange applies a local mutation to the entity table and
	// enqueues it in one atomic step. Create and update upsert the entity
	// with change.Payload stamped at updatedAt; delete removes it.
	RecordLocalChange(ctx context.Context, change models.PendingChange, updatedAt int64) (models.PendingChange, error)

	Close() error
}

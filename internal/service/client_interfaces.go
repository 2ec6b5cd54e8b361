package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-records-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// StateSink receives merged snapshots for the host's in-memory state. The
// snapshots are private copies; the sink may keep them.
type StateSink interface {
	Apply(snapshot models.CollectionSnapshot)
}

// LoadRequest selects the collection the [ChunkedLoader] pages through.
type LoadRequest struct {
	TenantID   string
	Collection string
	// ChunkSize is clamped to [1, models.MaxChunkSize]; zero means
	// models.DefaultChunkSize.
	ChunkSize int
}

// LoadedChunk is one page delivered by the [ChunkedLoader].
type LoadedChunk struct {
	Collection string
	Offset     int
	Entities   []models.Entity
	Progress   models.Progress
	// Final is set on the last page of the collection.
	Final bool
}

// LoadResult is what a chunked load accumulated.
type LoadResult struct {
	Entities []models.Entity
	Progress models.Progress
	Requests int
	// Partial is set when the load stopped before the last page.
	Partial bool
}

// ChunkFunc is called after every page, in offset order. A non-nil error
// stops the load.
type ChunkFunc func(ctx context.Context, chunk LoadedChunk) error

// ChunkedLoader drives paginated retrieval of one collection.
type ChunkedLoader interface {
	// Load fetches every page of req.Collection. When a page exhausts its
	// retries, Load returns what it loaded so far together with an error
	// wrapping adapter.ErrTransport.
	Load(ctx context.Context, req LoadRequest, onChunk ChunkFunc) (LoadResult, error)
}

// ClientSyncService runs sync sessions: upstream push, critical fetch,
// then background chunked load.
type ClientSyncService interface {
	// Sync runs one session for tenantID. If a session is already active for
	// the tenant the call returns immediately with report.Coalesced set and
	// a nil error.
	Sync(ctx context.Context, tenantID string) (models.SyncReport, error)

	// Cancel aborts the active session of tenantID at its next yield point.
	// It reports whether a session was active.
	Cancel(tenantID string) bool

	// Session returns the state of the active session of tenantID.
	Session(tenantID string) (models.SyncSession, bool)
}

// ClientSyncJob runs [ClientSyncService.Sync] in the background.
type ClientSyncJob interface {
	// Start syncs immediately, then every interval and on every Trigger.
	// Any previously running job is stopped first.
	Start(ctx context.Context, tenantID string, interval time.Duration)

	// Trigger requests a sync now (authentication completed, reconnect). It
	// never blocks; requests made while a sync is pending collapse.
	Trigger()

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// LastReport returns the report of the most recent finished run.
	LastReport() (models.SyncReport, bool)
}

// ClientEntityService is the local mutation surface of the host
// application. Every write lands in the local store and the pending change
// queue in one step; the next sync pushes it.
type ClientEntityService interface {
	// Put creates the entity, or updates it when the id already exists
	// locally. An empty id is replaced by a generated one.
	Put(ctx context.Context, tenantID, collection string, entity models.Entity) (models.Entity, error)

	// Delete removes the entity locally and queues the remote delete.
	Delete(ctx context.Context, tenantID, collection, id string) error

	Get(ctx context.Context, tenantID, collection, id string) (models.Entity, error)
	List(ctx context.Context, tenantID, collection string) ([]models.Entity, error)

	// Pending returns the number of changes waiting for upstream.
	Pending(ctx context.Context, tenantID string) (int, error)
}

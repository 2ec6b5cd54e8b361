// Package store holds the persistence layer of both binaries: the record
// repository of the reference server (PostgreSQL) and the local entity store
// plus pending change queue of the client (SQLite or in-memory).
package store

import (
	"context"

	"github.com/MKhiriev/go-records-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_repository_mock.go -package=mock

// RecordRepository is the authoritative remote store served by the
// reference server.
type RecordRepository interface {
	// FetchCollections returns the full content of each requested collection,
	// tombstones included. An empty list selects every collection of the
	// tenant. Requested collections without rows map to an empty slice.
	FetchCollections(ctx context.Context, tenantID string, collections []string) (map[string][]models.Entity, error)

	// FetchChunk returns one page of a collection ordered by id together with
	// the number of records in the collection.
	FetchChunk(ctx context.Context, req models.ChunkRequest) ([]models.Entity, int, error)

	// ApplyChange writes a pushed change. Deletes leave a tombstone. The
	// stored version marker is max(updatedAt, previous+1) and is returned
	// with the entity.
	ApplyChange(ctx context.Context, tenantID string, change models.PushRequest, updatedAt int64) (models.Entity, error)

	// Ping reports whether the database is reachable.
	Ping(ctx context.Context) error
}

package service

import (
	"context"

	"github.com/MKhiriev/go-records-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// RecordService is the authoritative side of the sync protocol served by the
// reference server. Every method works on the tenant carried in the request.
type RecordService interface {
	// FetchCollections returns whole collections. An empty req.Collections
	// selects every collection the tenant has records in.
	FetchCollections(ctx context.Context, req models.FetchRequest) (models.FetchResponse, error)

	// FetchChunk returns one page of a collection. The limit is clamped to
	// [1, models.MaxChunkSize].
	FetchChunk(ctx context.Context, req models.ChunkRequest) (models.ChunkResponse, error)

	// ApplyChange stores a pushed change and stamps it with the server clock.
	// Invalid changes return a validation error and are not stored.
	ApplyChange(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

type AuthService interface {
	// CreateToken issues a signed token whose subject is tenantID.
	CreateToken(ctx context.Context, tenantID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction the sync engine
// uses to talk to the authoritative remote store.
//
// The primary abstraction is [RemoteAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes so that callers can use [errors.Is] to tell retryable
// failures ([ErrTransport]) from terminal ones ([ErrUnauthorized]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-records-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter performs authenticated calls against the remote store.
// Implementations are safe for concurrent use.
type RemoteAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// TenantID returns the tenant encoded in the subject of the current token.
	TenantID() (string, error)

	// FetchCollections returns whole collections in a single request. An
	// empty req.Collections asks for every collection.
	FetchCollections(ctx context.Context, req models.FetchRequest) (models.FetchResponse, error)

	// FetchChunk returns one page of a collection. Returns
	// [ErrChunkedUnsupported] when the remote has no paginated endpoint.
	FetchChunk(ctx context.Context, req models.ChunkRequest) (models.ChunkResponse, error)

	// Push sends one pending change upstream. A change the remote refused is
	// reported as a response with Accepted set to false, not as an error.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)
}

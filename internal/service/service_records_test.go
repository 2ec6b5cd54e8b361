package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/models"
)

// stubRecordRepository records the arguments of the last call and returns
// canned results.
type stubRecordRepository struct {
	collections map[string][]models.Entity
	page        []models.Entity
	total       int
	err         error

	gotTenant      string
	gotCollections []string
	gotChunk       models.ChunkRequest
	gotChange      models.PushRequest
	gotUpdatedAt   int64
	calls          int
}

func (s *stubRecordRepository) FetchCollections(_ context.Context, tenantID string, collections []string) (map[string][]models.Entity, error) {
	s.calls++
	s.gotTenant, s.gotCollections = tenantID, collections
	return s.collections, s.err
}

func (s *stubRecordRepository) FetchChunk(_ context.Context, req models.ChunkRequest) ([]models.Entity, int, error) {
	s.calls++
	s.gotChunk = req
	return s.page, s.total, s.err
}

func (s *stubRecordRepository) ApplyChange(_ context.Context, tenantID string, change models.PushRequest, updatedAt int64) (models.Entity, error) {
	s.calls++
	s.gotTenant, s.gotChange, s.gotUpdatedAt = tenantID, change, updatedAt
	if s.err != nil {
		return models.Entity{}, s.err
	}
	return models.Entity{ID: change.EntityID, UpdatedAt: updatedAt + 1, Payload: change.Payload}, nil
}

func (s *stubRecordRepository) Ping(context.Context) error {
	return s.err
}

func newTestRecordService(repo *stubRecordRepository, collections ...string) *recordService {
	svc := NewRecordService(repo, config.Sync{Collections: collections}, logger.Nop()).(*recordService)
	svc.now = func() time.Time { return time.UnixMilli(5000) }
	return svc
}

// ── FetchCollections ────────────────────────────────────────────────────────

func TestRecordService_FetchCollections(t *testing.T) {
	repo := &stubRecordRepository{collections: map[string][]models.Entity{"accounts": {ent("a", 1, `{}`)}}}
	svc := newTestRecordService(repo)

	resp, err := svc.FetchCollections(context.Background(), models.FetchRequest{TenantID: "t1", Collections: []string{"accounts"}})

	require.NoError(t, err)
	assert.Len(t, resp["accounts"], 1)
	assert.Equal(t, "t1", repo.gotTenant)
	assert.Equal(t, []string{"accounts"}, repo.gotCollections)
}

func TestRecordService_FetchCollections_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.FetchRequest
		wantErr error
	}{
		{name: "empty tenant", req: models.FetchRequest{Collections: []string{"accounts"}}, wantErr: ErrEmptyTenantID},
		{name: "empty collection name", req: models.FetchRequest{TenantID: "t1", Collections: []string{""}}, wantErr: ErrEmptyCollection},
		{name: "unknown collection", req: models.FetchRequest{TenantID: "t1", Collections: []string{"secrets"}}, wantErr: ErrUnknownCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRecordRepository{}
			svc := newTestRecordService(repo, "accounts", "orders")

			_, err := svc.FetchCollections(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestRecordService_FetchCollections_RepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := newTestRecordService(&stubRecordRepository{err: dbErr})

	_, err := svc.FetchCollections(context.Background(), models.FetchRequest{TenantID: "t1"})

	assert.ErrorIs(t, err, dbErr)
}

// ── FetchChunk ──────────────────────────────────────────────────────────────

func TestRecordService_FetchChunk(t *testing.T) {
	repo := &stubRecordRepository{page: []models.Entity{ent("a", 1, `{}`), ent("b", 1, `{}`)}, total: 5}
	svc := newTestRecordService(repo)

	resp, err := svc.FetchChunk(context.Background(), models.ChunkRequest{TenantID: "t1", Collection: "accounts", Limit: 2, Offset: 2})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 4, resp.NextOffset)
	assert.True(t, resp.HasMore)
	assert.Equal(t, 2, resp.Offset)
}

func TestRecordService_FetchChunk_ClampsLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: models.DefaultChunkSize},
		{limit: -1, want: models.DefaultChunkSize},
		{limit: 100_000, want: models.MaxChunkSize},
		{limit: 7, want: 7},
	}

	for _, tt := range tests {
		repo := &stubRecordRepository{}
		svc := newTestRecordService(repo)

		resp, err := svc.FetchChunk(context.Background(), models.ChunkRequest{TenantID: "t1", Collection: "accounts", Limit: tt.limit})

		require.NoError(t, err)
		assert.Equal(t, tt.want, repo.gotChunk.Limit)
		assert.Equal(t, tt.want, resp.Limit)
		assert.False(t, resp.HasMore)
	}
}

func TestRecordService_FetchChunk_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ChunkRequest
		wantErr error
	}{
		{name: "empty tenant", req: models.ChunkRequest{Collection: "accounts"}, wantErr: ErrEmptyTenantID},
		{name: "empty collection", req: models.ChunkRequest{TenantID: "t1"}, wantErr: ErrEmptyCollection},
		{name: "negative offset", req: models.ChunkRequest{TenantID: "t1", Collection: "accounts", Offset: -1}, wantErr: ErrInvalidOffset},
		{name: "unknown collection", req: models.ChunkRequest{TenantID: "t1", Collection: "secrets"}, wantErr: ErrUnknownCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRecordRepository{}
			svc := newTestRecordService(repo, "accounts")

			_, err := svc.FetchChunk(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.calls)
		})
	}
}

// ── ApplyChange ─────────────────────────────────────────────────────────────

func TestRecordService_ApplyChange(t *testing.T) {
	repo := &stubRecordRepository{}
	svc := newTestRecordService(repo)
	req := models.PushRequest{
		TenantID:   "t1",
		Collection: "accounts",
		Operation:  models.OperationCreate,
		EntityID:   "a",
		Payload:    json.RawMessage(`{"name":"ACME"}`),
	}

	resp, err := svc.ApplyChange(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	require.NotNil(t, resp.ServerUpdatedAt)
	assert.Equal(t, int64(5001), *resp.ServerUpdatedAt, "response carries the stored version")
	assert.Equal(t, int64(5000), repo.gotUpdatedAt)
	assert.Equal(t, req, repo.gotChange)
}

func TestRecordService_ApplyChange_DeleteNeedsNoPayload(t *testing.T) {
	repo := &stubRecordRepository{}
	svc := newTestRecordService(repo)

	resp, err := svc.ApplyChange(context.Background(), models.PushRequest{
		TenantID: "t1", Collection: "accounts", Operation: models.OperationDelete, EntityID: "a",
	})

	require.NoError(t, err)
	assert.True(t, resp.Accepted)
}

func TestRecordService_ApplyChange_Validation(t *testing.T) {
	valid := models.PushRequest{
		TenantID: "t1", Collection: "accounts", Operation: models.OperationUpdate, EntityID: "a",
		Payload: json.RawMessage(`{}`),
	}

	tests := []struct {
		name    string
		mutate  func(*models.PushRequest)
		wantErr error
	}{
		{name: "empty tenant", mutate: func(r *models.PushRequest) { r.TenantID = "" }, wantErr: ErrEmptyTenantID},
		{name: "empty collection", mutate: func(r *models.PushRequest) { r.Collection = "" }, wantErr: ErrEmptyCollection},
		{name: "unknown collection", mutate: func(r *models.PushRequest) { r.Collection = "secrets" }, wantErr: ErrUnknownCollection},
		{name: "empty entity id", mutate: func(r *models.PushRequest) { r.EntityID = "" }, wantErr: ErrInvalidDataProvided},
		{name: "unknown operation", mutate: func(r *models.PushRequest) { r.Operation = "upsert" }, wantErr: ErrInvalidOperation},
		{name: "missing payload", mutate: func(r *models.PushRequest) { r.Payload = nil }, wantErr: ErrInvalidPayload},
		{name: "scalar payload", mutate: func(r *models.PushRequest) { r.Payload = json.RawMessage(`42`) }, wantErr: ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRecordRepository{}
			svc := newTestRecordService(repo, "accounts")
			req := valid
			tt.mutate(&req)

			_, err := svc.ApplyChange(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestRecordService_Ping(t *testing.T) {
	assert.NoError(t, newTestRecordService(&stubRecordRepository{}).Ping(context.Background()))

	dbErr := errors.New("down")
	assert.ErrorIs(t, newTestRecordService(&stubRecordRepository{err: dbErr}).Ping(context.Background()), dbErr)
}

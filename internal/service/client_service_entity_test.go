package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/store"
	"github.com/MKhiriev/go-records-sync/models"
)

func newTestEntityService(t *testing.T) (*clientEntityService, store.LocalStore) {
	t.Helper()
	localStore := store.NewMemoryStore()
	svc := NewClientEntityService(localStore, &seqIDs{}, logger.Nop()).(*clientEntityService)
	svc.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return svc, localStore
}

// ── Put ─────────────────────────────────────────────────────────────────────

func TestClientEntityService_Put_GeneratesID(t *testing.T) {
	svc, localStore := newTestEntityService(t)
	ctx := context.Background()

	got, err := svc.Put(ctx, "t1", "accounts", models.Entity{Payload: json.RawMessage(`{"name":"ACME"}`)})

	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, int64(1_700_000_000_000), got.UpdatedAt)

	queue, err := localStore.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, models.OperationCreate, queue[0].Operation)
	assert.Equal(t, "id-1", queue[0].EntityID)

	stored, err := localStore.Get(ctx, "t1", "accounts", "id-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ACME"}`, string(stored.Payload))
}

func TestClientEntityService_Put_ExistingIsUpdate(t *testing.T) {
	svc, localStore := newTestEntityService(t)
	ctx := context.Background()
	require.NoError(t, localStore.Upsert(ctx, "t1", "accounts", ent("a", 1, `{"v":1}`)))

	_, err := svc.Put(ctx, "t1", "accounts", models.Entity{ID: "a", Payload: json.RawMessage(`{"v":2}`)})
	require.NoError(t, err)

	queue, err := localStore.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, models.OperationUpdate, queue[0].Operation)
}

func TestClientEntityService_Put_UnknownIDIsCreate(t *testing.T) {
	svc, localStore := newTestEntityService(t)
	ctx := context.Background()

	_, err := svc.Put(ctx, "t1", "accounts", models.Entity{ID: "client-made", Payload: json.RawMessage(`{}`)})
	require.NoError(t, err)

	queue, err := localStore.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, models.OperationCreate, queue[0].Operation)
}

func TestClientEntityService_Put_CreateThenUpdateStaysCreate(t *testing.T) {
	svc, localStore := newTestEntityService(t)
	ctx := context.Background()

	created, err := svc.Put(ctx, "t1", "accounts", models.Entity{Payload: json.RawMessage(`{"v":1}`)})
	require.NoError(t, err)
	_, err = svc.Put(ctx, "t1", "accounts", models.Entity{ID: created.ID, Payload: json.RawMessage(`{"v":2}`)})
	require.NoError(t, err)

	queue, err := localStore.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, models.OperationCreate, queue[0].Operation)
	assert.JSONEq(t, `{"v":2}`, string(queue[0].Payload))
}

func TestClientEntityService_Put_Validation(t *testing.T) {
	tests := []struct {
		name       string
		tenantID   string
		collection string
		payload    string
		wantErr    error
	}{
		{name: "empty tenant", collection: "accounts", payload: `{}`, wantErr: ErrEmptyTenantID},
		{name: "empty collection", tenantID: "t1", payload: `{}`, wantErr: ErrEmptyCollection},
		{name: "array payload", tenantID: "t1", collection: "accounts", payload: `[1,2]`, wantErr: ErrInvalidPayload},
		{name: "null payload", tenantID: "t1", collection: "accounts", payload: `null`, wantErr: ErrInvalidPayload},
		{name: "no payload", tenantID: "t1", collection: "accounts", wantErr: ErrInvalidPayload},
		{name: "broken json", tenantID: "t1", collection: "accounts", payload: `{"a":`, wantErr: ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, localStore := newTestEntityService(t)
			entity := models.Entity{}
			if tt.payload != "" {
				entity.Payload = json.RawMessage(tt.payload)
			}

			_, err := svc.Put(context.Background(), tt.tenantID, tt.collection, entity)

			assert.ErrorIs(t, err, tt.wantErr)
			n, err := localStore.Count(context.Background(), "t1")
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

// ── Delete / Get / List / Pending ───────────────────────────────────────────

func TestClientEntityService_Delete(t *testing.T) {
	svc, localStore := newTestEntityService(t)
	ctx := context.Background()
	require.NoError(t, localStore.Upsert(ctx, "t1", "accounts", ent("a", 1, `{}`)))

	require.NoError(t, svc.Delete(ctx, "t1", "accounts", "a"))

	_, err := svc.Get(ctx, "t1", "accounts", "a")
	assert.ErrorIs(t, err, store.ErrEntityNotFound)

	pending, err := svc.Pending(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	assert.ErrorIs(t, svc.Delete(ctx, "t1", "accounts", ""), ErrInvalidDataProvided)
}

func TestClientEntityService_List(t *testing.T) {
	svc, localStore := newTestEntityService(t)
	ctx := context.Background()
	require.NoError(t, localStore.Upsert(ctx, "t1", "accounts", ent("b", 1, `{}`), ent("a", 1, `{}`)))
	require.NoError(t, localStore.Upsert(ctx, "t2", "accounts", ent("c", 1, `{}`)))

	got, err := svc.List(ctx, "t1", "accounts")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, models.EntityIDs(got))

	_, err = svc.List(ctx, "", "accounts")
	assert.ErrorIs(t, err, ErrEmptyTenantID)

	_, err = svc.Pending(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyTenantID)
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/models"
)

const (
	testTenant     = "tenant-1"
	testCollection = "accounts"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func newSQLiteStore(t *testing.T) LocalStore {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "cache", "local.db")
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	s := NewLocalRepository(db, logger.Nop())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newMemStore(t *testing.T) LocalStore {
	t.Helper()
	return NewMemoryStore()
}

// forEachStore runs fn against every LocalStore implementation.
func forEachStore(t *testing.T, fn func(t *testing.T, s LocalStore)) {
	t.Helper()

	factories := map[string]func(t *testing.T) LocalStore{
		"sqlite": newSQLiteStore,
		"memory": newMemStore,
	}
	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			fn(t, factory(t))
		})
	}
}

func entity(id string, updatedAt int64, payload string) models.Entity {
	e := models.Entity{ID: id, UpdatedAt: updatedAt}
	if payload != "" {
		e.Payload = json.RawMessage(payload)
	}
	return e
}

// remoteWins is a minimal merge: every remote entity replaces the local one,
// tombstones remove it.
func remoteWins(local, remote []models.Entity) models.MergeResult {
	known := make(map[string]bool, len(local))
	for _, e := range local {
		known[e.ID] = true
	}

	var res models.MergeResult
	for _, r := range remote {
		switch {
		case r.Deleted && known[r.ID]:
			res.Removed = append(res.Removed, r.ID)
			res.RemovedCount++
		case r.Deleted:
		case known[r.ID]:
			res.Upserted = append(res.Upserted, r)
			res.Updated++
		default:
			res.Upserted = append(res.Upserted, r)
			res.Added++
		}
	}
	return res
}

func change(entityID string, op models.Operation, payload string) models.PendingChange {
	c := models.PendingChange{
		TenantID:   testTenant,
		Collection: testCollection,
		EntityID:   entityID,
		Operation:  op,
	}
	if payload != "" {
		c.Payload = json.RawMessage(payload)
	}
	return c
}

// ── Entity store ─────────────────────────────────────────────────────────────

func TestLocalStore_UpsertGetDelete(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()

		require.NoError(t, s.Upsert(ctx, testTenant, testCollection,
			entity("b", 2, `{"name":"B"}`),
			entity("a", 1, `{"name":"A"}`),
		))

		all, err := s.GetAll(ctx, testTenant, testCollection)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, []string{"a", "b"}, models.EntityIDs(all))
		assert.JSONEq(t, `{"name":"A"}`, string(all[0].Payload))

		got, err := s.Get(ctx, testTenant, testCollection, "b")
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.UpdatedAt)

		// upsert overwrites
		require.NoError(t, s.Upsert(ctx, testTenant, testCollection, entity("b", 5, `{"name":"B2"}`)))
		got, err = s.Get(ctx, testTenant, testCollection, "b")
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.UpdatedAt)
		assert.JSONEq(t, `{"name":"B2"}`, string(got.Payload))

		require.NoError(t, s.Delete(ctx, testTenant, testCollection, "a", "missing"))
		_, err = s.Get(ctx, testTenant, testCollection, "a")
		assert.ErrorIs(t, err, ErrEntityNotFound)
	})
}

func TestLocalStore_TenantsAndCollectionsAreIsolated(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()

		require.NoError(t, s.Upsert(ctx, testTenant, testCollection, entity("a", 1, "")))
		require.NoError(t, s.Upsert(ctx, "tenant-2", testCollection, entity("z", 1, "")))
		require.NoError(t, s.Upsert(ctx, testTenant, "contacts", entity("c", 1, "")))

		all, err := s.GetAll(ctx, testTenant, testCollection)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, models.EntityIDs(all))

		empty, err := s.GetAll(ctx, "tenant-3", testCollection)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestLocalStore_UpsertRejectsEmptyID(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		err := s.Upsert(context.Background(), testTenant, testCollection, entity("", 1, ""))
		assert.ErrorIs(t, err, ErrInvalidEntity)
	})
}

func TestLocalStore_ApplyMerge(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()
		require.NoError(t, s.Upsert(ctx, testTenant, testCollection,
			entity("a", 100, `{"v":1}`),
			entity("gone", 100, `{"v":1}`),
			entity("local-only", 1, `{"v":1}`),
		))

		var seenLocal []models.Entity
		merge := func(local, remote []models.Entity) models.MergeResult {
			seenLocal = local
			return remoteWins(local, remote)
		}

		tombstone := entity("gone", 200, "")
		tombstone.Deleted = true
		res, err := s.ApplyMerge(ctx, testTenant, testCollection, []models.Entity{
			entity("a", 200, `{"v":2}`),
			entity("b", 50, `{"v":1}`),
			tombstone,
		}, merge)
		require.NoError(t, err)

		assert.Equal(t, 1, res.Added)
		assert.Equal(t, 1, res.Updated)
		assert.Equal(t, 1, res.RemovedCount)
		// only the subset addressed by the chunk is loaded
		assert.ElementsMatch(t, []string{"a", "gone"}, models.EntityIDs(seenLocal))

		all, err := s.GetAll(ctx, testTenant, testCollection)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "local-only"}, models.EntityIDs(all))
		assert.Equal(t, int64(200), all[0].UpdatedAt)
	})
}

func TestLocalStore_ApplyMergeLargeChunk(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()

		remote := make([]models.Entity, 0, 450)
		for i := range 450 {
			remote = append(remote, entity(fmtID(i), int64(i+1), `{}`))
		}

		res, err := s.ApplyMerge(ctx, testTenant, testCollection, remote, remoteWins)
		require.NoError(t, err)
		assert.Equal(t, 450, res.Added)

		res, err = s.ApplyMerge(ctx, testTenant, testCollection, remote, remoteWins)
		require.NoError(t, err)
		assert.Equal(t, 450, res.Updated)

		all, err := s.GetAll(ctx, testTenant, testCollection)
		require.NoError(t, err)
		assert.Len(t, all, 450)
	})
}

func TestLocalStore_ApplyMergeWithholdsQueuedDeletes(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()
		require.NoError(t, s.Upsert(ctx, testTenant, testCollection, entity("a", 1, `{}`), entity("b", 1, `{}`)))
		_, err := s.RecordLocalChange(ctx, change("a", models.OperationDelete, ""), 2)
		require.NoError(t, err)
		// правка "b" не мешает удалённой копии
		_, err = s.RecordLocalChange(ctx, change("b", models.OperationUpdate, `{"v":"local"}`), 2)
		require.NoError(t, err)

		var merged []string
		res, err := s.ApplyMerge(ctx, testTenant, testCollection, []models.Entity{
			entity("a", 100, `{"v":"remote"}`),
			entity("b", 100, `{"v":"remote"}`),
			entity("c", 100, `{"v":"remote"}`),
		}, func(local, remote []models.Entity) models.MergeResult {
			merged = models.EntityIDs(remote)
			return remoteWins(local, remote)
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"b", "c"}, merged)
		assert.Equal(t, 1, res.Skipped)

		_, err = s.Get(ctx, testTenant, testCollection, "a")
		assert.ErrorIs(t, err, ErrEntityNotFound)

		all, err := s.GetAll(ctx, testTenant, testCollection)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, models.EntityIDs(all))
	})
}

func TestLocalStore_ApplyMergeQueuedDeleteIsScopedToCollection(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()
		_, err := s.RecordLocalChange(ctx, change("a", models.OperationDelete, ""), 2)
		require.NoError(t, err)

		res, err := s.ApplyMerge(ctx, testTenant, "orders", []models.Entity{entity("a", 100, `{}`)}, remoteWins)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Added)
		assert.Zero(t, res.Skipped)

		res, err = s.ApplyMerge(ctx, "tenant-2", testCollection, []models.Entity{entity("a", 100, `{}`)}, remoteWins)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Added)
	})
}

func fmtID(i int) string {
	return fmt.Sprintf("id-%04d", i)
}

func TestLocalStore_SetUpdatedAt(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()
		require.NoError(t, s.Upsert(ctx, testTenant, testCollection, entity("a", 1, `{}`)))

		require.NoError(t, s.SetUpdatedAt(ctx, testTenant, testCollection, "a", 1700))
		got, err := s.Get(ctx, testTenant, testCollection, "a")
		require.NoError(t, err)
		assert.Equal(t, int64(1700), got.UpdatedAt)

		err = s.SetUpdatedAt(ctx, testTenant, testCollection, "missing", 1)
		assert.ErrorIs(t, err, ErrEntityNotFound)
	})
}

// ── Pending change queue ─────────────────────────────────────────────────────

func TestPendingQueue_EnqueueAssignsSeqAndRevision(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()

		first, err := s.Enqueue(ctx, change("a", models.OperationCreate, `{"v":1}`))
		require.NoError(t, err)
		second, err := s.Enqueue(ctx, change("b", models.OperationUpdate, `{"v":1}`))
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.Revision)
		assert.Greater(t, second.Seq, first.Seq)
		assert.False(t, first.CreatedAt.IsZero())

		list, err := s.List(ctx, testTenant)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "a", list[0].EntityID)
		assert.Equal(t, "b", list[1].EntityID)
		assert.Equal(t, first.CreatedAt.UnixNano(), list[0].CreatedAt.UnixNano())
	})
}

func TestPendingQueue_Escalation(t *testing.T) {
	tests := []struct {
		name        string
		ops         []models.Operation
		wantOp      models.Operation
		wantPayload bool
	}{
		{name: "create then update stays create", ops: []models.Operation{models.OperationCreate, models.OperationUpdate}, wantOp: models.OperationCreate, wantPayload: true},
		{name: "update then delete is delete", ops: []models.Operation{models.OperationUpdate, models.OperationDelete}, wantOp: models.OperationDelete},
		{name: "create then delete is delete", ops: []models.Operation{models.OperationCreate, models.OperationDelete}, wantOp: models.OperationDelete},
		{name: "delete then create is update", ops: []models.Operation{models.OperationDelete, models.OperationCreate}, wantOp: models.OperationUpdate, wantPayload: true},
		{name: "update then update", ops: []models.Operation{models.OperationUpdate, models.OperationUpdate, models.OperationUpdate}, wantOp: models.OperationUpdate, wantPayload: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachStore(t, func(t *testing.T, s LocalStore) {
				ctx := context.Background()

				var last models.PendingChange
				for i, op := range tt.ops {
					payload := fmt.Sprintf(`{"rev":%d}`, i)
					if op == models.OperationDelete {
						payload = ""
					}
					var err error
					last, err = s.Enqueue(ctx, change("a", op, payload))
					require.NoError(t, err)
				}

				list, err := s.List(ctx, testTenant)
				require.NoError(t, err)
				require.Len(t, list, 1)

				got := list[0]
				assert.Equal(t, tt.wantOp, got.Operation)
				assert.Equal(t, int64(len(tt.ops)), got.Revision)
				assert.Equal(t, last.Seq, got.Seq)
				if tt.wantPayload {
					assert.JSONEq(t, fmt.Sprintf(`{"rev":%d}`, len(tt.ops)-1), string(got.Payload))
				} else {
					assert.Empty(t, got.Payload)
				}
			})
		})
	}
}

func TestPendingQueue_AckHonoursRevision(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()

		inFlight, err := s.Enqueue(ctx, change("a", models.OperationUpdate, `{"v":1}`))
		require.NoError(t, err)

		// edit lands while the push is in flight
		_, err = s.Enqueue(ctx, change("a", models.OperationUpdate, `{"v":2}`))
		require.NoError(t, err)

		acked, err := s.Ack(ctx, inFlight)
		require.NoError(t, err)
		assert.False(t, acked)

		n, err := s.Count(ctx, testTenant)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		list, err := s.List(ctx, testTenant)
		require.NoError(t, err)
		acked, err = s.Ack(ctx, list[0])
		require.NoError(t, err)
		assert.True(t, acked)

		n, err = s.Count(ctx, testTenant)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestPendingQueue_MarkFailed(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()

		c, err := s.Enqueue(ctx, change("a", models.OperationCreate, `{}`))
		require.NoError(t, err)

		require.NoError(t, s.MarkFailed(ctx, c, "connection refused"))
		require.NoError(t, s.MarkFailed(ctx, c, "timeout"))

		list, err := s.List(ctx, testTenant)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 2, list[0].Attempts)
		assert.Equal(t, "timeout", list[0].LastError)
	})
}

func TestPendingQueue_RejectsInvalidChanges(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()

		bad := []models.PendingChange{
			{Collection: testCollection, EntityID: "a", Operation: models.OperationCreate},
			{TenantID: testTenant, EntityID: "a", Operation: models.OperationCreate},
			{TenantID: testTenant, Collection: testCollection, Operation: models.OperationCreate},
			{TenantID: testTenant, Collection: testCollection, EntityID: "a", Operation: "merge"},
		}
		for _, c := range bad {
			_, err := s.Enqueue(ctx, c)
			assert.ErrorIs(t, err, ErrInvalidChange)
		}
	})
}

func TestLocalStore_RecordLocalChange(t *testing.T) {
	forEachStore(t, func(t *testing.T, s LocalStore) {
		ctx := context.Background()

		c, err := s.RecordLocalChange(ctx, change("a", models.OperationCreate, `{"name":"A"}`), 42)
		require.NoError(t, err)
		assert.Equal(t, models.OperationCreate, c.Operation)

		got, err := s.Get(ctx, testTenant, testCollection, "a")
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.UpdatedAt)
		assert.JSONEq(t, `{"name":"A"}`, string(got.Payload))

		c, err = s.RecordLocalChange(ctx, change("a", models.OperationDelete, ""), 43)
		require.NoError(t, err)
		assert.Equal(t, models.OperationDelete, c.Operation)

		_, err = s.Get(ctx, testTenant, testCollection, "a")
		assert.ErrorIs(t, err, ErrEntityNotFound)

		n, err := s.Count(ctx, testTenant)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestMemoryStore_Closed(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Close())

	_, err := s.GetAll(context.Background(), testTenant, testCollection)
	assert.ErrorIs(t, err, ErrStoreClosed)

	_, err = s.Enqueue(context.Background(), change("a", models.OperationCreate, `{}`))
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestNewClientStorages(t *testing.T) {
	ctx := context.Background()

	mem, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: MemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &memoryStore{}, mem.Store)
	require.NoError(t, mem.Close())

	dsn := filepath.Join(t.TempDir(), "records.db")
	disk, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &localRepository{}, disk.Store)
	require.NoError(t, disk.Close())
}

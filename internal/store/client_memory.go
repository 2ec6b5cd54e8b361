package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-records-sync/models"
)

// MemoryDSN selects the in-memory local store instead of SQLite.
const MemoryDSN = ":memory:"

type collectionKey struct {
	tenantID   string
	collection string
}

// memoryStore is a process-local [LocalStore]. A single mutex makes every
// call atomic with respect to every other call.
type memoryStore struct {
	mu       sync.RWMutex
	entities map[collectionKey]map[string]models.Entity
	pending  map[string][]models.PendingChange
	nextSeq  int64
	closed   bool
	now      func() time.Time
}

// NewMemoryStore constructs an empty in-memory [LocalStore].
func NewMemoryStore() LocalStore {
	return &memoryStore{
		entities: make(map[collectionKey]map[string]models.Entity),
		pending:  make(map[string][]models.PendingChange),
		nextSeq:  1,
		now:      time.Now,
	}
}

func (s *memoryStore) GetAll(_ context.Context, tenantID, collection string) ([]models.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	bucket := s.entities[collectionKey{tenantID, collection}]
	out := make([]models.Entity, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, e.Clone())
	}
	slices.SortFunc(out, func(a, b models.Entity) int { return strings.Compare(a.ID, b.ID) })

	return out, nil
}

func (s *memoryStore) Get(_ context.Context, tenantID, collection, id string) (models.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.Entity{}, ErrStoreClosed
	}

	e, ok := s.entities[collectionKey{tenantID, collection}][id]
	if !ok {
		return models.Entity{}, fmt.Errorf("%w: %s/%s", ErrEntityNotFound, collection, id)
	}
	return e.Clone(), nil
}

func (s *memoryStore) Upsert(_ context.Context, tenantID, collection string, entities ...models.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	return s.upsertLocked(collectionKey{tenantID, collection}, entities)
}

func (s *memoryStore) Delete(_ context.Context, tenantID, collection string, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	s.deleteLocked(collectionKey{tenantID, collection}, ids)
	return nil
}

func (s *memoryStore) ApplyMerge(_ context.Context, tenantID, collection string, remote []models.Entity, merge MergeFunc) (models.MergeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.MergeResult{}, ErrStoreClosed
	}

	key := collectionKey{tenantID, collection}
	remote, withheld := withholdDeleted(remote, s.pendingDeletesLocked(key))

	bucket := s.entities[key]
	local := make([]models.Entity, 0, len(remote))
	for _, r := range remote {
		if e, ok := bucket[r.ID]; ok {
			local = append(local, e.Clone())
		}
	}

	result := merge(local, remote)
	result.Skipped += withheld
	if err := s.upsertLocked(key, result.Upserted); err != nil {
		return models.MergeResult{}, err
	}
	s.deleteLocked(key, result.Removed)

	return result, nil
}

func (s *memoryStore) SetUpdatedAt(_ context.Context, tenantID, collection, id string, updatedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	bucket := s.entities[collectionKey{tenantID, collection}]
	e, ok := bucket[id]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrEntityNotFound, collection, id)
	}
	e.UpdatedAt = updatedAt
	bucket[id] = e

	return nil
}

func (s *memoryStore) Enqueue(_ context.Context, change models.PendingChange) (models.PendingChange, error) {
	if err := validateChange(change); err != nil {
		return models.PendingChange{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.PendingChange{}, ErrStoreClosed
	}
	return s.enqueueLocked(change), nil
}

func (s *memoryStore) RecordLocalChange(_ context.Context, change models.PendingChange, updatedAt int64) (models.PendingChange, error) {
	if err := validateChange(change); err != nil {
		return models.PendingChange{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.PendingChange{}, ErrStoreClosed
	}

	key := collectionKey{change.TenantID, change.Collection}
	if change.Operation == models.OperationDelete {
		s.deleteLocked(key, []string{change.EntityID})
	} else {
		entity := models.Entity{ID: change.EntityID, UpdatedAt: updatedAt, Payload: change.Payload}
		if err := s.upsertLocked(key, []models.Entity{entity}); err != nil {
			return models.PendingChange{}, err
		}
	}

	return s.enqueueLocked(change), nil
}

func (s *memoryStore) List(_ context.Context, tenantID string) ([]models.PendingChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	queue := s.pending[tenantID]
	out := make([]models.PendingChange, len(queue))
	for i, c := range queue {
		out[i] = clonePendingChange(c)
	}
	return out, nil
}

func (s *memoryStore) Ack(_ context.Context, change models.PendingChange) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrStoreClosed
	}

	queue := s.pending[change.TenantID]
	i := slices.IndexFunc(queue, func(c models.PendingChange) bool {
		return c.Seq == change.Seq && c.Revision == change.Revision
	})
	if i < 0 {
		return false, nil
	}
	s.pending[change.TenantID] = slices.Delete(queue, i, i+1)

	return true, nil
}

func (s *memoryStore) MarkFailed(_ context.Context, change models.PendingChange, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	queue := s.pending[change.TenantID]
	for i := range queue {
		if queue[i].Seq == change.Seq {
			queue[i].Attempts++
			queue[i].LastError = reason
			break
		}
	}
	return nil
}

func (s *memoryStore) Count(_ context.Context, tenantID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrStoreClosed
	}
	return len(s.pending[tenantID]), nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *memoryStore) upsertLocked(key collectionKey, entities []models.Entity) error {
	for _, e := range entities {
		if !e.Valid() {
			return ErrInvalidEntity
		}
	}
	if len(entities) == 0 {
		return nil
	}

	bucket, ok := s.entities[key]
	if !ok {
		bucket = make(map[string]models.Entity, len(entities))
		s.entities[key] = bucket
	}
	for _, e := range entities {
		stored := e.Clone()
		stored.Deleted = false
		bucket[e.ID] = stored
	}
	return nil
}

func (s *memoryStore) deleteLocked(key collectionKey, ids []string) {
	bucket := s.entities[key]
	for _, id := range ids {
		delete(bucket, id)
	}
}

func (s *memoryStore) pendingDeletesLocked(key collectionKey) map[string]struct{} {
	var out map[string]struct{}
	for _, c := range s.pending[key.tenantID] {
		if c.Collection != key.collection || c.Operation != models.OperationDelete {
			continue
		}
		if out == nil {
			out = make(map[string]struct{})
		}
		out[c.EntityID] = struct{}{}
	}
	return out
}

func (s *memoryStore) enqueueLocked(change models.PendingChange) models.PendingChange {
	queue := s.pending[change.TenantID]
	for i, queued := range queue {
		if queued.Collection == change.Collection && queued.EntityID == change.EntityID {
			queue[i] = foldChange(queued, clonePendingChange(change))
			return clonePendingChange(queue[i])
		}
	}

	stored := clonePendingChange(change)
	stored.Seq = s.nextSeq
	s.nextSeq++
	stored.Revision = 1
	stored.Attempts = 0
	stored.LastError = ""
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now().UTC()
	}
	if stored.Operation == models.OperationDelete {
		stored.Payload = nil
	}
	s.pending[change.TenantID] = append(queue, stored)

	return clonePendingChange(stored)
}

func clonePendingChange(c models.PendingChange) models.PendingChange {
	out := c
	if c.Payload != nil {
		out.Payload = append([]byte(nil), c.Payload...)
	}
	return out
}

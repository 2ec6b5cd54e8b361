package client

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-records-sync/models"
)

// StateCache is the host application's in-memory copy of the tenant's
// collections. The sync engine feeds it through Apply; readers get copies.
type StateCache struct {
	mu          sync.RWMutex
	tenantID    string
	collections map[string]map[string]models.Entity
}

func NewStateCache(tenantID string) *StateCache {
	return &StateCache{
		tenantID:    tenantID,
		collections: make(map[string]map[string]models.Entity),
	}
}

// EntityLister reads a collection from the local store.
type EntityLister interface {
	List(ctx context.Context, tenantID, collection string) ([]models.Entity, error)
}

// Preload fills the cache from the local store so the host has data before
// the first sync finishes.
func (c *StateCache) Preload(ctx context.Context, lister EntityLister, collections []string) error {
	for _, name := range collections {
		entities, err := lister.List(ctx, c.tenantID, name)
		if err != nil {
			return fmt.Errorf("preload %s: %w", name, err)
		}
		c.Apply(models.CollectionSnapshot{TenantID: c.tenantID, Collection: name, Upserted: entities})
	}
	return nil
}

// Apply implements service.StateSink. Snapshots of another tenant are
// ignored.
func (c *StateCache) Apply(snapshot models.CollectionSnapshot) {
	if snapshot.TenantID != c.tenantID {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	coll, ok := c.collections[snapshot.Collection]
	if !ok {
		coll = make(map[string]models.Entity, len(snapshot.Upserted))
		c.collections[snapshot.Collection] = coll
	}
	for _, e := range snapshot.Upserted {
		coll[e.ID] = e
	}
	for _, id := range snapshot.Removed {
		delete(coll, id)
	}
}

// Count returns the number of cached entities of collection.
func (c *StateCache) Count(collection string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.collections[collection])
}

// Get returns a copy of one cached entity.
func (c *StateCache) Get(collection, id string) (models.Entity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.collections[collection][id]
	if !ok {
		return models.Entity{}, false
	}
	return e.Clone(), true
}

// List returns copies of the cached entities of collection ordered by id.
func (c *StateCache) List(collection string) []models.Entity {
	c.mu.RLock()
	out := make([]models.Entity, 0, len(c.collections[collection]))
	for _, e := range c.collections[collection] {
		out = append(out, e.Clone())
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Entity) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

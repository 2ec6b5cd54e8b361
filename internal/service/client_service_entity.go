package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/store"
	"github.com/MKhiriev/go-records-sync/models"
)

type clientEntityService struct {
	localStore store.LocalStore
	ids        IDGenerator
	now        func() time.Time
	logger     *logger.Logger
}

// NewClientEntityService constructs the local mutation service. ids names
// entities created without an id.
func NewClientEntityService(localStore store.LocalStore, ids IDGenerator, logger *logger.Logger) ClientEntityService {
	return &clientEntityService{
		localStore: localStore,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

// Put implements [ClientEntityService]. The entity is stamped with the
// local clock in unix milliseconds.
func (s *clientEntityService) Put(ctx context.Context, tenantID, collection string, entity models.Entity) (models.Entity, error) {
	log := logger.FromContext(ctx)

	if err := validateScope(tenantID, collection); err != nil {
		return models.Entity{}, err
	}
	if !isJSONObject(entity.Payload) {
		return models.Entity{}, ErrInvalidPayload
	}

	op := models.OperationUpdate
	if entity.ID == "" {
		entity.ID = s.ids.Generate()
		op = models.OperationCreate
	} else if _, err := s.localStore.Get(ctx, tenantID, collection, entity.ID); errors.Is(err, store.ErrEntityNotFound) {
		op = models.OperationCreate
	} else if err != nil {
		return models.Entity{}, err
	}

	entity.UpdatedAt = s.now().UnixMilli()
	entity.Deleted = false

	_, err := s.localStore.RecordLocalChange(ctx, models.PendingChange{
		TenantID:   tenantID,
		Collection: collection,
		EntityID:   entity.ID,
		Operation:  op,
		Payload:    entity.Payload,
	}, entity.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "clientEntityService.Put").
			Str("collection", collection).
			Str("entity_id", entity.ID).
			Msg("failed to record local change")
		return models.Entity{}, fmt.Errorf("put %s/%s: %w", collection, entity.ID, err)
	}

	return entity, nil
}

// Delete implements [ClientEntityService].
func (s *clientEntityService) Delete(ctx context.Context, tenantID, collection, id string) error {
	if err := validateScope(tenantID, collection); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidDataProvided
	}

	_, err := s.localStore.RecordLocalChange(ctx, models.PendingChange{
		TenantID:   tenantID,
		Collection: collection,
		EntityID:   id,
		Operation:  models.OperationDelete,
	}, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *clientEntityService) Get(ctx context.Context, tenantID, collection, id string) (models.Entity, error) {
	if err := validateScope(tenantID, collection); err != nil {
		return models.Entity{}, err
	}
	return s.localStore.Get(ctx, tenantID, collection, id)
}

func (s *clientEntityService) List(ctx context.Context, tenantID, collection string) ([]models.Entity, error) {
	if err := validateScope(tenantID, collection); err != nil {
		return nil, err
	}
	return s.localStore.GetAll(ctx, tenantID, collection)
}

func (s *clientEntityService) Pending(ctx context.Context, tenantID string) (int, error) {
	if tenantID == "" {
		return 0, ErrEmptyTenantID
	}
	return s.localStore.Count(ctx, tenantID)
}

func validateScope(tenantID, collection string) error {
	switch {
	case tenantID == "":
		return ErrEmptyTenantID
	case collection == "":
		return ErrEmptyCollection
	}
	return nil
}

// isJSONObject reports whether payload is a JSON object.
func isJSONObject(payload json.RawMessage) bool {
	var obj map[string]json.RawMessage
	return len(payload) > 0 && json.Unmarshal(payload, &obj) == nil && obj != nil
}

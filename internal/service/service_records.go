package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/store"
	"github.com/MKhiriev/go-records-sync/models"
)

// recordService validates requests of the remote API and delegates storage
// to a [store.RecordRepository].
type recordService struct {
	repository store.RecordRepository

	// allowed collections; empty accepts any name
	collections []string

	now    func() time.Time
	logger *logger.Logger
}

// NewRecordService constructs a [RecordService]. When cfg.Collections is not
// empty, requests naming any other collection are rejected.
func NewRecordService(repository store.RecordRepository, cfg config.Sync, logger *logger.Logger) RecordService {
	return &recordService{
		repository:  repository,
		collections: slices.Clone(cfg.Collections),
		now:         time.Now,
		logger:      logger,
	}
}

// FetchCollections implements [RecordService].
func (s *recordService) FetchCollections(ctx context.Context, req models.FetchRequest) (models.FetchResponse, error) {
	log := logger.FromContext(ctx)

	if req.TenantID == "" {
		return nil, ErrEmptyTenantID
	}
	for _, c := range req.Collections {
		if err := s.checkCollection(c); err != nil {
			return nil, err
		}
	}

	result, err := s.repository.FetchCollections(ctx, req.TenantID, req.Collections)
	if err != nil {
		log.Err(err).
			Str("func", "recordService.FetchCollections").
			Strs("collections", req.Collections).
			Msg("failed to fetch collections")
		return nil, fmt.Errorf("fetch collections: %w", err)
	}

	return result, nil
}

// FetchChunk implements [RecordService].
func (s *recordService) FetchChunk(ctx context.Context, req models.ChunkRequest) (models.ChunkResponse, error) {
	log := logger.FromContext(ctx)

	if req.TenantID == "" {
		return models.ChunkResponse{}, ErrEmptyTenantID
	}
	if err := s.checkCollection(req.Collection); err != nil {
		return models.ChunkResponse{}, err
	}
	if req.Offset < 0 {
		return models.ChunkResponse{}, ErrInvalidOffset
	}
	req.Limit = models.ClampChunkSize(req.Limit)

	entities, total, err := s.repository.FetchChunk(ctx, req)
	if err != nil {
		log.Err(err).
			Str("func", "recordService.FetchChunk").
			Str("collection", req.Collection).
			Int("offset", req.Offset).
			Msg("failed to fetch chunk")
		return models.ChunkResponse{}, fmt.Errorf("fetch chunk: %w", err)
	}

	return models.NewChunkResponse(entities, total, req.Limit, req.Offset), nil
}

// ApplyChange implements [RecordService]. The record is versioned with the
// current unix milliseconds, bumped when needed to stay above the stored
// version.
func (s *recordService) ApplyChange(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validateChange(req); err != nil {
		return models.PushResponse{}, err
	}

	stored, err := s.repository.ApplyChange(ctx, req.TenantID, req, s.now().UnixMilli())
	if err != nil {
		log.Err(err).
			Str("func", "recordService.ApplyChange").
			Str("collection", req.Collection).
			Str("entity_id", req.EntityID).
			Msg("failed to apply change")
		return models.PushResponse{}, fmt.Errorf("apply change: %w", err)
	}

	return models.PushResponse{Accepted: true, ServerUpdatedAt: &stored.UpdatedAt}, nil
}

func (s *recordService) Ping(ctx context.Context) error {
	return s.repository.Ping(ctx)
}

func (s *recordService) validateChange(req models.PushRequest) error {
	if req.TenantID == "" {
		return ErrEmptyTenantID
	}
	if err := s.checkCollection(req.Collection); err != nil {
		return err
	}
	if req.EntityID == "" {
		return fmt.Errorf("%w: empty entity id", ErrInvalidDataProvided)
	}
	if !req.Operation.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOperation, req.Operation)
	}
	if req.Operation != models.OperationDelete && !isJSONObject(req.Payload) {
		return ErrInvalidPayload
	}
	return nil
}

func (s *recordService) checkCollection(collection string) error {
	if collection == "" {
		return ErrEmptyCollection
	}
	if len(s.collections) > 0 && !slices.Contains(s.collections, collection) {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return nil
}

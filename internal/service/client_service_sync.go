package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-records-sync/internal/adapter"
	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/store"
	"github.com/MKhiriev/go-records-sync/models"
)

type clientSyncService struct {
	localStore store.LocalStore
	remote     adapter.RemoteAdapter
	loader     ChunkedLoader
	sessions   *SessionRegistry
	hub        *ProgressHub
	sink       StateSink

	collections []string
	critical    []string
	chunkSize   int

	now    func() time.Time
	logger *logger.Logger
}

// NewClientSyncService constructs the sync orchestrator. sink may be nil.
//
// cfg.CriticalCollections is fetched in one request right after upstream;
// the rest of cfg.Collections is loaded page by page afterwards.
func NewClientSyncService(
	localStore store.LocalStore,
	remote adapter.RemoteAdapter,
	loader ChunkedLoader,
	sessions *SessionRegistry,
	hub *ProgressHub,
	sink StateSink,
	cfg config.Sync,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		localStore:  localStore,
		remote:      remote,
		loader:      loader,
		sessions:    sessions,
		hub:         hub,
		sink:        sink,
		collections: slices.Clone(cfg.Collections),
		critical:    slices.Clone(cfg.CriticalCollections),
		chunkSize:   cfg.ChunkSize,
		now:         time.Now,
		logger:      logger,
	}
}

// Sync implements [ClientSyncService].
func (s *clientSyncService) Sync(ctx context.Context, tenantID string) (models.SyncReport, error) {
	if tenantID == "" {
		return models.SyncReport{}, ErrEmptyTenantID
	}

	session, ok := s.sessions.TryAcquire(ctx, tenantID)
	if !ok {
		active, _ := s.sessions.Get(tenantID)
		s.logger.Debug().
			Str("func", "clientSyncService.Sync").
			Str("tenant_id", tenantID).
			Str("active_session", active.ID).
			Msg("sync already running, request coalesced")
		return models.SyncReport{
			SessionID: active.ID,
			TenantID:  tenantID,
			Phase:     active.Phase,
			Coalesced: true,
		}, nil
	}
	defer session.Release()

	run := &syncRun{
		clientSyncService: s,
		session:           session,
		ctx:               s.logger.WithSession(session.Context(), tenantID, session.ID()),
		report: models.SyncReport{
			SessionID:  session.ID(),
			TenantID:   tenantID,
			StartedAt:  s.now().UTC(),
			Collection: make(map[string]models.CollectionReport),
		},
	}

	err := run.execute()
	run.report.FinishedAt = s.now().UTC()
	return run.report, err
}

// Cancel implements [ClientSyncService].
func (s *clientSyncService) Cancel(tenantID string) bool {
	return s.sessions.Cancel(tenantID)
}

// Session implements [ClientSyncService].
func (s *clientSyncService) Session(tenantID string) (models.SyncSession, bool) {
	return s.sessions.Get(tenantID)
}

// syncRun is the state of one Sync call.
type syncRun struct {
	*clientSyncService
	session *Session
	ctx     context.Context
	report  models.SyncReport
}

func (r *syncRun) execute() error {
	log := logger.FromContext(r.ctx)
	log.Info().Str("func", "syncRun.execute").Msg("sync started")

	r.setPhase(models.PhaseUpstream)
	if err := r.upstream(); err != nil {
		return r.fail(err)
	}

	r.setPhase(models.PhaseDownstreamCritical)
	pending, err := r.downstreamCritical()
	if err != nil {
		return r.fail(err)
	}

	r.setPhase(models.PhaseDownstreamBackground)
	if err = r.downstreamBackground(pending); err != nil {
		return r.fail(err)
	}

	r.setPhase(models.PhaseDone)
	r.report.Phase = models.PhaseDone
	r.publish(models.ProgressEvent{Kind: models.EventComplete})

	log.Info().
		Str("func", "syncRun.execute").
		Int("pushed", r.report.Pushed).
		Int("push_failed", r.report.PushFailed).
		Int("warnings", len(r.report.Warnings)).
		Msg("sync finished")
	return nil
}

// ── Upstream ────────────────────────────────────────────────────────────────

// upstream pushes every pending change once, in creation order. Only
// terminal errors are returned; everything else stays queued.
func (r *syncRun) upstream() error {
	log := logger.FromContext(r.ctx)

	changes, err := r.localStore.List(r.ctx, r.report.TenantID)
	if err != nil {
		return fmt.Errorf("%w: list pending changes: %w", ErrLocalStore, err)
	}

	for _, change := range changes {
		if err = r.ctx.Err(); err != nil {
			return err
		}

		resp, err := r.remote.Push(r.ctx, models.NewPushRequest(change))
		switch {
		case err != nil && isTerminal(r.ctx, err):
			return err

		case err != nil:
			r.pushFailed(change, pushErrorKind(err), err.Error())

		case !resp.Accepted:
			r.pushFailed(change, models.ErrorKindPushRejected, resp.Reason)

		default:
			if err = r.acknowledge(change, resp); err != nil {
				return err
			}
			r.report.Pushed++
		}
	}

	log.Debug().
		Str("func", "syncRun.upstream").
		Int("pending", len(changes)).
		Int("pushed", r.report.Pushed).
		Msg("upstream phase finished")
	return nil
}

func (r *syncRun) acknowledge(change models.PendingChange, resp models.PushResponse) error {
	acked, err := r.localStore.Ack(r.ctx, change)
	if err != nil {
		return fmt.Errorf("%w: ack change %d: %w", ErrLocalStore, change.Seq, err)
	}
	// a superseded change keeps the local version of the newer edit
	if !acked || resp.ServerUpdatedAt == nil || change.Operation == models.OperationDelete {
		return nil
	}

	err = r.localStore.SetUpdatedAt(r.ctx, change.TenantID, change.Collection, change.EntityID, *resp.ServerUpdatedAt)
	if err != nil && !errors.Is(err, store.ErrEntityNotFound) {
		return fmt.Errorf("%w: stamp %s/%s: %w", ErrLocalStore, change.Collection, change.EntityID, err)
	}
	return nil
}

func (r *syncRun) pushFailed(change models.PendingChange, kind models.ErrorKind, reason string) {
	log := logger.FromContext(r.ctx)

	r.report.PushFailed++
	r.report.Warnings = append(r.report.Warnings, models.SyncWarning{
		Kind:       kind,
		Collection: change.Collection,
		EntityID:   change.EntityID,
		Message:    reason,
	})
	r.publish(models.ProgressEvent{
		Kind:       models.EventWarning,
		Collection: change.Collection,
		ErrorKind:  kind,
		Message:    reason,
	})

	if err := r.localStore.MarkFailed(r.ctx, change, reason); err != nil {
		log.Err(err).
			Str("func", "syncRun.pushFailed").
			Int64("seq", change.Seq).
			Msg("failed to record push failure")
	}
}

// ── Downstream ──────────────────────────────────────────────────────────────

// downstreamCritical fetches the critical collections in one request. It
// returns the collections left for the background phase; critical ones are
// among them when their fetch failed.
func (r *syncRun) downstreamCritical() ([]string, error) {
	log := logger.FromContext(r.ctx)

	remaining := make([]string, 0, len(r.collections))
	for _, c := range r.collections {
		if !slices.Contains(r.critical, c) {
			remaining = append(remaining, c)
		}
	}

	if len(r.critical) == 0 {
		r.markCriticalLoaded()
		return remaining, nil
	}

	resp, err := r.remote.FetchCollections(r.ctx, models.FetchRequest{
		TenantID:    r.report.TenantID,
		Collections: r.critical,
	})
	if err != nil {
		if isTerminal(r.ctx, err) {
			return nil, err
		}
		log.Warn().Err(err).
			Str("func", "syncRun.downstreamCritical").
			Msg("critical fetch failed, loading critical collections in background")
		r.warn(models.ErrorKindTransport, "", fmt.Sprintf("critical fetch failed: %v", err))
		return append(slices.Clone(r.critical), remaining...), nil
	}

	for _, collection := range r.critical {
		entities := resp[collection]
		progress := models.Progress{Loaded: len(entities), Total: len(entities)}
		if err = r.applyChunk(collection, entities, progress, true); err != nil {
			return nil, err
		}
	}

	r.markCriticalLoaded()
	return remaining, nil
}

func (r *syncRun) markCriticalLoaded() {
	r.report.Critical = true
	r.publish(models.ProgressEvent{Kind: models.EventCriticalLoaded})
}

// downstreamBackground loads collections one after another through the
// chunked loader, switching to full fetches once the remote turns out not to
// support pagination.
func (r *syncRun) downstreamBackground(collections []string) error {
	log := logger.FromContext(r.ctx)

	chunked := true
	for _, collection := range collections {
		if err := r.ctx.Err(); err != nil {
			return err
		}

		if chunked {
			err := r.loadChunked(collection)
			switch {
			case err == nil:
				continue
			case errors.Is(err, adapter.ErrChunkedUnsupported):
				log.Info().
					Str("func", "syncRun.downstreamBackground").
					Str("collection", collection).
					Msg("chunked endpoint unavailable, falling back to full fetch")
				chunked = false
			case isTerminal(r.ctx, err), errors.Is(err, ErrLocalStore):
				return err
			default:
				r.markPartial(collection)
				r.warn(models.ErrorKindTransport, collection, err.Error())
				continue
			}
		}

		if err := r.loadFull(collection); err != nil {
			if isTerminal(r.ctx, err) || errors.Is(err, ErrLocalStore) {
				return err
			}
			r.markPartial(collection)
			r.warn(models.ErrorKindTransport, collection, err.Error())
		}
	}

	return nil
}

func (r *syncRun) loadChunked(collection string) error {
	_, err := r.loader.Load(r.ctx, LoadRequest{
		TenantID:   r.report.TenantID,
		Collection: collection,
		ChunkSize:  r.chunkSize,
	}, func(_ context.Context, chunk LoadedChunk) error {
		return r.applyChunk(collection, chunk.Entities, chunk.Progress, chunk.Final)
	})
	return err
}

func (r *syncRun) loadFull(collection string) error {
	resp, err := r.remote.FetchCollections(r.ctx, models.FetchRequest{
		TenantID:    r.report.TenantID,
		Collections: []string{collection},
	})
	if err != nil {
		return err
	}

	entities := resp[collection]
	cr := r.report.Collection[collection]
	cr.FellBack = true
	r.report.Collection[collection] = cr

	return r.applyChunk(collection, entities, models.Progress{Loaded: len(entities), Total: len(entities)}, true)
}

// applyChunk merges one page into the local store atomically, hands a copy
// of the changes to the sink and reports progress. Nothing is applied once
// the run is cancelled.
func (r *syncRun) applyChunk(collection string, entities []models.Entity, progress models.Progress, final bool) error {
	log := logger.FromContext(r.ctx)

	if err := r.ctx.Err(); err != nil {
		return err
	}

	result, err := r.localStore.ApplyMerge(r.ctx, r.report.TenantID, collection, entities, Merge)
	if err != nil {
		return fmt.Errorf("%w: merge %s: %w", ErrLocalStore, collection, err)
	}

	cr := r.report.Collection[collection]
	cr.Add(result)
	cr.Loaded = progress.Loaded
	cr.Total = progress.Total
	r.report.Collection[collection] = cr

	if result.Malformed > 0 {
		r.warn(models.ErrorKindMalformed, collection, fmt.Sprintf("%d malformed entities dropped", result.Malformed))
	}
	if conflicts := result.Conflicts(); conflicts > 0 {
		log.Info().
			Str("func", "syncRun.applyChunk").
			Str("collection", collection).
			Int("local_wins", conflicts).
			Msg("kept newer local entities")
	}

	if r.sink != nil && (result.Changed() || final) {
		r.sink.Apply(models.CollectionSnapshot{
			TenantID:   r.report.TenantID,
			Collection: collection,
			Upserted:   models.CloneEntities(result.Upserted),
			Removed:    slices.Clone(result.Removed),
			Final:      final,
		})
	}

	total := r.totalProgress()
	r.session.SetProgress(total)
	r.publish(models.ProgressEvent{
		Kind:       models.EventProgress,
		Collection: collection,
		Loaded:     progress.Loaded,
		Total:      progress.Total,
		RunLoaded:  total.Loaded,
		RunTotal:   total.Total,
	})
	return nil
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func (r *syncRun) totalProgress() models.Progress {
	var p models.Progress
	for _, cr := range r.report.Collection {
		p.Loaded += cr.Loaded
		p.Total += cr.Total
	}
	return p
}

func (r *syncRun) markPartial(collection string) {
	cr := r.report.Collection[collection]
	cr.Partial = true
	r.report.Collection[collection] = cr
}

func (r *syncRun) warn(kind models.ErrorKind, collection, message string) {
	r.report.Warn(kind, collection, message)
	r.publish(models.ProgressEvent{
		Kind:       models.EventWarning,
		Collection: collection,
		ErrorKind:  kind,
		Message:    message,
	})
}

func (r *syncRun) setPhase(phase models.SyncPhase) {
	r.session.SetPhase(phase)
	r.report.Phase = phase
	r.publish(models.ProgressEvent{Kind: models.EventPhaseChanged, Phase: phase})
}

// fail moves the run to the failed phase and classifies err for the host.
func (r *syncRun) fail(err error) error {
	log := logger.FromContext(r.ctx)

	kind := models.ErrorKindStorage
	switch {
	case r.ctx.Err() != nil || errors.Is(err, context.Canceled):
		kind = models.ErrorKindAborted
		err = fmt.Errorf("%w: %w", ErrSyncAborted, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		kind = models.ErrorKindAuth
	case errors.Is(err, adapter.ErrTransport):
		kind = models.ErrorKindTransport
	}

	r.session.SetPhase(models.PhaseFailed)
	r.report.Phase = models.PhaseFailed
	r.report.Warn(kind, "", err.Error())
	r.publish(models.ProgressEvent{Kind: models.EventPhaseChanged, Phase: models.PhaseFailed})
	r.publish(models.ProgressEvent{Kind: models.EventError, ErrorKind: kind, Message: err.Error()})

	log.Err(err).
		Str("func", "syncRun.fail").
		Str("kind", string(kind)).
		Msg("sync failed")
	return err
}

func (r *syncRun) publish(ev models.ProgressEvent) {
	if r.hub == nil {
		return
	}
	ev.TenantID = r.report.TenantID
	ev.SessionID = r.report.SessionID
	if ev.Phase == "" {
		ev.Phase = r.report.Phase
	}
	ev.At = r.now().UTC()
	r.hub.Publish(ev)
}

// pushErrorKind classifies a non-terminal push error. Anything the remote
// answered without a transport failure counts as a rejection.
func pushErrorKind(err error) models.ErrorKind {
	if errors.Is(err, adapter.ErrTransport) {
		return models.ErrorKindTransport
	}
	return models.ErrorKindPushRejected
}

// isTerminal reports whether err must end the run: the token was rejected
// or the run itself was cancelled.
func isTerminal(ctx context.Context, err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, context.Canceled) ||
		ctx.Err() != nil
}

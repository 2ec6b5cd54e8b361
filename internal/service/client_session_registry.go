package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-records-sync/internal/utils"
	"github.com/MKhiriev/go-records-sync/models"
)

// IDGenerator produces unique identifiers.
type IDGenerator interface {
	Generate() string
}

// SessionRegistry tracks the active sync session of every tenant. At most
// one session per tenant exists at a time; a second acquire for the same
// tenant fails until the first one is released.
type SessionRegistry struct {
	ids IDGenerator
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionRegistry constructs an empty registry.
func NewSessionRegistry(ids IDGenerator) *SessionRegistry {
	return &SessionRegistry{
		ids:      ids,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// TryAcquire starts a session for tenantID. It returns false without
// side effects when the tenant already has one.
//
// The session context derives from ctx, carries the session id and is
// cancelled by [SessionRegistry.Cancel] or [Session.Release].
func (r *SessionRegistry) TryAcquire(ctx context.Context, tenantID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.sessions[tenantID]; busy {
		return nil, false
	}

	id := r.ids.Generate()
	sessionCtx, cancel := context.WithCancel(utils.WithSessionID(ctx, id))
	s := &Session{
		registry: r,
		ctx:      sessionCtx,
		cancel:   cancel,
		state: models.SyncSession{
			ID:        id,
			TenantID:  tenantID,
			Phase:     models.PhaseIdle,
			StartedAt: r.now().UTC(),
		},
	}
	s.ctx = context.WithValue(s.ctx, sessionCtxKey{}, s)
	r.sessions[tenantID] = s

	return s, true
}

// Get returns a copy of the active session state of tenantID.
func (r *SessionRegistry) Get(tenantID string) (models.SyncSession, bool) {
	r.mu.Lock()
	s, ok := r.sessions[tenantID]
	r.mu.Unlock()

	if !ok {
		return models.SyncSession{}, false
	}
	return s.State(), true
}

// Cancel cancels the context of the active session of tenantID. The session
// stays registered until its owner releases it.
func (r *SessionRegistry) Cancel(tenantID string) bool {
	r.mu.Lock()
	s, ok := r.sessions[tenantID]
	r.mu.Unlock()

	if ok {
		s.cancel()
	}
	return ok
}

// Active returns the states of all active sessions.
func (r *SessionRegistry) Active() []models.SyncSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.SyncSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.State())
	}
	return out
}

func (r *SessionRegistry) release(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessions[s.state.TenantID] == s {
		delete(r.sessions, s.state.TenantID)
	}
}

// Session is one active sync run of a tenant.
type Session struct {
	registry *SessionRegistry
	ctx      context.Context
	cancel   context.CancelFunc

	mu    sync.RWMutex
	state models.SyncSession
}

type sessionCtxKey struct{}

// SessionFromContext returns the session whose context ctx derives from.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return s, ok
}

// Context is cancelled when the session is cancelled or released.
func (s *Session) Context() context.Context {
	return s.ctx
}

func (s *Session) ID() string {
	return s.state.ID
}

func (s *Session) TenantID() string {
	return s.state.TenantID
}

// State returns a copy of the session state.
func (s *Session) State() models.SyncSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) SetPhase(phase models.SyncPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Phase = phase
}

func (s *Session) SetProgress(p models.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Progress = p
}

// Release removes the session from the registry and cancels its context.
// It is safe to call more than once.
func (s *Session) Release() {
	s.cancel()
	s.registry.release(s)
}

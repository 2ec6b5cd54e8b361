package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-records-sync/internal/adapter"
	"github.com/MKhiriev/go-records-sync/models"
)

// fakeRemote is an in-memory RemoteAdapter. Collections are served sorted by
// id; failure hooks let tests inject errors per call.
type fakeRemote struct {
	mu sync.Mutex

	collections map[string][]models.Entity
	token       string
	tenantID    string

	// chunkErr is consulted before every FetchChunk; a nil result serves the page.
	chunkErr func(req models.ChunkRequest, call int) error
	// fetchErr is consulted before every FetchCollections.
	fetchErr func(req models.FetchRequest) error
	// push decides the outcome of every Push; nil accepts.
	push func(req models.PushRequest) (models.PushResponse, error)
	// onChunk runs after a page was served.
	onChunk func(req models.ChunkRequest)

	chunkCalls []models.ChunkRequest
	fetchCalls []models.FetchRequest
	pushCalls  []models.PushRequest
	clock      int64
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{collections: make(map[string][]models.Entity), clock: 1000}
}

func (f *fakeRemote) seed(collection string, n int, updatedAt int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range n {
		f.collections[collection] = append(f.collections[collection], models.Entity{
			ID:        fmt.Sprintf("%s-%05d", collection, i),
			UpdatedAt: updatedAt,
			Payload:   []byte(fmt.Sprintf(`{"n":%d}`, i)),
		})
	}
}

func (f *fakeRemote) sorted(collection string) []models.Entity {
	out := slices.Clone(f.collections[collection])
	slices.SortFunc(out, func(a, b models.Entity) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func (f *fakeRemote) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeRemote) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeRemote) TenantID() (string, error) {
	if f.tenantID == "" {
		return "", adapter.ErrEmptyToken
	}
	return f.tenantID, nil
}

func (f *fakeRemote) FetchCollections(ctx context.Context, req models.FetchRequest) (models.FetchResponse, error) {
	f.mu.Lock()
	f.fetchCalls = append(f.fetchCalls, req)
	hook := f.fetchErr
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if hook != nil {
		if err := hook(req); err != nil {
			return nil, err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	resp := make(models.FetchResponse, len(req.Collections))
	for _, c := range req.Collections {
		resp[c] = models.CloneEntities(f.sorted(c))
	}
	return resp, nil
}

func (f *fakeRemote) FetchChunk(ctx context.Context, req models.ChunkRequest) (models.ChunkResponse, error) {
	f.mu.Lock()
	f.chunkCalls = append(f.chunkCalls, req)
	call := len(f.chunkCalls)
	hook := f.chunkErr
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.ChunkResponse{}, err
	}
	if hook != nil {
		if err := hook(req, call); err != nil {
			return models.ChunkResponse{}, err
		}
	}

	f.mu.Lock()
	all := f.sorted(req.Collection)
	start := min(req.Offset, len(all))
	end := min(start+req.Limit, len(all))
	page := models.NewChunkResponse(models.CloneEntities(all[start:end]), len(all), req.Limit, req.Offset)
	after := f.onChunk
	f.mu.Unlock()

	if after != nil {
		after(req)
	}
	return page, nil
}

func (f *fakeRemote) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	f.mu.Lock()
	f.pushCalls = append(f.pushCalls, req)
	hook := f.push
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.PushResponse{}, err
	}
	if hook != nil {
		return hook(req)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.clock++
	ts := f.clock
	return models.PushResponse{Accepted: true, ServerUpdatedAt: &ts}, nil
}

func (f *fakeRemote) chunkRequests() []models.ChunkRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.chunkCalls)
}

func (f *fakeRemote) pushRequests() []models.PushRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.pushCalls)
}

// recordingSink collects every snapshot it is given.
type recordingSink struct {
	mu        sync.Mutex
	snapshots []models.CollectionSnapshot
}

func (s *recordingSink) Apply(snapshot models.CollectionSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, snapshot)
}

func (s *recordingSink) all() []models.CollectionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.snapshots)
}

// seqIDs generates "id-1", "id-2", ...
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

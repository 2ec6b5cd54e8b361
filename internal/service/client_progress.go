package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-records-sync/models"
)

const defaultProgressBuffer = 64

// ProgressHub fans progress events out to subscribers. Publishing never
// blocks: a subscriber that falls behind loses its oldest buffered events.
type ProgressHub struct {
	buffer int

	mu     sync.RWMutex
	subs   map[int]chan models.ProgressEvent
	nextID int
	closed bool
}

// NewProgressHub constructs a hub whose subscriber channels hold buffer
// events.
func NewProgressHub(buffer int) *ProgressHub {
	if buffer <= 0 {
		buffer = defaultProgressBuffer
	}
	return &ProgressHub{
		buffer: buffer,
		subs:   make(map[int]chan models.ProgressEvent),
	}
}

// Subscribe returns a channel of events and a function that unsubscribes and
// closes it. The channel is also closed by [ProgressHub.Close].
func (h *ProgressHub) Subscribe() (<-chan models.ProgressEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan models.ProgressEvent, h.buffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		})
	}
}

// Publish delivers ev to every subscriber.
func (h *ProgressHub) Publish(ev models.ProgressEvent) {
	// the write lock keeps drop-oldest from racing another publisher
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- ev:
			continue
		default:
		}

		select {
		case <-ch:
		default:
		}
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close closes every subscriber channel. Later publishes are dropped.
func (h *ProgressHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

// Callbacks is the host surface for hosts that prefer callbacks over a
// channel. Nil fields are skipped. OnProgress receives the run-wide counts.
type Callbacks struct {
	OnCriticalLoaded func()
	OnProgress       func(loaded, total int)
	OnComplete       func()
	OnError          func(kind models.ErrorKind, message string)
}

// Dispatch invokes the callback matching ev.
func (c Callbacks) Dispatch(ev models.ProgressEvent) {
	switch ev.Kind {
	case models.EventCriticalLoaded:
		if c.OnCriticalLoaded != nil {
			c.OnCriticalLoaded()
		}
	case models.EventProgress:
		if c.OnProgress != nil {
			c.OnProgress(ev.RunLoaded, ev.RunTotal)
		}
	case models.EventComplete:
		if c.OnComplete != nil {
			c.OnComplete()
		}
	case models.EventError, models.EventWarning:
		if c.OnError != nil {
			c.OnError(ev.ErrorKind, ev.Message)
		}
	}
}

// Listen dispatches events to the callbacks until events is closed or ctx
// is done.
func (c Callbacks) Listen(ctx context.Context, events <-chan models.ProgressEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.Dispatch(ev)
		}
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-records-sync/models"
)

func progressEvent(loaded int) models.ProgressEvent {
	return models.ProgressEvent{Kind: models.EventProgress, Loaded: loaded, Total: 100}
}

// ── ProgressHub ─────────────────────────────────────────────────────────────

func TestProgressHub_FanOut(t *testing.T) {
	hub := NewProgressHub(4)
	a, unsubA := hub.Subscribe()
	b, unsubB := hub.Subscribe()
	defer unsubA()
	defer unsubB()

	hub.Publish(progressEvent(1))

	assert.Equal(t, 1, (<-a).Loaded)
	assert.Equal(t, 1, (<-b).Loaded)
}

func TestProgressHub_SlowSubscriberDropsOldest(t *testing.T) {
	hub := NewProgressHub(2)
	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		for i := 1; i <= 5; i++ {
			hub.Publish(progressEvent(i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish заблокировался на медленном подписчике")
	}

	assert.Equal(t, 4, (<-ch).Loaded)
	assert.Equal(t, 5, (<-ch).Loaded)
}

func TestProgressHub_Unsubscribe(t *testing.T) {
	hub := NewProgressHub(1)
	ch, unsubscribe := hub.Subscribe()

	unsubscribe()
	unsubscribe()
	hub.Publish(progressEvent(1))

	_, open := <-ch
	assert.False(t, open)
}

func TestProgressHub_Close(t *testing.T) {
	hub := NewProgressHub(0)
	ch, unsubscribe := hub.Subscribe()

	hub.Publish(progressEvent(1))
	hub.Close()
	hub.Close()
	hub.Publish(progressEvent(2))
	unsubscribe()

	ev, open := <-ch
	require.True(t, open, "buffered events survive Close")
	assert.Equal(t, 1, ev.Loaded)
	_, open = <-ch
	assert.False(t, open)

	late, _ := hub.Subscribe()
	_, open = <-late
	assert.False(t, open)
}

// ── Callbacks ───────────────────────────────────────────────────────────────

func TestCallbacks_Dispatch(t *testing.T) {
	var (
		critical, complete int
		loaded, total      int
		kind               models.ErrorKind
		message            string
	)
	cb := Callbacks{
		OnCriticalLoaded: func() { critical++ },
		OnProgress:       func(l, t int) { loaded, total = l, t },
		OnComplete:       func() { complete++ },
		OnError: func(k models.ErrorKind, m string) {
			kind, message = k, m
		},
	}

	cb.Dispatch(models.ProgressEvent{Kind: models.EventCriticalLoaded})
	ev := progressEvent(40)
	ev.RunLoaded, ev.RunTotal = 140, 300
	cb.Dispatch(ev)
	cb.Dispatch(models.ProgressEvent{Kind: models.EventComplete})
	cb.Dispatch(models.ProgressEvent{Kind: models.EventError, ErrorKind: models.ErrorKindAuth, Message: "token expired"})
	cb.Dispatch(models.ProgressEvent{Kind: models.EventPhaseChanged})

	assert.Equal(t, 1, critical)
	assert.Equal(t, 1, complete)
	// колбэк получает счётчики всего прогона, а не коллекции
	assert.Equal(t, 140, loaded)
	assert.Equal(t, 300, total)
	assert.Equal(t, models.ErrorKindAuth, kind)
	assert.Equal(t, "token expired", message)
}

func TestCallbacks_Dispatch_NilCallbacks(t *testing.T) {
	assert.NotPanics(t, func() {
		Callbacks{}.Dispatch(models.ProgressEvent{Kind: models.EventCriticalLoaded})
		Callbacks{}.Dispatch(progressEvent(1))
		Callbacks{}.Dispatch(models.ProgressEvent{Kind: models.EventComplete})
		Callbacks{}.Dispatch(models.ProgressEvent{Kind: models.EventWarning})
	})
}

func TestCallbacks_Listen_StopsOnContext(t *testing.T) {
	hub := NewProgressHub(1)
	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Callbacks{}.Listen(ctx, ch)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Listen не завершился после отмены контекста")
	}
}

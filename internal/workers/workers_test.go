// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-records-sync/internal/logger"
)

// blockingWorker counts its runs and blocks until cancelled.
type blockingWorker struct {
	runCount atomic.Int32
}

func (m *blockingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

type failingWorker struct{ err error }

func (f failingWorker) Run(context.Context) error { return f.err }

// countingChecker counts checks and fails while fail is set.
type countingChecker struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (c *countingChecker) Check(context.Context) error {
	c.calls.Add(1)
	if c.fail.Load() {
		return errors.New("db is down")
	}
	return nil
}

// ── Workers ──

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocker := &blockingWorker{}

	err := NewWorkers(blocker, failingWorker{err: boom}).Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

// ── Probe ──

func TestProbe_ChecksImmediatelyAndPeriodically(t *testing.T) {
	checker := &countingChecker{}
	p := NewProbe(checker, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool { return checker.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestProbe_FailuresDoNotStopIt(t *testing.T) {
	checker := &countingChecker{}
	checker.fail.Store(true)
	p := NewProbe(checker, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, p.Run(ctx))
	assert.Greater(t, checker.calls.Load(), int32(1))
}

func TestNewProbe_DefaultInterval(t *testing.T) {
	p := NewProbe(&countingChecker{}, 0, logger.Nop()).(*probe)
	assert.Equal(t, defaultProbeInterval, p.interval)
}

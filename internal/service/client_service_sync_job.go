package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/models"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	logger      *logger.Logger

	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	reportMu   sync.RWMutex
	lastReport *models.SyncReport
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync on a
// ticker and on demand. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		logger:      logger,
		trigger:     make(chan struct{}, 1),
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that syncs right away, every interval and
// on Trigger. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, tenantID string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.run(jobCtx, tenantID)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx, tenantID)
			case <-j.trigger:
				j.run(jobCtx, tenantID)
			}
		}
	}()
}

// Trigger implements ClientSyncJob.
func (j *clientSyncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// LastReport implements ClientSyncJob.
func (j *clientSyncJob) LastReport() (models.SyncReport, bool) {
	j.reportMu.RLock()
	defer j.reportMu.RUnlock()

	if j.lastReport == nil {
		return models.SyncReport{}, false
	}
	return *j.lastReport, true
}

func (j *clientSyncJob) run(ctx context.Context, tenantID string) {
	report, err := j.syncService.Sync(ctx, tenantID)
	if err != nil {
		j.logger.Err(err).
			Str("func", "clientSyncJob.run").
			Str("tenant_id", tenantID).
			Msg("background sync failed")
	}
	if report.Coalesced {
		return
	}

	j.reportMu.Lock()
	j.lastReport = &report
	j.reportMu.Unlock()
}

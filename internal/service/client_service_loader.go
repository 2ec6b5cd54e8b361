package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-records-sync/internal/adapter"
	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/models"
)

const (
	defaultRetryBaseDelay = 500 * time.Millisecond
	defaultRetryMaxDelay  = 10 * time.Second
)

type chunkedLoader struct {
	remote adapter.RemoteAdapter

	chunkSize  int
	maxRetries uint64
	baseDelay  time.Duration
	maxDelay   time.Duration
	pause      time.Duration
}

// NewChunkedLoader constructs a [ChunkedLoader] that pages through remote
// using the retry and pacing settings of cfg.
func NewChunkedLoader(remote adapter.RemoteAdapter, cfg config.Sync) ChunkedLoader {
	l := &chunkedLoader{
		remote:     remote,
		chunkSize:  models.ClampChunkSize(cfg.ChunkSize),
		maxRetries: uint64(max(cfg.MaxRetries, 0)),
		baseDelay:  cfg.RetryBaseDelay,
		maxDelay:   cfg.RetryMaxDelay,
		pause:      cfg.ChunkPause,
	}
	if l.baseDelay <= 0 {
		l.baseDelay = defaultRetryBaseDelay
	}
	if l.maxDelay < l.baseDelay {
		l.maxDelay = max(defaultRetryMaxDelay, l.baseDelay)
	}

	return l
}

// Load implements [ChunkedLoader].
//
// Pages are requested from offset 0 until the remote reports no more data.
// The latest HasMore and NextOffset are trusted over the Total of earlier
// pages, so a collection shrinking during the load terminates cleanly. A page
// that makes no progress ends the load as well.
func (l *chunkedLoader) Load(ctx context.Context, req LoadRequest, onChunk ChunkFunc) (LoadResult, error) {
	log := logger.FromContext(ctx)

	size := l.chunkSize
	if req.ChunkSize != 0 {
		size = models.ClampChunkSize(req.ChunkSize)
	}

	var (
		result LoadResult
		offset int
	)
	for {
		if err := ctx.Err(); err != nil {
			result.Partial = true
			return result, err
		}

		page, err := l.fetch(ctx, models.ChunkRequest{
			TenantID:   req.TenantID,
			Collection: req.Collection,
			Limit:      size,
			Offset:     offset,
		})
		if err != nil {
			result.Partial = true
			log.Err(err).
				Str("func", "chunkedLoader.Load").
				Str("collection", req.Collection).
				Int("offset", offset).
				Int("loaded", result.Progress.Loaded).
				Msg("page failed, returning partial result")
			return result, fmt.Errorf("load %s at offset %d: %w", req.Collection, offset, err)
		}
		result.Requests++

		result.Entities = append(result.Entities, page.Entities...)
		result.Progress.Loaded += len(page.Entities)

		final := !page.HasMore || len(page.Entities) == 0
		if final {
			result.Progress.Total = result.Progress.Loaded
		} else {
			result.Progress.Total = max(page.Total, result.Progress.Loaded)
		}

		if onChunk != nil {
			chunk := LoadedChunk{
				Collection: req.Collection,
				Offset:     offset,
				Entities:   page.Entities,
				Progress:   result.Progress,
				Final:      final,
			}
			if err = onChunk(ctx, chunk); err != nil {
				result.Partial = !final
				return result, err
			}
		}

		if final {
			return result, nil
		}

		offset = max(page.NextOffset, offset+len(page.Entities))

		if err = l.yield(ctx); err != nil {
			result.Partial = true
			return result, err
		}
	}
}

// fetch requests one page, retrying transport failures with capped
// exponential backoff.
func (l *chunkedLoader) fetch(ctx context.Context, req models.ChunkRequest) (models.ChunkResponse, error) {
	log := logger.FromContext(ctx)

	backoff := retry.WithMaxRetries(l.maxRetries,
		retry.WithCappedDuration(l.maxDelay, retry.NewExponential(l.baseDelay)))

	var page models.ChunkResponse
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		var err error
		page, err = l.remote.FetchChunk(ctx, req)
		if err == nil {
			return nil
		}
		if errors.Is(err, adapter.ErrTransport) {
			log.Warn().Err(err).
				Str("func", "chunkedLoader.fetch").
				Str("collection", req.Collection).
				Int("offset", req.Offset).
				Int("attempt", attempt).
				Msg("page request failed, retrying")
			return retry.RetryableError(err)
		}
		return err
	})

	return page, err
}

// yield hands control back to the scheduler between pages so the host stays
// responsive while large collections load.
func (l *chunkedLoader) yield(ctx context.Context) error {
	runtime.Gosched()

	if l.pause <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(l.pause)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/logger"
)

// ClientStorages groups the client-side storage of the sync engine.
type ClientStorages struct {
	// Store holds the cached collections and the pending change queue.
	Store LocalStore
}

// NewClientStorages initialises the client storage layer. The DSN
// [MemoryDSN] selects a process-local store; any other DSN is a SQLite file
// that is created and migrated on first use.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == MemoryDSN {
		logger.Info().Str("func", "NewClientStorages").Msg("using in-memory local store")
		return &ClientStorages{Store: NewMemoryStore()}, nil
	}

	logger.Info().Str("func", "NewClientStorages").Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Store: NewLocalRepository(db, logger),
	}, nil
}

// Close releases the underlying store.
func (s *ClientStorages) Close() error {
	return s.Store.Close()
}

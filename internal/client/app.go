package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-records-sync/internal/adapter"
	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/service"
	"github.com/MKhiriev/go-records-sync/internal/store"
	"github.com/MKhiriev/go-records-sync/internal/tui"
	"github.com/MKhiriev/go-records-sync/models"
)

// UIFactory builds the foreground UI once the engine is wired.
type UIFactory func(opts tui.Options) UI

type App struct {
	cfg      *config.ClientConfig
	tenantID string

	localStore store.LocalStore
	services   *service.ClientServices
	state      *StateCache
	ui         UI

	unsubscribe func()
	logger      *logger.Logger
}

// NewApp connects the local store and the remote adapter described by cfg
// and wires the sync engine with the terminal UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(ctx, cfg, storages.Store, remote, func(opts tui.Options) UI {
		opts.BuildInfo = buildInfo
		return tui.New(opts, logger)
	}, logger)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(
	ctx context.Context,
	cfg *config.ClientConfig,
	localStore store.LocalStore,
	remote adapter.RemoteAdapter,
	newUI UIFactory,
	logger *logger.Logger,
) (*App, error) {
	tenantID, err := remote.TenantID()
	if err != nil {
		return nil, fmt.Errorf("read tenant from token: %w", err)
	}

	state := NewStateCache(tenantID)
	services := service.NewClientServices(localStore, remote, state, cfg.Sync, logger)

	if err = state.Preload(ctx, services.EntityService, cfg.Sync.Collections); err != nil {
		return nil, err
	}

	events, unsubscribe := services.Progress.Subscribe()
	ui := newUI(tui.Options{
		TenantID: tenantID,
		Events:   events,
		Job:      services.SyncJob,
		Sessions: services.SyncService,
		State:    state,
	})

	logger.Info().Str("tenant_id", tenantID).Msg("client app created")

	return &App{
		cfg:         cfg,
		tenantID:    tenantID,
		localStore:  localStore,
		services:    services,
		state:       state,
		ui:          ui,
		unsubscribe: unsubscribe,
		logger:      logger,
	}, nil
}

// State returns the host state cache.
func (a *App) State() *StateCache {
	return a.state
}

// Run starts the background sync job and blocks in the UI. Quitting from
// the UI is a normal exit.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.services.SyncJob.Start(ctx, a.tenantID, a.cfg.Workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	err := a.ui.Run(ctx)
	a.services.SyncService.Cancel(a.tenantID)

	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("tenant_id", a.tenantID).Msg("user quit")
		return nil
	}
	return err
}

// Close releases the progress subscription and the local store.
func (a *App) Close() error {
	a.unsubscribe()
	a.services.Progress.Close()
	return a.localStore.Close()
}

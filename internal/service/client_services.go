package service

import (
	"github.com/MKhiriev/go-records-sync/internal/adapter"
	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/store"
	"github.com/MKhiriev/go-records-sync/internal/utils"
)

type ClientServices struct {
	EntityService ClientEntityService
	SyncService   ClientSyncService
	SyncJob       ClientSyncJob
	Sessions      *SessionRegistry
	Progress      *ProgressHub
}

func NewClientServices(localStore store.LocalStore, remote adapter.RemoteAdapter, sink StateSink, cfg config.Sync, logger *logger.Logger) *ClientServices {
	ids := utils.NewUUIDGenerator()
	sessions := NewSessionRegistry(ids)
	hub := NewProgressHub(cfg.ProgressBuffer)
	loader := NewChunkedLoader(remote, cfg)
	syncSvc := NewClientSyncService(localStore, remote, loader, sessions, hub, sink, cfg, logger)

	return &ClientServices{
		EntityService: NewClientEntityService(localStore, ids, logger),
		SyncService:   syncSvc,
		SyncJob:       NewClientSyncJob(syncSvc, logger),
		Sessions:      sessions,
		Progress:      hub,
	}
}

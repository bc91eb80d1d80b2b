package service

import (
	"sync"

	"github.com/MKhiriev/sheetmark/internal/adapter"
	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/internal/store"
)

type Services struct {
	SyncService   SyncService
	MirrorService MirrorService
	SyncJob       SyncJob
}

// NewServices wires the reconciliation services over the shared storages and
// remote table adapter. All services share one reconciliation mutex, so bulk
// passes and single-entry mirrors never interleave.
func NewServices(storages *store.Storages, sheets adapter.SheetAdapter, logger *logger.Logger) *Services {
	reconcile := &sync.Mutex{}

	syncService := NewSyncService(storages, sheets, reconcile, logger)

	return &Services{
		SyncService:   syncService,
		MirrorService: NewMirrorService(sheets, reconcile, logger),
		SyncJob:       NewSyncJob(syncService, logger),
	}
}

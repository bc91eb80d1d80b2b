package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/sheetmark/internal/adapter"
	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/internal/store"
	"github.com/MKhiriev/sheetmark/models"
)

// Operation labels attached to per-item failures of a bulk pass.
const (
	opFind   = "find"
	opCreate = "create"
	opRename = "rename"
	opDelete = "delete"
)

type syncService struct {
	storages  *store.Storages
	sheets    adapter.SheetAdapter
	reconcile *sync.Mutex

	logger *logger.Logger
	now    func() time.Time
}

// NewSyncService builds the reconciliation engine over the local storages and
// the remote table adapter. reconcile is the process-wide lock shared with
// the mirror service; every entry point holds it for the whole pass.
func NewSyncService(storages *store.Storages, sheets adapter.SheetAdapter, reconcile *sync.Mutex, log *logger.Logger) SyncService {
	return &syncService{
		storages:  storages,
		sheets:    sheets,
		reconcile: reconcile,
		logger:    log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *syncService) BulkSync(ctx context.Context) (models.SyncReport, error) {
	s.reconcile.Lock()
	defer s.reconcile.Unlock()

	// A failed remote read aborts the pass before any local mutation.
	remote, err := s.sheets.ReadAll(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("read remote table: %w", err)
	}

	prior, err := s.storages.Snapshots.Load(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("load prior snapshot: %w", err)
	}

	report := models.SyncReport{Created: models.SyncResult{}}

	s.convergeFromRemote(ctx, remote, &report)
	s.removeTombstoned(ctx, remote, prior, &report)

	// The new baseline is exactly what the remote read contained at the
	// start of this pass, not any changes made during it.
	snapshot := make(models.Snapshot, 0, len(remote))
	for _, row := range remote {
		snapshot = append(snapshot, models.SnapshotEntry{Title: row.Title, URL: row.URL})
	}

	if err = s.storages.Snapshots.Store(ctx, snapshot, report.Created, s.now()); err != nil {
		return report, fmt.Errorf("store snapshot: %w", err)
	}

	s.logger.Info().
		Int("remote_rows", len(remote)).
		Int("created", len(report.Created)).
		Int("failures", len(report.Failures)).
		Msg("bulk sync completed")

	return report, nil
}

// convergeFromRemote is Phase A: walk the remote rows in sheet order, create
// entries missing locally and mirror title changes onto the first url match.
// The url column is never rewritten here.
func (s *syncService) convergeFromRemote(ctx context.Context, remote []models.SheetRow, report *models.SyncReport) {
	for _, row := range remote {
		matches, err := s.storages.Bookmarks.FindByURL(ctx, row.URL)
		if err != nil {
			report.Failures = append(report.Failures, models.SyncFailure{URL: row.URL, Op: opFind, Err: err})
			continue
		}

		if len(matches) == 0 {
			if _, err = s.storages.Bookmarks.Create(ctx, models.Bookmark{Title: row.Title, URL: row.URL}); err != nil {
				report.Failures = append(report.Failures, models.SyncFailure{URL: row.URL, Op: opCreate, Err: err})
				continue
			}
			report.Created = append(report.Created, models.SnapshotEntry{Title: row.Title, URL: row.URL})
			continue
		}

		// Duplicate local urls: first match only.
		first := matches[0]
		if first.Title != row.Title {
			if err = s.storages.Bookmarks.UpdateTitle(ctx, first.ID, row.Title); err != nil {
				report.Failures = append(report.Failures, models.SyncFailure{URL: row.URL, Op: opRename, Err: err})
			}
		}
	}
}

// removeTombstoned is Phase B: a url present in the prior snapshot but absent
// from the current remote read was deleted from the spreadsheet, so the local
// entry goes too. A url still present remotely is left untouched regardless
// of local edits since the last sync, and an entry never recorded in any
// snapshot is never removed.
func (s *syncService) removeTombstoned(ctx context.Context, remote []models.SheetRow, prior models.Snapshot, report *models.SyncReport) {
	remoteURLs := make(map[string]struct{}, len(remote))
	for _, row := range remote {
		remoteURLs[row.URL] = struct{}{}
	}

	for _, entry := range prior {
		if _, stillRemote := remoteURLs[entry.URL]; stillRemote {
			continue
		}

		matches, err := s.storages.Bookmarks.FindByURL(ctx, entry.URL)
		if err != nil {
			report.Failures = append(report.Failures, models.SyncFailure{URL: entry.URL, Op: opFind, Err: err})
			continue
		}
		if len(matches) == 0 {
			// Already gone locally: a silent no-op, not an error.
			continue
		}

		if err = s.storages.Bookmarks.Delete(ctx, matches[0].ID); err != nil {
			report.Failures = append(report.Failures, models.SyncFailure{URL: entry.URL, Op: opDelete, Err: err})
			continue
		}

		s.logger.Debug().Str("url", entry.URL).Msg("removed locally after remote deletion")
	}
}

func (s *syncService) Export(ctx context.Context) (int, error) {
	s.reconcile.Lock()
	defer s.reconcile.Unlock()

	remote, err := s.sheets.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("read remote table: %w", err)
	}

	existing := make(map[string]struct{}, len(remote))
	for _, row := range remote {
		existing[row.URL] = struct{}{}
	}

	local, err := s.storages.Bookmarks.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("enumerate local bookmarks: %w", err)
	}

	added := 0
	for _, bookmark := range local {
		if _, ok := existing[bookmark.URL]; ok {
			continue
		}

		if err = s.sheets.AppendRow(ctx, bookmark.ID, bookmark.Title, bookmark.URL); err != nil {
			s.logger.Err(err).
				Str("url", bookmark.URL).
				Msg("export append failed, continuing with remaining bookmarks")
			continue
		}
		added++
	}

	s.logger.Info().
		Int("local", len(local)).
		Int("added", added).
		Msg("export completed")

	return added, nil
}

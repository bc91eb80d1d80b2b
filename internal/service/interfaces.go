package service

import (
	"context"
	"time"

	"github.com/MKhiriev/sheetmark/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService defines the bulk reconciliation entry points. Both operations
// take the single in-process reconciliation lock: at most one reconciliation
// operation runs at a time.
type SyncService interface {
	// BulkSync performs the two-phase, two-way reconciliation pass.
	//
	// Phase A walks the freshly read remote table in sheet order and makes
	// the local tree converge to it: entries missing locally are created
	// (and recorded in the returned report), entries whose title differs
	// are renamed in place. Phase B removes local entries whose url was
	// present in the prior snapshot but is absent from the current remote
	// read (a remote deletion observed through the snapshot baseline).
	//
	// A remote-read failure aborts the pass before any local mutation.
	// Failures of individual local operations are collected into the
	// report and never abort the remaining items. On completion the
	// snapshot cache is atomically overwritten with the rows read at the
	// start of the pass.
	BulkSync(ctx context.Context) (models.SyncReport, error)

	// Export appends every local url-bearing entry absent from the remote
	// table. Purely additive: it never deletes or updates remote rows.
	// Returns the number of newly appended rows.
	Export(ctx context.Context) (int, error)
}

// MirrorService propagates one local change event to the remote table. Each
// operation is a one-shot mirror: failures leave both stores as they were and
// the event can simply be re-triggered later, since every remote mutation is
// fresh-read based and idempotent.
type MirrorService interface {
	// BookmarkCreated appends a row for the new entry. Entries without a
	// url (folders) are ignored. Duplicate creation events are harmless:
	// the append skips urls already present remotely.
	BookmarkCreated(ctx context.Context, bookmark models.Bookmark) error

	// BookmarkChanged overwrites the remote row matched by previousURL
	// with the entry's effective values, so url renames propagate. An
	// empty previousURL means the url did not change. A row miss is a
	// normal outcome, logged and ignored.
	BookmarkChanged(ctx context.Context, bookmark models.Bookmark, previousURL string) error

	// BookmarkRemoved deletes the remote row matched by the removed
	// entry's id. This is the one operation matching by id instead of
	// url: the removal event does not reliably carry the url. A row miss
	// is a normal outcome, logged and ignored.
	BookmarkRemoved(ctx context.Context, id string) error
}

// SyncJob defines the contract for a background worker that periodically
// runs BulkSync.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

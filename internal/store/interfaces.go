package store

import (
	"context"
	"time"

	"github.com/MKhiriev/sheetmark/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BookmarkRepository exposes a flat view over the local hierarchical bookmark
// store. Folders are rows without a url; every read used by reconciliation
// enumerates url-bearing entries only, with folder structure discarded.
type BookmarkRepository interface {
	// ListAll returns every url-bearing entry of the tree, flattened.
	ListAll(ctx context.Context) ([]models.Bookmark, error)

	// Get returns the single entry identified by id. Returns
	// [ErrBookmarkNotFound] when no entry matches.
	Get(ctx context.Context, id string) (models.Bookmark, error)

	// Create inserts a new url-bearing entry. When bookmark.ID is empty a
	// new identifier is generated; the stored record is returned.
	Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)

	// CreateFolder inserts a folder node (no url) under parentID; an empty
	// parentID means a root-level folder.
	CreateFolder(ctx context.Context, title, parentID string) (models.Bookmark, error)

	// UpdateTitle renames the entry in place. The url column is never
	// rewritten: a url change is modelled as delete+create by the caller.
	UpdateTitle(ctx context.Context, id, title string) error

	// Delete removes the entry identified by id.
	Delete(ctx context.Context, id string) error

	// FindByURL returns every entry whose url equals url, in insertion
	// order. Zero matches is a normal outcome (empty slice, nil error).
	FindByURL(ctx context.Context, url string) ([]models.Bookmark, error)
}

// SnapshotCache is the durable memory of the previous remote snapshot, used
// only as the tombstone-detection baseline, plus the last sync result kept
// for display.
type SnapshotCache interface {
	// Load returns the snapshot written by the most recent bulk sync, or
	// an empty snapshot if none was ever written.
	Load(ctx context.Context) (models.Snapshot, error)

	// Store overwrites the snapshot, the sync result, and the sync
	// timestamp in a single transaction: no partial visibility of one
	// without the others.
	Store(ctx context.Context, snapshot models.Snapshot, result models.SyncResult, at time.Time) error

	// LastSync returns the stored sync result and timestamp. A zero
	// timestamp means no bulk sync has completed yet.
	LastSync(ctx context.Context) (models.SyncResult, time.Time, error)
}

package models

// Bookmark is a single url-bearing entry of the local bookmark tree.
// URL is the cross-system identity key: matching between the local store and
// the remote table is always done by url. ID is the local store identifier and
// is never compared against remote row ids.
type Bookmark struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// SheetRow is one data row of the remote table: (id, timestamp, title, url).
// ID is an opaque label chosen by whichever side created the row and is not
// guaranteed unique or stable; url stays authoritative for matching.
//
// Index is the 1-based spreadsheet row position at the moment the row was
// read. Positions shift after any insert or delete, so an Index is only valid
// within the read it came from and must never be cached across calls.
type SheetRow struct {
	ID        string
	Timestamp string
	Title     string
	URL       string
	Index     int
}

// SnapshotEntry is the (title, url) pair the reconciliation engine remembers
// about one remote row.
type SnapshotEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Snapshot is what the remote table contained at the end of the last
// successful bulk sync. It is the tombstone-detection baseline and the only
// state the engine persists across runs.
type Snapshot []SnapshotEntry

// SyncResult is the list of entries created locally during the most recent
// bulk sync. It is persisted together with the snapshot and used for display
// only.
type SyncResult []SnapshotEntry

// SyncFailure records one non-fatal per-item failure of a bulk pass. Failures
// are collected and reported instead of aborting the remaining items.
type SyncFailure struct {
	URL string `json:"url"`
	Op  string `json:"op"`
	Err error  `json:"-"`
}

// SyncReport is the outcome of one bulk two-way pass.
type SyncReport struct {
	Created  SyncResult
	Failures []SyncFailure
}

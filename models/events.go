package models

// BookmarkEventType enumerates the local change notifications the event
// bridge understands.
type BookmarkEventType string

const (
	BookmarkCreated BookmarkEventType = "created"
	BookmarkChanged BookmarkEventType = "changed"
	BookmarkRemoved BookmarkEventType = "removed"
)

// BookmarkEvent is one typed local change notification. Bookmark holds the
// effective values after the change has been applied.
//
// PreviousURL carries the url the entry had before a Changed event; it equals
// Bookmark.URL unless the change renamed the url. The mirror update matches
// the remote row by PreviousURL so renames propagate.
type BookmarkEvent struct {
	Type        BookmarkEventType `json:"type"`
	Bookmark    Bookmark          `json:"bookmark"`
	PreviousURL string            `json:"previous_url,omitempty"`
}

// Package adapter provides the transport layer for communicating with the
// remote bookmark table.
//
// The primary abstraction is [SheetAdapter], which translates row-oriented
// read/append/update/delete operations into calls against the Sheets v4 REST
// surface. The package ships an HTTP implementation ([NewHTTPSheetAdapter])
// built on resty.
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrRemoteUnavailable] for auth/network/non-2xx
// failures, [ErrRowNotFound] for update/delete misses).
package adapter

import (
	"context"

	"github.com/MKhiriev/sheetmark/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sheet_adapter_mock.go -package=mock

// SheetAdapter defines row-oriented access to the remote bookmark table.
// The table owns the row-schema contract: columns are (id, timestamp, title,
// url), row 1 is the header, row 2 is the first data row.
//
// Every mutating operation re-derives the target row position from a fresh
// full read rather than trusting a previously cached position, because row
// positions shift whenever any row is inserted or removed. This trades one
// extra read per mutation for correctness under a single-writer assumption.
type SheetAdapter interface {
	// ReadAll returns every data row of the table in sheet order, header
	// excluded. Rows with fewer than four columns or an empty url column
	// are skipped. There is no partial or incremental read. Returns
	// [ErrRemoteUnavailable] (wrapped) on transport or auth failure and
	// [ErrConfigurationMissing] when the spreadsheet settings are absent.
	ReadAll(ctx context.Context) ([]models.SheetRow, error)

	// AppendRow appends a new (id, timestamp, title, url) row. Before
	// appending it re-reads all rows and skips the append if any existing
	// row already carries url, making creation idempotent: at most one row
	// per url. The check-then-act sequence is not atomic against
	// concurrent writers; callers must hold the single-writer lock.
	AppendRow(ctx context.Context, id, title, url string) error

	// UpdateRow locates the row whose url column equals matchURL by a
	// fresh full read, then overwrites that single row's four columns with
	// (id, fresh timestamp, newTitle, newURL). If no row matches it
	// returns [ErrRowNotFound] and performs no write; an update miss never
	// creates a row.
	UpdateRow(ctx context.Context, matchURL, id, newTitle, newURL string) error

	// DeleteRowByID locates the row whose id column equals matchID by a
	// fresh full read, then issues a dimension delete for that single row
	// index. Matching is by id, not url: the deletion event does not
	// reliably carry the url. Returns [ErrRowNotFound] when no row
	// matches.
	DeleteRowByID(ctx context.Context, matchID string) error
}

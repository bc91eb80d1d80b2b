package adapter

import (
	"errors"

	"github.com/MKhiriev/sheetmark/internal/config"
)

var (
	// ErrRemoteUnavailable is returned (wrapped) when the remote table
	// cannot be reached: transport errors, auth failures, timeouts, and
	// non-2xx responses all map to it. The triggering operation is
	// abandoned; no automatic retry happens anywhere.
	ErrRemoteUnavailable = errors.New("remote table unavailable")

	// ErrRowNotFound is returned when an update or delete target is absent
	// from the remote table. It is a normal outcome, not a failure:
	// callers log it and move on.
	ErrRowNotFound = errors.New("row not found in remote table")

	// ErrConfigurationMissing is returned when the spreadsheet identifier
	// or sheet name is absent. The operation short-circuits before any
	// network call is attempted. It is the same sentinel startup
	// validation reports, so errors.Is matches it across both layers.
	ErrConfigurationMissing = config.ErrConfigurationMissing
)

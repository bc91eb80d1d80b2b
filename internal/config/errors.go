package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrConfigurationMissing indicates that the spreadsheet identifier or
	// the sheet name is absent. Both must be present before any remote
	// operation runs; nothing touches the network without them.
	ErrConfigurationMissing = errors.New("spreadsheet configuration missing")

	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

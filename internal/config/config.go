package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for sheetmark.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Sheets holds the remote spreadsheet settings. SpreadsheetID and
	// SheetName are the two required settings: without both, every
	// remote-touching operation short-circuits before any network call.
	Sheets Sheets `envPrefix:"SHEETS_"`

	// Adapter holds network settings for the outbound Sheets transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local bookmark database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// ExportMode makes the process run one export pass (append every
	// local bookmark missing from the remote table) and exit instead of
	// starting the background sync loop.
	// Populated via the EXPORT environment variable or the -export flag.
	ExportMode bool `env:"EXPORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Sheets holds the settings identifying the remote table.
type Sheets struct {
	// SpreadsheetID is the identifier of the spreadsheet holding the
	// bookmark table. Required.
	// Env: SHEETS_SPREADSHEET_ID
	SpreadsheetID string `env:"SPREADSHEET_ID"`

	// SheetName is the name of the sheet (tab) holding the bookmark table.
	// Required.
	// Env: SHEETS_SHEET_NAME
	SheetName string `env:"SHEET_NAME"`

	// AccessToken is the static bearer token used when no other token
	// source is wired in. Token acquisition itself is outside sheetmark;
	// any OAuth flow that yields a token can feed this value.
	// Env: SHEETS_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`
}

// Adapter holds network settings used by the outbound Sheets transport.
type Adapter struct {
	// BaseURL overrides the Sheets API endpoint, mainly for tests.
	// Empty means the public endpoint.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before it is cancelled (e.g. "30s", "1m"). An exceeded
	// timeout surfaces as a remote-unavailable failure.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the local bookmark
	// database (e.g. "sheetmark.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the periodic bulk sync runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

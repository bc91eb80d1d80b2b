package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-spreadsheet-id identifier of the spreadsheet holding the bookmark table
//	-sheet-name name of the sheet (tab) holding the bookmark table
//	-access-token static bearer token for the Sheets API
//	-base-url Sheets API endpoint override (tests)
//	-d database DSN (SQLite file path)
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-sync-interval periodic bulk sync interval (e.g., "5m")
//	-export run one export pass and exit
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var spreadsheetID string
	var sheetName string
	var accessToken string
	var baseURL string
	var databaseDSN string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var exportMode bool
	var jsonConfigPath string

	flag.StringVar(&spreadsheetID, "spreadsheet-id", "", "Spreadsheet identifier")
	flag.StringVar(&sheetName, "sheet-name", "", "Sheet (tab) name")
	flag.StringVar(&accessToken, "access-token", "", "Static Sheets API bearer token")
	flag.StringVar(&baseURL, "base-url", "", "Sheets API endpoint override")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Bulk sync interval (e.g., 5m)")
	flag.BoolVar(&exportMode, "export", false, "Run one export pass and exit")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Sheets: Sheets{
			SpreadsheetID: spreadsheetID,
			SheetName:     sheetName,
			AccessToken:   accessToken,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		ExportMode:   exportMode,
		JSONFilePath: jsonConfigPath,
	}
}

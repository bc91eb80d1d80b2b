package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The two spreadsheet settings are the only hard requirements: every
// remote-touching operation is specified to short-circuit without them, so
// startup refuses to proceed at all. The storage DSN and the adapter timeout
// receive defaults further down the stack and are not validated here.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sheets.SpreadsheetID == "" || cfg.Sheets.SheetName == "" {
		return ErrConfigurationMissing
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags",
			args: []string{
				"-spreadsheet-id", "sheet-1",
				"-sheet-name", "Bookmarks",
				"-access-token", "ya29.token",
				"-base-url", "http://localhost:9999",
				"-d", "sheetmark.db",
				"-request-timeout", "30s",
				"-sync-interval", "5m",
				"-c", "/etc/sheetmark.json",
			},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "sheet-1", cfg.Sheets.SpreadsheetID)
				assert.Equal(t, "Bookmarks", cfg.Sheets.SheetName)
				assert.Equal(t, "ya29.token", cfg.Sheets.AccessToken)
				assert.Equal(t, "http://localhost:9999", cfg.Adapter.BaseURL)
				assert.Equal(t, "sheetmark.db", cfg.Storage.DB.DSN)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
				assert.False(t, cfg.ExportMode)
				assert.Equal(t, "/etc/sheetmark.json", cfg.JSONFilePath)
			},
		},
		{
			name: "export mode",
			args: []string{"-export"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.True(t, cfg.ExportMode)
			},
		},
		{
			name: "no flags",
			args: []string{},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Sheets.SpreadsheetID)
				assert.False(t, cfg.ExportMode)
				assert.Zero(t, cfg.Workers.SyncInterval)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/sheetmark.json"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/sheetmark.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			tt.want(t, cfg)
		})
	}
}

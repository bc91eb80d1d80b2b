package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings parsed by time.ParseDuration (e.g. "30s").
	jsonBody := `{
		"sheets": {
			"spreadsheet_id": "sheet-1",
			"sheet_name": "Bookmarks",
			"access_token": "ya29.token"
		},
		"adapter": {
			"base_url": "https://sheets.googleapis.com",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "sheetmark.db" }
		},
		"workers": {
			"sync_interval": "5m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "sheet-1", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "Bookmarks", cfg.Sheets.SheetName)
	assert.Equal(t, "ya29.token", cfg.Sheets.AccessToken)

	assert.Equal(t, "https://sheets.googleapis.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "sheetmark.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Raw numbers are interpreted as nanoseconds.
	jsonBody := `{"adapter": {"request_timeout": 30000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"sync_interval": "soon"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(90 * time.Second)

	b, err := d.MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

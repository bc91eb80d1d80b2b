package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBase() *StructuredConfig {
	return &StructuredConfig{
		Sheets: Sheets{
			SpreadsheetID: "sheet-1",
			SheetName:     "Bookmarks",
		},
		Storage: Storage{DB: DB{DSN: "sheetmark.db"}},
	}
}

func TestBuild_MergesSourcesInPriorityOrder(t *testing.T) {
	// Earlier sources win for non-zero fields.
	first := &StructuredConfig{
		Sheets: Sheets{SpreadsheetID: "from-first"},
	}
	second := &StructuredConfig{
		Sheets:  Sheets{SpreadsheetID: "from-second", SheetName: "Bookmarks"},
		Storage: Storage{DB: DB{DSN: "sheetmark.db"}},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-first", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "Bookmarks", cfg.Sheets.SheetName)
	assert.Equal(t, "sheetmark.db", cfg.Storage.DB.DSN)
}

func TestBuild_MissingSpreadsheetSettings(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "sheetmark.db"}},
	})

	_, err := b.build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
}

func TestBuild_MissingDSN(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Sheets: Sheets{SpreadsheetID: "sheet-1", SheetName: "Bookmarks"},
	})

	_, err := b.build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("env parsing exploded")

	_, err := b.build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env parsing exploded")
}

func TestWithJSON_MergesFileResolvedFromEarlierSources(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	jsonBody := `{
		"sheets": { "sheet_name": "FromJSON" },
		"storage": { "db": { "dsn": "from-json.db" } }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Sheets:       Sheets{SpreadsheetID: "sheet-1"},
		JSONFilePath: p,
	})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "sheet-1", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "FromJSON", cfg.Sheets.SheetName, "json fills fields earlier sources left empty")
	assert.Equal(t, "from-json.db", cfg.Storage.DB.DSN)
}

func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "sheet-1", cfg.Sheets.SpreadsheetID)
}

func TestWithJSON_UnreadableFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	_, err := b.withJSON().build()

	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piutang/internal/receivable"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"RECORD_SOURCE", "GOOGLE_SHEET_WORKSHEETS", "INVOICE_API_TIMEOUT", "REPORT_TITLE", "SHEET_FIRST_ROW", "SHEET_COLUMNS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceSheets, cfg.RecordSource)
	assert.Equal(t, []string{"PIUTANG"}, cfg.GoogleSheetWorksheets)
	assert.Equal(t, 30*time.Second, cfg.InvoiceAPITimeout)
	assert.Equal(t, "List Piutang Jatuh Tempo", cfg.ReportTitle)
	assert.Equal(t, 3, cfg.SheetFirstRow)
	assert.Empty(t, cfg.SheetColumns)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RECORD_SOURCE", "http")
	t.Setenv("GOOGLE_SHEET_WORKSHEETS", "2023, Piutang 2024 ,")
	t.Setenv("INVOICE_API_TIMEOUT", "5s")
	t.Setenv("SHEET_FIRST_ROW", "2")
	t.Setenv("SHEET_COLUMNS", "po=B,bill=H")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceHTTP, cfg.RecordSource)
	assert.Equal(t, []string{"2023", "Piutang 2024"}, cfg.GoogleSheetWorksheets)
	assert.Equal(t, 5*time.Second, cfg.InvoiceAPITimeout)
	assert.Equal(t, 2, cfg.SheetFirstRow)
	assert.Equal(t, "po=B,bill=H", cfg.SheetColumns)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RECORD_SOURCE", "ftp")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("RECORD_SOURCE", "")
	t.Setenv("INVOICE_API_TIMEOUT", "soon")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("INVOICE_API_TIMEOUT", "")
	for _, row := range []string{"first", "0"} {
		t.Setenv("SHEET_FIRST_ROW", row)
		_, err = Load()
		assert.Error(t, err, row)
	}
}

func TestValidateSource(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		source  string
		wantErr bool
	}{
		{"sheets without url", func(c *Config) {}, SourceSheets, true},
		{"sheets ok", func(c *Config) { c.GoogleSheetURL = "https://docs.google.com/spreadsheets/d/abc" }, SourceSheets, false},
		{"sheets without worksheets", func(c *Config) {
			c.GoogleSheetURL = "abc"
			c.GoogleSheetWorksheets = nil
		}, SourceSheets, true},
		{"workbook without path", func(c *Config) {}, SourceWorkbook, true},
		{"workbook ok", func(c *Config) { c.WorkbookPath = "piutang.xlsx" }, SourceWorkbook, false},
		{"http bad scheme", func(c *Config) { c.InvoiceAPIURL = "ftp://backend/invoices" }, SourceHTTP, true},
		{"http ok", func(c *Config) { c.InvoiceAPIURL = "https://backend.example/api/piutang" }, SourceHTTP, false},
		{"unknown", func(c *Config) {}, "carrier-pigeon", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.ValidateSource(tt.source)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
presets:
  januari:
    description: Open invoices due in January
    sort_by: dueDate
    start: 2024-01-01
    end: 2024-01-31
    status: unsettled
  per-po:
    sort_by: po
    customers: [Maju Jaya, Sinar Abadi]
  broken:
    start: 31/01/2024
  inverted:
    start: 2024-02-01
    end: 2024-01-01
`), 0o644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "inverted", "januari", "per-po"}, presets.Names())

	f, err := presets.Filter("januari")
	require.NoError(t, err)
	assert.Equal(t, receivable.SortByDueDate, f.SortBy)
	assert.Equal(t, receivable.StatusUnsettledOnly, f.Status)
	require.True(t, f.Range.Active())
	assert.Equal(t, "2024-01-31", f.Range.End.Format("2006-01-02"))

	f, err = presets.Filter("per-po")
	require.NoError(t, err)
	assert.Equal(t, receivable.SortByPO, f.SortBy)
	assert.Equal(t, []string{"Maju Jaya", "Sinar Abadi"}, f.Customers)
	assert.False(t, f.Range.Active())

	_, err = presets.Filter("broken")
	assert.Error(t, err)

	_, err = presets.Filter("inverted")
	assert.ErrorIs(t, err, receivable.ErrInvertedRange)

	_, err = presets.Filter("missing")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestLoadPresetsMissingFile(t *testing.T) {
	presets, err := LoadPresets(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Empty(t, presets)
}

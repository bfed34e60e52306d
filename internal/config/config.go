package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"piutang/internal/logger"
)

// Record sources selectable via RECORD_SOURCE or --source
const (
	SourceSheets   = "sheets"
	SourceWorkbook = "workbook"
	SourceHTTP     = "http"
)

type Config struct {
	// Record source selection
	RecordSource string

	// Google Sheets Configuration
	GoogleSheetURL        string
	GoogleSheetWorksheets []string

	// Sheet layout shared by the sheets and workbook sources
	SheetFirstRow int
	SheetColumns  string

	// Workbook (xlsx/xls) Configuration
	WorkbookPath  string
	WorkbookSheet string

	// HTTP backend Configuration
	InvoiceAPIURL     string
	InvoiceAPIToken   string
	InvoiceAPITimeout time.Duration

	// Report Configuration
	ReportTitle       string
	ReportPresetsFile string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		RecordSource:          getEnv("RECORD_SOURCE", SourceSheets),
		GoogleSheetURL:        getEnv("GOOGLE_SHEET_URL", ""),
		GoogleSheetWorksheets: splitList(getEnv("GOOGLE_SHEET_WORKSHEETS", "PIUTANG")),
		SheetColumns:          getEnv("SHEET_COLUMNS", ""),
		WorkbookPath:          getEnv("WORKBOOK_PATH", ""),
		WorkbookSheet:         getEnv("WORKBOOK_SHEET", ""),
		InvoiceAPIURL:         getEnv("INVOICE_API_URL", ""),
		InvoiceAPIToken:       getEnv("INVOICE_API_TOKEN", ""),
		ReportTitle:           getEnv("REPORT_TITLE", "List Piutang Jatuh Tempo"),
		ReportPresetsFile:     getEnv("REPORT_PRESETS_FILE", "presets.yaml"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:         getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:             getEnv("LOG_OUTPUT", "stderr"),
	}

	timeout, err := time.ParseDuration(getEnv("INVOICE_API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("config validation failed: INVOICE_API_TIMEOUT: %w", err)
	}
	config.InvoiceAPITimeout = timeout

	firstRow, err := strconv.Atoi(getEnv("SHEET_FIRST_ROW", "3"))
	if err != nil {
		return nil, fmt.Errorf("config validation failed: SHEET_FIRST_ROW: %w", err)
	}
	config.SheetFirstRow = firstRow

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Default returns a configuration with every default applied and no source settings
func Default() *Config {
	return &Config{
		RecordSource:          SourceSheets,
		GoogleSheetWorksheets: []string{"PIUTANG"},
		SheetFirstRow:         3,
		InvoiceAPITimeout:     30 * time.Second,
		ReportTitle:           "List Piutang Jatuh Tempo",
		ReportPresetsFile:     "presets.yaml",
		LogLevel:              "info",
		LogFormat:             "console",
		LogTimeFormat:         "2006-01-02T15:04:05Z07:00",
		LogOutput:             "stderr",
	}
}

func (c *Config) validate() error {
	switch c.RecordSource {
	case SourceSheets, SourceWorkbook, SourceHTTP:
	default:
		return fmt.Errorf("RECORD_SOURCE must be one of %s, %s, %s (got %q)", SourceSheets, SourceWorkbook, SourceHTTP, c.RecordSource)
	}
	if c.InvoiceAPITimeout <= 0 {
		return fmt.Errorf("INVOICE_API_TIMEOUT must be positive")
	}
	if c.SheetFirstRow < 1 {
		return fmt.Errorf("SHEET_FIRST_ROW must be at least 1 (got %d)", c.SheetFirstRow)
	}
	return nil
}

// ValidateSource checks that the settings required by the given record source are present.
// Sources are only checked when selected, so a workbook user needs no Google credentials.
func (c *Config) ValidateSource(source string) error {
	switch source {
	case SourceSheets:
		if c.GoogleSheetURL == "" {
			return fmt.Errorf("GOOGLE_SHEET_URL is required for the %s source", source)
		}
		if len(c.GoogleSheetWorksheets) == 0 {
			return fmt.Errorf("GOOGLE_SHEET_WORKSHEETS must name at least one worksheet")
		}
	case SourceWorkbook:
		if c.WorkbookPath == "" {
			return fmt.Errorf("WORKBOOK_PATH is required for the %s source", source)
		}
	case SourceHTTP:
		if c.InvoiceAPIURL == "" {
			return fmt.Errorf("INVOICE_API_URL is required for the %s source", source)
		}
		u, err := url.Parse(c.InvoiceAPIURL)
		if err != nil {
			return fmt.Errorf("invalid INVOICE_API_URL: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("INVOICE_API_URL must use http or https (got %q)", u.Scheme)
		}
	default:
		return fmt.Errorf("unknown record source %q", source)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

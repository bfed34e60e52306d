package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"piutang/internal/config"
	"piutang/internal/sheets"
	"piutang/internal/source"
	"piutang/pkg/services"
)

// newRecordSource is swapped out in tests.
var newRecordSource = createRecordSource

// selectedSource resolves --source against RECORD_SOURCE.
func selectedSource(cmd *cobra.Command, cfg *config.Config) string {
	if name, _ := cmd.Flags().GetString("source"); name != "" {
		return name
	}
	return cfg.RecordSource
}

// createRecordSource builds the record source named by name from cfg
func createRecordSource(ctx context.Context, cfg *config.Config, name string, log zerolog.Logger) (services.RecordSource, error) {
	if err := cfg.ValidateSource(name); err != nil {
		return nil, err
	}

	switch name {
	case config.SourceSheets, config.SourceWorkbook:
		layout, err := source.ParseLayout(cfg.SheetFirstRow, cfg.SheetColumns)
		if err != nil {
			return nil, fmt.Errorf("invalid SHEET_COLUMNS: %w", err)
		}
		if name == config.SourceWorkbook {
			log.Debug().
				Str("path", cfg.WorkbookPath).
				Str("sheet", cfg.WorkbookSheet).
				Msg("Workbook source created")
			return source.NewWorkbookSource(cfg.WorkbookPath, cfg.WorkbookSheet, layout), nil
		}

		svc, err := sheets.NewSheetsService(ctx, cfg.GoogleSheetURL)
		if err != nil {
			log.Error().
				Err(err).
				Msg("Failed to create Google Sheets service")
			return nil, fmt.Errorf("failed to initialize Google Sheets service: %w", err)
		}
		log.Debug().
			Str("spreadsheet_id", svc.SpreadsheetID()).
			Strs("worksheets", cfg.GoogleSheetWorksheets).
			Str("range", layout.A1Range(cfg.GoogleSheetWorksheets[0])).
			Msg("Google Sheets source created")
		return source.NewSheetsSource(svc, cfg.GoogleSheetWorksheets, layout), nil

	case config.SourceHTTP:
		log.Debug().
			Str("url", cfg.InvoiceAPIURL).
			Dur("timeout", cfg.InvoiceAPITimeout).
			Msg("HTTP source created")
		return source.NewHTTPSource(cfg.InvoiceAPIURL, cfg.InvoiceAPIToken, cfg.InvoiceAPITimeout), nil

	default:
		return nil, fmt.Errorf("unsupported record source: %s", name)
	}
}

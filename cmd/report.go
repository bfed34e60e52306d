package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"piutang/internal/clipboard"
	"piutang/internal/config"
	"piutang/internal/format"
	"piutang/internal/logger"
	"piutang/internal/receivable"
	"piutang/pkg/services"
)

// newClipboard is swapped out in tests.
var newClipboard = func() services.ClipboardWriter { return clipboard.System{} }

const fetchTimeout = 2 * time.Minute

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the grouped receivables report",
	Long: `Fetch invoice records from the configured source and print the
receivables report grouped by due date or by PO.

Settled (LUNAS) invoices count as zero in the printed report. With --summary
the stored bill, payment and remaining totals of the visible records are
printed after the report.

Environment variables:
  RECORD_SOURCE                  - sheets, workbook or http (default: sheets)
  GOOGLE_SHEET_URL               - Spreadsheet URL or ID (sheets source)
  GOOGLE_SHEET_WORKSHEETS        - Comma separated worksheet names (default: PIUTANG)
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS             - Inline JSON credentials string
  WORKBOOK_PATH                  - Path to a .xlsx or .xls file (workbook source)
  WORKBOOK_SHEET                 - Sheet name inside the workbook (default: first sheet)
  SHEET_FIRST_ROW                - Sheet row of the first record (default: 3)
  SHEET_COLUMNS                  - Column overrides, e.g. po=B,bill=H (default: PIUTANG layout)
  INVOICE_API_URL                - Endpoint returning a JSON invoice array (http source)
  INVOICE_API_TOKEN              - Optional bearer token for the endpoint
  REPORT_TITLE                   - Report heading (default: List Piutang Jatuh Tempo)
  REPORT_PRESETS_FILE            - YAML file with saved filters (default: presets.yaml)`,
	Example: `  # Report grouped by due date
  piutang report

  # January invoices of two customers, still open, grouped by PO
  piutang report --sort-by po --start 2024-01-01 --end 2024-01-31 \
    --customer "Maju Jaya" --customer "Sinar Abadi" --status unsettled

  # Saved filter from presets.yaml, copied to the clipboard
  piutang report --preset januari --copy

  # Read a local workbook and write the report to a file
  piutang report --source workbook --output piutang.txt --summary`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("sort-by", "dueDate", "Sort and group key: dueDate or po")
	reportCmd.Flags().String("start", "", "First due date to include (format: YYYY-MM-DD)")
	reportCmd.Flags().String("end", "", "Last due date to include (format: YYYY-MM-DD)")
	reportCmd.Flags().StringArray("customer", nil, "Only include this customer (repeatable)")
	reportCmd.Flags().String("status", "all", "Payment status: all, settled or unsettled")
	reportCmd.Flags().String("preset", "", "Start from a saved filter in REPORT_PRESETS_FILE")
	reportCmd.Flags().String("title", "", "Report heading (default: REPORT_TITLE)")
	reportCmd.Flags().Bool("summary", false, "Print bill, payment and remaining totals after the report")
	reportCmd.Flags().Bool("copy", false, "Copy the report to the system clipboard")
	reportCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent(logger.ComponentReport)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	filter, err := buildFilter(cmd, cfg)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = cfg.ReportTitle
	}
	summary, _ := cmd.Flags().GetBool("summary")
	copyReport, _ := cmd.Flags().GetBool("copy")
	outputPath, _ := cmd.Flags().GetString("output")

	sourceName := selectedSource(cmd, cfg)
	log.Info().
		Str("source", sourceName).
		Str("sort_by", string(filter.SortBy)).
		Bool("date_range", filter.Range.Active()).
		Strs("customers", filter.Customers).
		Int("status", int(filter.Status)).
		Msg("Building receivables report")

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	session, err := loadSession(ctx, cfg, sourceName, filter,
		receivable.WithTitle(title),
		receivable.WithFormatter(format.NewIndonesian()),
	)
	if err != nil {
		return err
	}

	res := session.Result()
	text := session.Text()
	if text == "" {
		log.Warn().Msg("No records match the current filter")
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := writeReport(out, text, res, summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if outputPath != "" {
		log.Info().
			Str("file", outputPath).
			Int("records", res.Visible).
			Msg("Report written")
	}

	if copyReport {
		if err := session.Copy(ctx, newClipboard()); err != nil {
			if errors.Is(err, clipboard.ErrUnavailable) {
				clipLog := logger.WithComponent(logger.ComponentClipboard)
				clipLog.Warn().Msg("No clipboard utility found")
				return fmt.Errorf("clipboard not available. Install xclip, xsel or wl-clipboard, or use --output: %w", err)
			}
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Report copied to clipboard.")
	}

	return nil
}

// loadSession creates a session and fills it from the named source
func loadSession(ctx context.Context, cfg *config.Config, sourceName string, filter receivable.ReportFilter, opts ...receivable.SessionOption) (*receivable.Session, error) {
	log := logger.WithSource(logger.ComponentSource, sourceName)

	src, err := newRecordSource(ctx, cfg, sourceName, log)
	if err != nil {
		return nil, err
	}

	opts = append(opts, receivable.WithNotifier(logger.NewNotifier(log)))
	session := receivable.NewSession(filter, opts...)
	if err := session.Refresh(ctx, src); err != nil {
		return nil, fmt.Errorf("failed to fetch invoice records: %w", err)
	}
	return session, nil
}

// buildFilter starts from --preset when given and lets explicit flags override it.
func buildFilter(cmd *cobra.Command, cfg *config.Config) (receivable.ReportFilter, error) {
	filter := receivable.ReportFilter{SortBy: receivable.SortByDueDate}
	flags := cmd.Flags()

	if name, _ := flags.GetString("preset"); name != "" {
		presets, err := config.LoadPresets(cfg.ReportPresetsFile)
		if err != nil {
			return filter, err
		}
		filter, err = presets.Filter(name)
		if err != nil {
			return filter, fmt.Errorf("preset %s: %w", name, err)
		}
	}

	if flags.Changed("sort-by") {
		value, _ := flags.GetString("sort-by")
		key, err := receivable.ParseSortKey(value)
		if err != nil {
			return filter, err
		}
		filter.SetSortBy(key)
	}

	if flags.Changed("status") {
		value, _ := flags.GetString("status")
		status, err := receivable.ParseStatusFilter(value)
		if err != nil {
			return filter, err
		}
		filter.SetStatus(status)
	}

	if flags.Changed("start") || flags.Changed("end") {
		start, end := filter.Range.Start, filter.Range.End
		if flags.Changed("start") {
			value, _ := flags.GetString("start")
			day, err := config.ParseDay(value)
			if err != nil {
				return filter, fmt.Errorf("invalid start date: %w", err)
			}
			start = day
		}
		if flags.Changed("end") {
			value, _ := flags.GetString("end")
			day, err := config.ParseDay(value)
			if err != nil {
				return filter, fmt.Errorf("invalid end date: %w", err)
			}
			end = day
		}
		rng, err := receivable.NewDateRange(start, end)
		if err != nil {
			return filter, err
		}
		filter.Range = rng
	}

	if flags.Changed("customer") {
		names, _ := flags.GetStringArray("customer")
		filter.SetCustomers(names)
	}

	return filter, nil
}

func writeReport(w io.Writer, text string, res receivable.Result, summary bool) error {
	if text == "" {
		if _, err := fmt.Fprintln(w, "Tidak ada data piutang."); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, text+"\n"); err != nil {
		return err
	}

	if !summary {
		return nil
	}

	f := format.NewIndonesian()
	_, err := fmt.Fprintf(w, "\nTotal Tagihan: %s\nTotal Dibayar: %s\nSisa Tagihan: %s\nJumlah Invoice: %d\n",
		f.FormatCurrency(res.Totals.TotalBill),
		f.FormatCurrency(res.Totals.TotalPaid),
		f.FormatCurrency(res.Totals.TotalRemaining),
		res.Visible,
	)
	return err
}

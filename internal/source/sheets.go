package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"piutang/internal/logger"
	"piutang/pkg/models"
	"piutang/pkg/services"
)

// RangeReader is the part of the Sheets client the source needs.
type RangeReader interface {
	ReadRange(ctx context.Context, rangeSpec string) ([][]interface{}, error)
}

// SheetsSource reads receivables from one or more worksheets of a Google
// spreadsheet. Worksheets are fetched concurrently and concatenated in the
// configured order.
type SheetsSource struct {
	reader     RangeReader
	worksheets []string
	layout     Layout
	log        zerolog.Logger
}

var _ services.RecordSource = (*SheetsSource)(nil)

// NewSheetsSource creates a source over the given worksheets, all read with
// the same layout.
func NewSheetsSource(reader RangeReader, worksheets []string, layout Layout) *SheetsSource {
	return &SheetsSource{
		reader:     reader,
		worksheets: worksheets,
		layout:     layout,
		log:        logger.WithSource(logger.ComponentSource, "sheets"),
	}
}

func (s *SheetsSource) Name() string { return "sheets" }

// FetchInvoiceRecords reads the layout's range of every worksheet. One range
// per worksheet keeps the billing status on the same row as its record.
func (s *SheetsSource) FetchInvoiceRecords(ctx context.Context) ([]models.InvoiceRecord, error) {
	const op = "ReadWorksheets"

	if len(s.worksheets) == 0 {
		return nil, fetchError(s.Name(), op, fmt.Errorf("no worksheets configured"))
	}

	perSheet := make([][]models.InvoiceRecord, len(s.worksheets))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range s.worksheets {
		g.Go(func() error {
			values, err := s.reader.ReadRange(gctx, s.layout.A1Range(name))
			if err != nil {
				return fmt.Errorf("worksheet %s: %w", name, err)
			}
			log := s.log.With().Str("sheet", name).Logger()
			perSheet[i] = DecodeRows(toStrings(values), s.layout, log)
			log.Info().
				Int("total_rows", len(values)).
				Int("parsed_records", len(perSheet[i])).
				Msg("Worksheet read")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fetchError(s.Name(), op, err)
	}

	var records []models.InvoiceRecord
	for _, recs := range perSheet {
		records = append(records, recs...)
	}
	return Renumber(records), nil
}

// quoteSheet wraps worksheet names containing spaces in A1-notation quotes.
func quoteSheet(name string) string {
	if strings.ContainsAny(name, " '!") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			if v != nil {
				rows[i][j] = strings.TrimSpace(fmt.Sprintf("%v", v))
			}
		}
	}
	return rows
}

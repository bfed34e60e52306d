package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"piutang/internal/logger"
	"piutang/pkg/models"
	"piutang/pkg/services"
)

// WorkbookSource reads receivables from a local .xlsx or legacy .xls file.
type WorkbookSource struct {
	path   string
	sheet  string
	layout Layout
	log    zerolog.Logger
}

var _ services.RecordSource = (*WorkbookSource)(nil)

// NewWorkbookSource reads sheet from the workbook at path. An empty sheet
// name selects the first sheet; legacy .xls files always use the first sheet.
func NewWorkbookSource(path, sheet string, layout Layout) *WorkbookSource {
	return &WorkbookSource{
		path:   path,
		sheet:  sheet,
		layout: layout,
		log:    logger.WithSource(logger.ComponentWorkbook, "workbook"),
	}
}

func (w *WorkbookSource) Name() string { return "workbook" }

// FetchInvoiceRecords opens the workbook and decodes its rows.
func (w *WorkbookSource) FetchInvoiceRecords(ctx context.Context) ([]models.InvoiceRecord, error) {
	const op = "ReadWorkbook"

	if err := ctx.Err(); err != nil {
		return nil, fetchError(w.Name(), op, err)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(w.path)) {
	case ".xlsx", ".xlsm":
		rows, err = w.readXLSX()
	case ".xls":
		rows, err = w.readXLS()
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedWorkbook, w.path)
	}
	if err != nil {
		return nil, fetchError(w.Name(), op, err)
	}

	data := w.layout.dataRows(rows)
	records := Renumber(DecodeRows(data, w.layout, w.log))
	w.log.Info().
		Str("path", w.path).
		Int("total_rows", len(data)).
		Int("parsed_records", len(records)).
		Msg("Workbook read")
	return records, nil
}

func (w *WorkbookSource) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", w.path, err)
	}
	defer f.Close()

	sheet := w.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func (w *WorkbookSource) readXLS() ([][]string, error) {
	book, err := xls.Open(w.path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", w.path, err)
	}
	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("no sheets found in %s", w.path)
	}

	width := w.layout.LastColumn() + 1
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		values := make([]string, width)
		for j := 0; j < width && j <= row.LastCol(); j++ {
			values[j] = row.Col(j)
		}
		rows = append(rows, values)
	}
	return rows, nil
}

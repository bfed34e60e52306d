// Package source acquires invoice records from Google Sheets, workbook files
// or an HTTP backend and validates them into models.InvoiceRecord.
//
// Spreadsheet-shaped sources share one Layout. The default is the PIUTANG
// sheet, records starting at row 3:
//
//	C: PO        D: Sub        E: PO date     F: Customer
//	H: SJ        I: SJ date    J: Invoice     L: Invoice date
//	M: Term days N: Due date   S: Overdue     V: Bill
//	X: Payment   AA: Status    AD: Billing status
//
// Rows without a PO number are dropped before IDs are assigned. Rows are
// validated here once; the report pipeline never re-checks fields.
package source

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"piutang/pkg/models"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2 January 2006",
	"2 Jan 2006",
}

var indonesianMonths = strings.NewReplacer(
	"Januari", "January", "Februari", "February", "Maret", "March",
	"Mei", "May", "Juni", "June", "Juli", "July", "Agustus", "August",
	"Oktober", "October", "Desember", "December",
	"Agu", "Aug", "Okt", "Oct", "Des", "Dec",
)

var errNegativeAmount = errors.New("negative amount")

// Excel serial day numbers accepted as dates (1900-01-01 .. 9999-12-31).
const maxExcelSerial = 2958465

// ParseDate parses the date cell formats seen in receivable sheets. It
// reports false for empty or unrecognised values; callers keep those records
// with an unknown due date.
func ParseDate(value string) (time.Time, bool) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return time.Time{}, false
	}

	english := indonesianMonths.Replace(cleaned)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, english); err == nil {
			return models.CalendarDay(t), true
		}
	}

	if serial, err := strconv.ParseFloat(cleaned, 64); err == nil && serial >= 1 && serial <= maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return models.CalendarDay(t), true
		}
	}

	return time.Time{}, false
}

// ParseAmount parses Indonesian formatted amounts ("Rp 1.234.567,50",
// "1.500", "1500.25"). Empty cells are zero; negative amounts are rejected.
//
// A single dot followed by exactly three digits is read as a thousands
// separator.
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, nil
	}

	cleaned = strings.NewReplacer("Rp", "", "rp", "", "IDR", "", " ", "", "\u00a0", "").Replace(cleaned)
	if strings.HasPrefix(cleaned, "-") || strings.HasPrefix(cleaned, "(") {
		return decimal.Zero, errNegativeAmount
	}

	switch {
	case strings.Contains(cleaned, ".") && strings.Contains(cleaned, ","):
		// Full Indonesian format: 1.234.567,89
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case strings.Contains(cleaned, ","):
		parts := strings.Split(cleaned, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			cleaned = parts[0] + "." + parts[1]
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case strings.Count(cleaned, ".") > 1:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	case strings.Contains(cleaned, "."):
		parts := strings.Split(cleaned, ".")
		if len(parts[1]) == 3 {
			cleaned = parts[0] + parts[1]
		}
	}

	return decimal.NewFromString(cleaned)
}

// ParseRow converts one data row read with layout l. rowNum is the 1-based
// sheet row used in errors; the record ID is assigned by the caller.
func ParseRow(row []string, rowNum int, l Layout) (models.InvoiceRecord, error) {
	bill, err := ParseAmount(cell(row, l.Bill))
	if err != nil {
		return models.InvoiceRecord{}, rowError(row, rowNum, l, l.Bill, "invalid bill amount")
	}
	payment, err := ParseAmount(cell(row, l.Payment))
	if err != nil {
		return models.InvoiceRecord{}, rowError(row, rowNum, l, l.Payment, "invalid payment amount")
	}

	due, _ := ParseDate(cell(row, l.DueDate))

	r := models.NewInvoiceRecord(
		0,
		cell(row, l.PO),
		cell(row, l.Sub),
		cell(row, l.Customer),
		due,
		bill,
		payment,
		strings.ToUpper(cell(row, l.Status)),
	)
	r.SJ = cell(row, l.SJ)
	r.Invoice = cell(row, l.Invoice)
	r.PODate, _ = ParseDate(cell(row, l.PODate))
	r.SJDate, _ = ParseDate(cell(row, l.SJDate))
	r.InvoiceDate, _ = ParseDate(cell(row, l.InvoiceDate))
	r.RangeDay = parseDays(cell(row, l.RangeDay))
	r.OverDue = cell(row, l.OverDue)
	r.BillingStatus = cell(row, l.BillingStatus)
	return r, nil
}

// DecodeRows decodes rows that start at l.FirstRow. Rows without a PO number
// are dropped; rows that fail to parse are skipped with a warning.
func DecodeRows(rows [][]string, l Layout, log zerolog.Logger) []models.InvoiceRecord {
	var records []models.InvoiceRecord
	for i, row := range rows {
		rowNum := l.FirstRow + i

		if cell(row, l.PO) == "" {
			continue
		}

		record, err := ParseRow(row, rowNum, l)
		if err != nil {
			log.Warn().
				Err(err).
				Int("row", rowNum).
				Msg("Skipping invoice row")
			continue
		}
		records = append(records, record)
	}
	return records
}

// Renumber assigns sequence IDs starting at 1 in slice order.
func Renumber(records []models.InvoiceRecord) []models.InvoiceRecord {
	for i := range records {
		records[i].ID = i + 1
	}
	return records
}

func rowError(row []string, rowNum int, l Layout, col int, reason string) error {
	return &RowError{Row: rowNum, Column: l.ColumnName(col), Value: cell(row, col), Reason: reason}
}

// parseDays reads a term in days; anything that is not a number is 0.
func parseDays(value string) int {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return int(n)
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

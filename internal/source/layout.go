package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Layout maps record fields to zero-based column indexes of a receivables
// sheet. FirstRow is the 1-based sheet row holding the first record; the rows
// above it are titles and headers.
type Layout struct {
	FirstRow int

	PO            int
	Sub           int
	PODate        int
	Customer      int
	SJ            int
	SJDate        int
	Invoice       int
	InvoiceDate   int
	RangeDay      int
	DueDate       int
	OverDue       int
	Bill          int
	Payment       int
	Status        int
	BillingStatus int
}

// DefaultLayout is the PIUTANG sheet: records from row 3, PO in C, customer
// in F, due date in N, bill in V, payment in X, status in AA and the billing
// note in AD.
func DefaultLayout() Layout {
	return Layout{
		FirstRow:      3,
		PO:            2,  // C
		Sub:           3,  // D
		PODate:        4,  // E
		Customer:      5,  // F
		SJ:            7,  // H
		SJDate:        8,  // I
		Invoice:       9,  // J
		InvoiceDate:   11, // L
		RangeDay:      12, // M
		DueDate:       13, // N
		OverDue:       18, // S
		Bill:          21, // V
		Payment:       23, // X
		Status:        26, // AA
		BillingStatus: 29, // AD
	}
}

type layoutField struct {
	name string
	col  func(*Layout) *int
}

// layoutFields names every column for overrides and row errors.
var layoutFields = []layoutField{
	{"po", func(l *Layout) *int { return &l.PO }},
	{"sub", func(l *Layout) *int { return &l.Sub }},
	{"poDate", func(l *Layout) *int { return &l.PODate }},
	{"name", func(l *Layout) *int { return &l.Customer }},
	{"sj", func(l *Layout) *int { return &l.SJ }},
	{"sjDate", func(l *Layout) *int { return &l.SJDate }},
	{"inv", func(l *Layout) *int { return &l.Invoice }},
	{"invDate", func(l *Layout) *int { return &l.InvoiceDate }},
	{"rangeDay", func(l *Layout) *int { return &l.RangeDay }},
	{"dueDate", func(l *Layout) *int { return &l.DueDate }},
	{"overDue", func(l *Layout) *int { return &l.OverDue }},
	{"bill", func(l *Layout) *int { return &l.Bill }},
	{"payment", func(l *Layout) *int { return &l.Payment }},
	{"status", func(l *Layout) *int { return &l.Status }},
	{"billingStatus", func(l *Layout) *int { return &l.BillingStatus }},
}

// ParseLayout starts from DefaultLayout and applies overrides. firstRow <= 0
// keeps the default first row. overrides is a comma separated list of
// field=column pairs using sheet letters, e.g. "po=B,bill=H,status=K".
func ParseLayout(firstRow int, overrides string) (Layout, error) {
	l := DefaultLayout()
	if firstRow > 0 {
		l.FirstRow = firstRow
	}

	for _, pair := range strings.Split(overrides, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, letter, ok := strings.Cut(pair, "=")
		if !ok {
			return Layout{}, fmt.Errorf("invalid column override %q, use field=COLUMN", pair)
		}
		field, ok := findField(strings.TrimSpace(name))
		if !ok {
			return Layout{}, fmt.Errorf("unknown column field %q", name)
		}
		number, err := excelize.ColumnNameToNumber(strings.TrimSpace(letter))
		if err != nil {
			return Layout{}, fmt.Errorf("column for %s: %w", field.name, err)
		}
		*field.col(&l) = number - 1
	}
	return l, nil
}

func findField(name string) (layoutField, bool) {
	for _, f := range layoutFields {
		if strings.EqualFold(f.name, name) {
			return f, true
		}
	}
	return layoutField{}, false
}

// LastColumn returns the highest column index the layout reads.
func (l Layout) LastColumn() int {
	last := 0
	for _, f := range layoutFields {
		if c := *f.col(&l); c > last {
			last = c
		}
	}
	return last
}

// A1Range returns the sheet range covering every record row, e.g.
// "PIUTANG!A3:AD".
func (l Layout) A1Range(sheet string) string {
	last, err := excelize.ColumnNumberToName(l.LastColumn() + 1)
	if err != nil {
		last = "ZZ"
	}
	return quoteSheet(sheet) + "!A" + strconv.Itoa(l.FirstRow) + ":" + last
}

// ColumnName returns the field name reading column index col, or the sheet
// letter when no field does.
func (l Layout) ColumnName(col int) string {
	for _, f := range layoutFields {
		if *f.col(&l) == col {
			return f.name
		}
	}
	name, _ := excelize.ColumnNumberToName(col + 1)
	return name
}

// dataRows drops the rows above FirstRow from a sheet read starting at row 1.
func (l Layout) dataRows(rows [][]string) [][]string {
	skip := l.FirstRow - 1
	if skip <= 0 {
		return rows
	}
	if skip >= len(rows) {
		return nil
	}
	return rows[skip:]
}

package source

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2024-01-05",
		"05/01/2024",
		"5/1/2024",
		"05-01-2024",
		"2024-01-05 13:45:00",
		"2024-01-05T08:00:00+07:00",
		"05 Januari 2024",
		"5 Jan 2024",
		"45296",
	} {
		got, ok := ParseDate(in)
		require.True(t, ok, in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
	}

	got, ok := ParseDate("17 Agustus 2024")
	require.True(t, ok)
	assert.Equal(t, time.August, got.Month())

	for _, in := range []string{"", "  ", "soon", "2024-13-45", "-3"} {
		_, ok := ParseDate(in)
		assert.False(t, ok, in)
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"":               "0",
		"-":              "0",
		"1500000":        "1500000",
		"1.500.000":      "1500000",
		"Rp 1.500.000":   "1500000",
		"Rp1.234.567,50": "1234567.5",
		"1.500":          "1500",
		"1500.25":        "1500.25",
		"1,5":            "1.5",
		"1,500,000":      "1500000",
		" IDR 2.000,00 ": "2000",
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%q: got %s", in, got)
	}

	for _, in := range []string{"-100", "(100)", "abc", "1.2.3,4,5"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, in)
	}
}

// sheetRow lays out one PIUTANG record; extra sets further cells by index.
func sheetRow(po, sub, name, due, bill, payment, status string, extra map[int]string) []string {
	l := DefaultLayout()
	row := make([]string, l.LastColumn()+1)
	row[0] = "1"
	row[l.PO] = po
	row[l.Sub] = sub
	row[l.Customer] = name
	row[l.DueDate] = due
	row[l.Bill] = bill
	row[l.Payment] = payment
	row[l.Status] = status
	for col, v := range extra {
		row[col] = v
	}
	return row
}

func TestParseRow(t *testing.T) {
	l := DefaultLayout()
	row := sheetRow("PO-10", "A", " Maju Jaya ", "2024-01-05", "1.000", "999", "lunas", map[int]string{
		l.PODate:        "2023-11-20",
		l.SJ:            "SJ-77",
		l.SJDate:        "01/12/2023",
		l.Invoice:       "INV-5",
		l.InvoiceDate:   "2023-12-06",
		l.RangeDay:      "30",
		l.OverDue:       "12",
		l.BillingStatus: "Tagihan dikirim",
	})
	r, err := ParseRow(row, 3, l)
	require.NoError(t, err)

	assert.Equal(t, "PO-10A", r.POKey())
	assert.Equal(t, "PO-10-A", r.POGroupKey())
	assert.Equal(t, "Maju Jaya", r.Name)
	assert.True(t, r.HasDueDate())
	assert.True(t, r.BillRemaining.IsZero())
	assert.True(t, r.IsSettled())

	assert.Equal(t, "SJ-77", r.SJ)
	assert.Equal(t, "INV-5", r.Invoice)
	assert.Equal(t, "2023-11-20", r.PODate.Format("2006-01-02"))
	assert.Equal(t, "2023-12-01", r.SJDate.Format("2006-01-02"))
	assert.Equal(t, "2023-12-06", r.InvoiceDate.Format("2006-01-02"))
	assert.Equal(t, 30, r.RangeDay)
	assert.Equal(t, "12", r.OverDue)
	assert.Equal(t, "Tagihan dikirim", r.BillingStatus)
}

func TestParseRowShortRowAndBadDate(t *testing.T) {
	l := DefaultLayout()
	row := make([]string, l.Bill+1)
	row[l.PO] = "PO-1"
	row[l.Customer] = "A"
	row[l.DueDate] = "not a date"
	row[l.Bill] = "500"

	r, err := ParseRow(row, 4, l)
	require.NoError(t, err)
	assert.False(t, r.HasDueDate())
	assert.Equal(t, "500", r.BillRemaining.String())
	assert.Equal(t, "", r.Status)
	assert.Equal(t, "", r.BillingStatus)
	assert.Zero(t, r.RangeDay)
}

func TestParseRowBadAmount(t *testing.T) {
	row := sheetRow("PO-1", "", "A", "", "lots", "", "", nil)
	_, err := ParseRow(row, 7, DefaultLayout())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRow)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 7, rowErr.Row)
	assert.Equal(t, "bill", rowErr.Column)
	assert.Equal(t, "lots", rowErr.Value)
}

func TestDecodeRows(t *testing.T) {
	l := DefaultLayout()
	rows := [][]string{
		sheetRow("PO-1", "", "A", "2024-01-05", "1000", "0", "", nil),
		make([]string, l.LastColumn()+1),
		sheetRow("PO-2", "", "B", "2024-01-06", "oops", "0", "", nil),
		sheetRow("", "", "No PO", "2024-01-07", "9000", "0", "", nil),
		{"total"},
		sheetRow("PO-3", "", "C", "", "2000", "500", "", nil),
	}
	records := Renumber(DecodeRows(rows, l, zerolog.Nop()))

	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, "PO-1", records[0].PO)
	assert.Equal(t, 2, records[1].ID)
	assert.Equal(t, "PO-3", records[1].PO)
	assert.Equal(t, "1500", records[1].BillRemaining.String())

	assert.Empty(t, DecodeRows(nil, l, zerolog.Nop()))
}

func TestDecodeRowsReportsSheetRowNumbers(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	rows := [][]string{
		sheetRow("PO-1", "", "A", "", "1", "0", "", nil),
		sheetRow("PO-2", "", "B", "", "oops", "0", "", nil),
	}
	records := DecodeRows(rows, DefaultLayout(), log)
	require.Len(t, records, 1)
	assert.Contains(t, buf.String(), `"row":4`)
}

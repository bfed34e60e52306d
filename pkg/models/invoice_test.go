package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRemainingBalance(t *testing.T) {
	cases := []struct {
		bill, payment string
		want          string
	}{
		{"1000", "999", "0"},
		{"1000", "997", "3"},
		{"1000", "1000", "0"},
		{"1000", "1200", "0"},
		{"1000", "999.5", "0"},
		{"1000", "998.75", "1.25"},
		{"0", "0", "0"},
	}
	for _, tc := range cases {
		got := RemainingBalance(decimal.RequireFromString(tc.bill), decimal.RequireFromString(tc.payment))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "%s-%s: got %s", tc.bill, tc.payment, got)
	}
}

func TestNewInvoiceRecordDerivesRemaining(t *testing.T) {
	r := NewInvoiceRecord(1, "PO-1", "", "A", time.Time{}, decimal.NewFromInt(1000), decimal.NewFromInt(997), "")
	assert.Equal(t, "3", r.BillRemaining.String())
	assert.False(t, r.HasDueDate())
	assert.False(t, r.IsSettled())
}

func TestPOKey(t *testing.T) {
	assert.Equal(t, "PO-1A", InvoiceRecord{PO: "PO-1", Sub: "A"}.POKey())
	assert.Equal(t, "PO-1", InvoiceRecord{PO: "PO-1"}.POKey())
	assert.Equal(t, "", InvoiceRecord{}.POKey())
}

func TestPOGroupKey(t *testing.T) {
	assert.Equal(t, "PO1-A", InvoiceRecord{PO: "PO1", Sub: "A"}.POGroupKey())
	assert.Equal(t, "PO1", InvoiceRecord{PO: "PO1"}.POGroupKey())
	assert.Equal(t, "", InvoiceRecord{}.POGroupKey())
}

func TestCalendarDay(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	got := CalendarDay(time.Date(2024, 1, 5, 23, 30, 0, 0, wib))
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestIsSettled(t *testing.T) {
	assert.True(t, InvoiceRecord{Status: StatusSettled}.IsSettled())
	assert.False(t, InvoiceRecord{Status: "Lunas"}.IsSettled())
	assert.False(t, InvoiceRecord{}.IsSettled())
}

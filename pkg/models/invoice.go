package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusSettled is the status marker of a fully paid (lunas) invoice.
const StatusSettled = "LUNAS"

// remainingTolerance absorbs rounding leftovers: a raw difference at or below
// this amount counts as fully paid.
var remainingTolerance = decimal.NewFromInt(1)

type InvoiceRecord struct {
	// Identifiers
	ID  int    // Sequence number, unique within one fetch
	PO  string // Purchase order number
	Sub string // Optional sub-order suffix

	// Parties
	Name string // Customer name

	// Delivery and billing documents
	SJ      string // Surat jalan (delivery note) number
	Invoice string // Invoice number

	// Dates, zero if absent or unparsable
	PODate      time.Time
	SJDate      time.Time
	InvoiceDate time.Time
	DueDate     time.Time // Payment due date

	// Terms as written in the sheet
	RangeDay int    // Payment term in days
	OverDue  string // Overdue marker or day count, kept verbatim

	// Amounts in base currency units (Rupiah)
	Bill          decimal.Decimal // Billed amount
	Payment       decimal.Decimal // Amount paid so far
	BillRemaining decimal.Decimal // Outstanding balance, see RemainingBalance

	// Status
	Status        string // "LUNAS" when settled, anything else otherwise
	BillingStatus string // Free-form billing progress note
}

// NewInvoiceRecord builds a record and derives its remaining balance.
func NewInvoiceRecord(id int, po, sub, name string, due time.Time, bill, payment decimal.Decimal, status string) InvoiceRecord {
	return InvoiceRecord{
		ID:            id,
		PO:            po,
		Sub:           sub,
		Name:          name,
		DueDate:       due,
		Bill:          bill,
		Payment:       payment,
		BillRemaining: RemainingBalance(bill, payment),
		Status:        status,
	}
}

// RemainingBalance returns bill-payment, or zero when that difference is <= 1.
func RemainingBalance(bill, payment decimal.Decimal) decimal.Decimal {
	diff := bill.Sub(payment)
	if diff.LessThanOrEqual(remainingTolerance) {
		return decimal.Zero
	}
	return diff
}

// POKey returns PO+Sub when a sub-order is present, otherwise PO.
func (r InvoiceRecord) POKey() string {
	if r.Sub != "" {
		return r.PO + r.Sub
	}
	return r.PO
}

// POGroupKey returns "PO-Sub" when a sub-order is present, otherwise PO.
func (r InvoiceRecord) POGroupKey() string {
	if r.Sub != "" {
		return r.PO + "-" + r.Sub
	}
	return r.PO
}

// HasDueDate reports whether the record carries a usable due date.
func (r InvoiceRecord) HasDueDate() bool {
	return !r.DueDate.IsZero()
}

// IsSettled reports whether the status is exactly the settled marker.
func (r InvoiceRecord) IsSettled() bool {
	return r.Status == StatusSettled
}

// CalendarDay truncates t to midnight UTC of its own calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

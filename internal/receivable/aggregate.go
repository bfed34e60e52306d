package receivable

import (
	"github.com/shopspring/decimal"
)

// SummaryTotals are the grand totals over every visible record.
type SummaryTotals struct {
	TotalBill      decimal.Decimal `json:"total_bill"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalRemaining decimal.Decimal `json:"total_remaining"`
}

// Aggregate sums the stored bill, payment and remaining amounts of every
// record in the report. Settled status is not consulted.
func Aggregate(report GroupedReport) SummaryTotals {
	totals := SummaryTotals{
		TotalBill:      decimal.Zero,
		TotalPaid:      decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	for _, grp := range report.Groups {
		for _, r := range grp.Records {
			totals.TotalBill = totals.TotalBill.Add(r.Bill)
			totals.TotalPaid = totals.TotalPaid.Add(r.Payment)
			totals.TotalRemaining = totals.TotalRemaining.Add(r.BillRemaining)
		}
	}
	return totals
}

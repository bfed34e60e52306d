package receivable

import (
	"piutang/pkg/models"
)

// Result is everything derived from one (records, filter) pair.
type Result struct {
	Report  GroupedReport
	Totals  SummaryTotals
	Visible int // number of records that passed the filter
}

// Build runs sort, filter, group and aggregate over records.
func Build(records []models.InvoiceRecord, f ReportFilter) Result {
	visible := Filter(Sort(records, f.SortBy), f)
	report := Group(visible, f.SortBy)
	return Result{
		Report:  report,
		Totals:  Aggregate(report),
		Visible: len(visible),
	}
}

// Option is a selectable customer entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CustomerOptions lists distinct customer names in first-seen order.
func CustomerOptions(records []models.InvoiceRecord) []Option {
	seen := make(map[string]struct{})
	out := make([]Option, 0)
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		out = append(out, Option{Label: r.Name, Value: r.Name})
	}
	return out
}

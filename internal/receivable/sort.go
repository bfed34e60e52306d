// Package receivable turns a set of open invoices into a grouped, filtered
// receivables (piutang) report.
//
// The pipeline is a chain of pure functions:
//
//	Sort -> Filter -> Group -> (Aggregate, Render)
//
// None of the stages keep state between calls or mutate their input, so the
// same records and filter always produce the same report. Session wraps the
// pipeline for callers that hold a mutable filter and refetch records.
package receivable

import (
	"fmt"
	"slices"
	"strings"

	"piutang/pkg/models"
)

// SortKey selects both the sort comparator and the group key.
type SortKey string

const (
	SortByDueDate SortKey = "dueDate"
	SortByPO      SortKey = "po"
)

// ParseSortKey accepts the names used on the command line and in presets.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "duedate", "due-date", "due_date", "date":
		return SortByDueDate, nil
	case "po":
		return SortByPO, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (use dueDate or po)", s)
	}
}

// Sort returns a new slice ordered by key. Any key other than SortByPO sorts by
// due date, earliest first; records without a due date go last. Equal keys
// keep their input order.
func Sort(records []models.InvoiceRecord, key SortKey) []models.InvoiceRecord {
	out := slices.Clone(records)
	if key == SortByPO {
		slices.SortStableFunc(out, comparePO)
	} else {
		slices.SortStableFunc(out, compareDueDate)
	}
	return out
}

func comparePO(a, b models.InvoiceRecord) int {
	return strings.Compare(a.POKey(), b.POKey())
}

func compareDueDate(a, b models.InvoiceRecord) int {
	switch {
	case !a.HasDueDate() && !b.HasDueDate():
		return 0
	case !a.HasDueDate():
		return 1
	case !b.HasDueDate():
		return -1
	}
	return a.DueDate.Compare(b.DueDate)
}

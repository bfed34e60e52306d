package receivable

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"piutang/pkg/models"
)

// StatusFilter is the tri-state payment status selector.
type StatusFilter int

const (
	StatusAll           StatusFilter = 0
	StatusSettledOnly   StatusFilter = 1
	StatusUnsettledOnly StatusFilter = 2
)

// StatusOptions lists the status choices with the values ParseStatusFilter
// accepts.
func StatusOptions() []Option {
	return []Option{
		{Label: "Semua", Value: "0"},
		{Label: "Lunas", Value: "1"},
		{Label: "Belum Lunas", Value: "2"},
	}
}

// ParseStatusFilter accepts 0/1/2 as well as all/settled/unsettled.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "all":
		return StatusAll, nil
	case "1", "settled", "lunas":
		return StatusSettledOnly, nil
	case "2", "unsettled", "open", "belum-lunas":
		return StatusUnsettledOnly, nil
	default:
		return StatusAll, fmt.Errorf("unknown status filter %q (use all, settled or unsettled)", s)
	}
}

// DateRange is an inclusive pair of calendar days. Either bound may be nil.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ErrInvertedRange is returned when a range starts after it ends.
var ErrInvertedRange = errors.New("start date is after end date")

// NewDateRange builds a range and rejects a start later than the end, compared
// by calendar day.
func NewDateRange(start, end *time.Time) (DateRange, error) {
	r := DateRange{Start: start, End: end}
	if r.Active() && models.CalendarDay(*start).After(models.CalendarDay(*end)) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvertedRange, start.Format(isoDate), end.Format(isoDate))
	}
	return r, nil
}

// Active reports whether both bounds are set.
func (r DateRange) Active() bool {
	return r.Start != nil && r.End != nil
}

// Contains reports whether t falls inside the range, compared by calendar day.
func (r DateRange) Contains(t time.Time) bool {
	day := models.CalendarDay(t)
	return !day.Before(models.CalendarDay(*r.Start)) && !day.After(models.CalendarDay(*r.End))
}

// ReportFilter is the user-controlled configuration of one report session.
type ReportFilter struct {
	SortBy    SortKey
	Range     DateRange
	Customers []string
	Status    StatusFilter
}

func (f *ReportFilter) SetSortBy(key SortKey) { f.SortBy = key }

// SetRange sets both bounds; passing nil for either disables range filtering.
func (f *ReportFilter) SetRange(start, end *time.Time) {
	f.Range = DateRange{Start: start, End: end}
}

func (f *ReportFilter) SetCustomers(names []string) {
	f.Customers = append([]string(nil), names...)
}

func (f *ReportFilter) SetStatus(s StatusFilter) { f.Status = s }

// Filter returns the records that pass every active rule, in input order.
func Filter(records []models.InvoiceRecord, f ReportFilter) []models.InvoiceRecord {
	var allowed map[string]struct{}
	if len(f.Customers) > 0 {
		allowed = make(map[string]struct{}, len(f.Customers))
		for _, name := range f.Customers {
			allowed[name] = struct{}{}
		}
	}

	out := make([]models.InvoiceRecord, 0, len(records))
	for _, r := range records {
		if f.Range.Active() && r.HasDueDate() && !f.Range.Contains(r.DueDate) {
			continue
		}
		if allowed != nil {
			if r.Name == "" {
				continue
			}
			if _, ok := allowed[r.Name]; !ok {
				continue
			}
		}
		switch f.Status {
		case StatusSettledOnly:
			if !r.IsSettled() {
				continue
			}
		case StatusUnsettledOnly:
			if r.IsSettled() {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

package receivable

import (
	"piutang/pkg/models"
)

const (
	UnknownPO   = "Unknown PO"
	UnknownDate = "Unknown Date"

	// isoDate is the layout of date group keys.
	isoDate = "2006-01-02"
)

// Bucket is one group of the report.
type Bucket struct {
	Key     string
	Records []models.InvoiceRecord
}

// GroupedReport is an ordered list of buckets. Bucket order and the order
// inside each bucket both come from the sequence passed to Group.
type GroupedReport struct {
	Groups []Bucket
}

// Len returns the number of groups.
func (g GroupedReport) Len() int { return len(g.Groups) }

// Keys returns the group keys in report order.
func (g GroupedReport) Keys() []string {
	keys := make([]string, len(g.Groups))
	for i, grp := range g.Groups {
		keys[i] = grp.Key
	}
	return keys
}

// Lookup returns the records stored under key.
func (g GroupedReport) Lookup(key string) ([]models.InvoiceRecord, bool) {
	for _, grp := range g.Groups {
		if grp.Key == key {
			return grp.Records, true
		}
	}
	return nil, false
}

// Records flattens the report back into report order.
func (g GroupedReport) Records() []models.InvoiceRecord {
	var out []models.InvoiceRecord
	for _, grp := range g.Groups {
		out = append(out, grp.Records...)
	}
	return out
}

// GroupKey returns the bucket a record belongs to under key. PO buckets use
// the hyphenated "po-sub" form while sorting compares the concatenated key.
func GroupKey(r models.InvoiceRecord, key SortKey) string {
	if key == SortByPO {
		if k := r.POGroupKey(); k != "" {
			return k
		}
		return UnknownPO
	}
	if r.HasDueDate() {
		return r.DueDate.Format(isoDate)
	}
	return UnknownDate
}

// Group partitions records into buckets in first-occurrence order.
func Group(records []models.InvoiceRecord, key SortKey) GroupedReport {
	var report GroupedReport
	index := make(map[string]int)
	for _, r := range records {
		k := GroupKey(r, key)
		i, ok := index[k]
		if !ok {
			i = len(report.Groups)
			index[k] = i
			report.Groups = append(report.Groups, Bucket{Key: k})
		}
		report.Groups[i].Records = append(report.Groups[i].Records, r)
	}
	return report
}

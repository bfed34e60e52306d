package receivable

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"piutang/pkg/models"
)

// DefaultTitle heads a rendered report when the caller sets none.
const DefaultTitle = "List Piutang Jatuh Tempo"

// Formatter turns dates and amounts into display text. Implementations must
// not fail.
type Formatter interface {
	FormatDate(t time.Time) string
	FormatCurrency(amount decimal.Decimal) string
}

// PlainFormatter prints ISO dates and unformatted amounts.
type PlainFormatter struct{}

func (PlainFormatter) FormatDate(t time.Time) string { return t.Format(isoDate) }

func (PlainFormatter) FormatCurrency(amount decimal.Decimal) string { return amount.String() }

// RenderOptions controls the text report.
type RenderOptions struct {
	Title     string
	Range     DateRange
	Formatter Formatter
}

// Render produces the shareable text report in chat markup (_*bold italic*_).
// It returns "" when the report holds no records. The text has no trailing
// newline:
//
//	_*<title> <start> sd <end>*_
//
//	Tgl <due date>
//	Invoice : <customer>
//	<amount>,-
//
//	_*Grand Total Piutang <start> s/d <end> <total>,-*_
//
// Each record contributes zero when settled and its remaining balance
// otherwise; the trailer sums those contributions, so it can differ from
// SummaryTotals.TotalRemaining.
func Render(report GroupedReport, opts RenderOptions) string {
	if report.Len() == 0 || len(report.Records()) == 0 {
		return ""
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	f := opts.Formatter
	if f == nil {
		f = PlainFormatter{}
	}
	start, end := periodBounds(report, opts.Range, f)

	var b strings.Builder
	b.WriteString("_*" + title + " " + start + " sd " + end + "*_\n\n")

	total := decimal.Zero
	for _, grp := range report.Groups {
		b.WriteString(groupHeader(grp.Key, f) + "\n")
		for _, r := range grp.Records {
			amount := ReportedAmount(r)
			total = total.Add(amount)
			b.WriteString("Invoice : " + customerName(r) + "\n")
			b.WriteString(f.FormatCurrency(amount) + ",-\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("_*Grand Total Piutang " + start + " s/d " + end + " " + f.FormatCurrency(total) + ",-*_")
	return b.String()
}

// ReportedAmount is the amount a record shows in the text report.
func ReportedAmount(r models.InvoiceRecord) decimal.Decimal {
	if r.IsSettled() {
		return decimal.Zero
	}
	return r.BillRemaining
}

func customerName(r models.InvoiceRecord) string {
	if r.Name == "" {
		return "-"
	}
	return r.Name
}

// groupHeader prints date buckets as "Tgl <date>" and PO buckets verbatim.
func groupHeader(key string, f Formatter) string {
	if key == UnknownDate {
		return "Tgl " + UnknownDate
	}
	if t, err := time.Parse(isoDate, key); err == nil {
		return "Tgl " + f.FormatDate(t)
	}
	return key
}

// periodBounds prefers the filter bounds and falls back to the earliest and
// latest known due dates in the report.
func periodBounds(report GroupedReport, rng DateRange, f Formatter) (string, string) {
	start, end := rng.Start, rng.End
	if start == nil || end == nil {
		first, last := dueDateBounds(report)
		if start == nil {
			start = first
		}
		if end == nil {
			end = last
		}
	}
	return dateOrDash(start, f), dateOrDash(end, f)
}

func dueDateBounds(report GroupedReport) (first, last *time.Time) {
	for _, r := range report.Records() {
		if !r.HasDueDate() {
			continue
		}
		d := r.DueDate
		if first == nil || d.Before(*first) {
			first = &d
		}
		if last == nil || d.After(*last) {
			last = &d
		}
	}
	return first, last
}

func dateOrDash(t *time.Time, f Formatter) string {
	if t == nil {
		return "-"
	}
	return f.FormatDate(*t)
}

package receivable

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"piutang/pkg/models"
	"piutang/pkg/services"
)

const (
	OpFetch = "fetch"
	OpCopy  = "copy"
)

var (
	// ErrStaleFetch is returned by Refresh when a fetch that started later
	// has already replaced the records.
	ErrStaleFetch = errors.New("fetch superseded by a newer fetch")

	// ErrEmptyReport is returned by Copy when there is nothing to share.
	ErrEmptyReport = errors.New("report is empty")
)

// Session holds the current record set and filter. Every read recomputes the
// report from both; nothing derived is cached.
type Session struct {
	mu      sync.Mutex
	records []models.InvoiceRecord
	filter  ReportFilter
	started uint64
	landed  uint64

	title     string
	formatter Formatter
	notifier  services.Notifier
}

// SessionOption configures a Session.
type SessionOption func(*Session)

func WithTitle(title string) SessionOption {
	return func(s *Session) { s.title = title }
}

func WithFormatter(f Formatter) SessionOption {
	return func(s *Session) { s.formatter = f }
}

func WithNotifier(n services.Notifier) SessionOption {
	return func(s *Session) { s.notifier = n }
}

// NewSession starts a session with no records and the given filter.
func NewSession(filter ReportFilter, opts ...SessionOption) *Session {
	s := &Session{
		filter:    filter,
		title:     DefaultTitle,
		formatter: PlainFormatter{},
		notifier:  nopNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	return s
}

// Refresh replaces the records with a fresh fetch from src. On failure the
// previous records stay in place. If a fetch that started after this one has
// already landed, the result is dropped and ErrStaleFetch is returned.
func (s *Session) Refresh(ctx context.Context, src services.RecordSource) error {
	s.mu.Lock()
	s.started++
	seq := s.started
	s.mu.Unlock()

	s.notifier.Loading(ctx, OpFetch)
	records, err := src.FetchInvoiceRecords(ctx)
	if err != nil {
		s.notifier.Failed(ctx, OpFetch, err)
		return err
	}

	s.mu.Lock()
	if seq < s.landed {
		s.mu.Unlock()
		s.notifier.Failed(ctx, OpFetch, ErrStaleFetch)
		return ErrStaleFetch
	}
	s.landed = seq
	s.records = records
	s.mu.Unlock()

	s.notifier.Succeeded(ctx, OpFetch, fmt.Sprintf("%d records from %s", len(records), src.Name()))
	return nil
}

// SetRecords replaces the records directly, bypassing any source.
func (s *Session) SetRecords(records []models.InvoiceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]models.InvoiceRecord(nil), records...)
}

// UpdateFilter applies fn to the session filter.
func (s *Session) UpdateFilter(fn func(*ReportFilter)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.filter)
}

// Filter returns a copy of the current filter.
func (s *Session) Filter() ReportFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.filter
	f.Customers = append([]string(nil), s.filter.Customers...)
	return f
}

func (s *Session) snapshot() ([]models.InvoiceRecord, ReportFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records, s.filter
}

// Result recomputes the grouped report and totals.
func (s *Session) Result() Result {
	records, f := s.snapshot()
	return Build(records, f)
}

// Text recomputes and renders the shareable report.
func (s *Session) Text() string {
	records, f := s.snapshot()
	res := Build(records, f)
	return Render(res.Report, RenderOptions{
		Title:     s.title,
		Range:     f.Range,
		Formatter: s.formatter,
	})
}

// Customers lists the distinct customers of the current record set.
func (s *Session) Customers() []Option {
	records, _ := s.snapshot()
	return CustomerOptions(records)
}

// Copy renders the report and hands it to w. The outcome goes to the
// notifier; session state is untouched either way.
func (s *Session) Copy(ctx context.Context, w services.ClipboardWriter) error {
	s.notifier.Loading(ctx, OpCopy)
	text := s.Text()
	if text == "" {
		s.notifier.Failed(ctx, OpCopy, ErrEmptyReport)
		return ErrEmptyReport
	}
	if err := w.WriteText(text); err != nil {
		err = fmt.Errorf("%s: write clipboard: %w", OpCopy, err)
		s.notifier.Failed(ctx, OpCopy, err)
		return err
	}
	s.notifier.Succeeded(ctx, OpCopy, fmt.Sprintf("%d bytes copied", len(text)))
	return nil
}

type nopNotifier struct{}

func (nopNotifier) Loading(context.Context, string)           {}
func (nopNotifier) Succeeded(context.Context, string, string) {}
func (nopNotifier) Failed(context.Context, string, error)     {}

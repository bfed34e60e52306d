package receivable

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piutang/pkg/models"
)

type stubSource struct {
	records []models.InvoiceRecord
	err     error
	// during runs inside FetchInvoiceRecords before it returns
	during func()
}

func (s *stubSource) FetchInvoiceRecords(ctx context.Context) ([]models.InvoiceRecord, error) {
	if s.during != nil {
		s.during()
	}
	return s.records, s.err
}

func (s *stubSource) Name() string { return "stub" }

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Loading(_ context.Context, op string) {
	n.events = append(n.events, "loading:"+op)
}

func (n *recordingNotifier) Succeeded(_ context.Context, op string, _ string) {
	n.events = append(n.events, "ok:"+op)
}

func (n *recordingNotifier) Failed(_ context.Context, op string, _ error) {
	n.events = append(n.events, "failed:"+op)
}

type stubClipboard struct {
	text string
	err  error
}

func (c *stubClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestSessionRecomputesAfterFilterChange(t *testing.T) {
	s := NewSession(ReportFilter{})
	s.SetRecords(sample())

	before := s.Result()
	assert.Equal(t, "8700", before.Totals.TotalRemaining.String())

	s.UpdateFilter(func(f *ReportFilter) { f.SetCustomers([]string{"Karya Baru"}) })
	after := s.Result()
	assert.Equal(t, "1000", after.Totals.TotalRemaining.String())
	assert.Equal(t, 1, after.Visible)

	s.UpdateFilter(func(f *ReportFilter) { f.SetCustomers(nil) })
	assert.Equal(t, "8700", s.Result().Totals.TotalRemaining.String())
}

func TestSessionRefresh(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSession(ReportFilter{}, WithNotifier(n))

	require.NoError(t, s.Refresh(context.Background(), &stubSource{records: sample()}))
	assert.Equal(t, 5, s.Result().Visible)
	assert.Equal(t, []string{"loading:fetch", "ok:fetch"}, n.events)
	assert.Len(t, s.Customers(), 3)
}

func TestSessionRefreshFailureKeepsRecords(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSession(ReportFilter{}, WithNotifier(n))
	s.SetRecords(sample())

	boom := errors.New("boom")
	err := s.Refresh(context.Background(), &stubSource{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 5, s.Result().Visible)
	assert.Equal(t, []string{"loading:fetch", "failed:fetch"}, n.events)
}

func TestSessionWithoutRecordsRendersEmpty(t *testing.T) {
	s := NewSession(ReportFilter{})
	assert.Equal(t, "", s.Text())
	assert.Equal(t, 0, s.Result().Report.Len())
}

func TestSessionDropsStaleFetch(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSession(ReportFilter{}, WithNotifier(n))
	newer := &stubSource{records: sample()[:1]}

	// The slow fetch starts first; a newer one lands while it is in flight.
	slow := &stubSource{
		records: sample(),
		during: func() {
			require.NoError(t, s.Refresh(context.Background(), newer))
		},
	}

	err := s.Refresh(context.Background(), slow)
	assert.ErrorIs(t, err, ErrStaleFetch)
	assert.Equal(t, 1, s.Result().Visible)
	// every Loading is closed by exactly one terminal event
	assert.Equal(t, []string{"loading:fetch", "loading:fetch", "ok:fetch", "failed:fetch"}, n.events)
}

func TestSessionCopy(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSession(ReportFilter{}, WithNotifier(n), WithTitle("Piutang"))
	s.SetRecords(sample())

	clip := &stubClipboard{}
	require.NoError(t, s.Copy(context.Background(), clip))
	assert.Equal(t, s.Text(), clip.text)
	assert.Equal(t, []string{"loading:copy", "ok:copy"}, n.events)
}

func TestSessionCopyFailureLeavesStateAlone(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSession(ReportFilter{}, WithNotifier(n))
	s.SetRecords(sample())
	before := s.Text()

	err := s.Copy(context.Background(), &stubClipboard{err: errors.New("no display")})
	assert.Error(t, err)
	assert.Equal(t, before, s.Text())
	assert.Equal(t, []string{"loading:copy", "failed:copy"}, n.events)
}

func TestSessionCopyEmptyReport(t *testing.T) {
	s := NewSession(ReportFilter{})
	err := s.Copy(context.Background(), &stubClipboard{})
	assert.ErrorIs(t, err, ErrEmptyReport)
}

func TestSessionFilterReturnsCopy(t *testing.T) {
	s := NewSession(ReportFilter{Customers: []string{"A"}})
	f := s.Filter()
	f.Customers[0] = "B"
	assert.Equal(t, []string{"A"}, s.Filter().Customers)
}

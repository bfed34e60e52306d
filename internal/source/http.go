package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"piutang/internal/logger"
	"piutang/pkg/models"
	"piutang/pkg/services"
)

// maxResponseBytes bounds the backend response; one organisation's open
// invoices fit comfortably.
const maxResponseBytes = 32 << 20

// HTTPSource fetches receivables as a JSON array from a backend endpoint.
type HTTPSource struct {
	url    string
	token  string
	client *http.Client
	log    zerolog.Logger
}

var _ services.RecordSource = (*HTTPSource)(nil)

// remoteInvoice is the backend wire shape. Amounts may be JSON numbers or
// strings; the remaining balance is always recomputed locally.
type remoteInvoice struct {
	PO            string          `json:"po"`
	Sub           string          `json:"sub"`
	PODate        string          `json:"poDate"`
	Name          string          `json:"name"`
	SJ            string          `json:"sj"`
	SJDate        string          `json:"sjDate"`
	Invoice       string          `json:"inv"`
	InvoiceDate   string          `json:"invDate"`
	RangeDay      int             `json:"rangeDay"`
	DueDate       string          `json:"dueDate"`
	OverDue       string          `json:"overDue"`
	Bill          decimal.Decimal `json:"bill"`
	Payment       decimal.Decimal `json:"payment"`
	Status        string          `json:"status"`
	BillingStatus string          `json:"billingStatus"`
}

func (ri remoteInvoice) record() models.InvoiceRecord {
	due, _ := ParseDate(ri.DueDate)
	r := models.NewInvoiceRecord(
		0,
		strings.TrimSpace(ri.PO),
		strings.TrimSpace(ri.Sub),
		strings.TrimSpace(ri.Name),
		due,
		ri.Bill,
		ri.Payment,
		strings.ToUpper(strings.TrimSpace(ri.Status)),
	)
	r.SJ = strings.TrimSpace(ri.SJ)
	r.Invoice = strings.TrimSpace(ri.Invoice)
	r.PODate, _ = ParseDate(ri.PODate)
	r.SJDate, _ = ParseDate(ri.SJDate)
	r.InvoiceDate, _ = ParseDate(ri.InvoiceDate)
	r.RangeDay = ri.RangeDay
	r.OverDue = strings.TrimSpace(ri.OverDue)
	r.BillingStatus = strings.TrimSpace(ri.BillingStatus)
	return r
}

// NewHTTPSource creates a source for url. token, when set, is sent as a
// bearer token. A zero timeout means 30 seconds.
func NewHTTPSource(url, token string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: timeout},
		log:    logger.WithSource(logger.ComponentHTTP, "http"),
	}
}

func (h *HTTPSource) Name() string { return "http" }

// FetchInvoiceRecords performs one GET and decodes the full array. Any
// transport, status or decode failure fails the whole fetch.
func (h *HTTPSource) FetchInvoiceRecords(ctx context.Context) ([]models.InvoiceRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fetchError(h.Name(), "NewRequest", err)
	}
	req.Header.Set("Accept", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fetchError(h.Name(), "Do", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fetchError(h.Name(), "Do", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var remote []remoteInvoice
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&remote); err != nil {
		return nil, fetchError(h.Name(), "Decode", err)
	}

	records := make([]models.InvoiceRecord, 0, len(remote))
	for i, ri := range remote {
		if strings.TrimSpace(ri.PO) == "" {
			continue
		}
		if ri.Bill.IsNegative() || ri.Payment.IsNegative() {
			h.log.Warn().
				Int("index", i).
				Str("po", ri.PO).
				Msg("Skipping invoice with negative amount")
			continue
		}
		records = append(records, ri.record())
	}

	h.log.Info().
		Str("url", h.url).
		Int("records", len(records)).
		Dur("took", time.Since(start)).
		Msg("Invoices fetched")

	return Renumber(records), nil
}

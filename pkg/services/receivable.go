package services

import (
	"context"

	"piutang/pkg/models"
)

// RecordSource acquires the invoice records a report is built from
type RecordSource interface {
	// FetchInvoiceRecords returns the full, validated record set. Records are
	// numbered from 1 in source order.
	FetchInvoiceRecords(ctx context.Context) ([]models.InvoiceRecord, error)

	// Name identifies the source in logs (e.g. "sheets", "workbook", "http")
	Name() string
}

// Notifier receives loading/success/failure signals around the I/O the
// report session performs. The pipeline itself never calls it.
type Notifier interface {
	Loading(ctx context.Context, op string)
	Succeeded(ctx context.Context, op string, detail string)
	Failed(ctx context.Context, op string, err error)
}

// ClipboardWriter places the rendered report on the system clipboard
type ClipboardWriter interface {
	WriteText(text string) error
}

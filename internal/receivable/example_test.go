package receivable_test

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"piutang/internal/receivable"
	"piutang/pkg/models"
)

// Example shows a due-date report over two open invoices and one settled one.
func Example() {
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records := []models.InvoiceRecord{
		models.NewInvoiceRecord(1, "PO-7", "", "Maju Jaya", due, decimal.NewFromInt(1000), decimal.NewFromInt(999), ""),
		models.NewInvoiceRecord(2, "PO-8", "", "Maju Jaya", due, decimal.NewFromInt(1000), decimal.NewFromInt(997), ""),
		models.NewInvoiceRecord(3, "PO-9", "", "Sinar Abadi", due, decimal.NewFromInt(500), decimal.NewFromInt(500), models.StatusSettled),
	}

	res := receivable.Build(records, receivable.ReportFilter{})
	fmt.Println("remaining:", res.Totals.TotalRemaining)
	fmt.Println(receivable.Render(res.Report, receivable.RenderOptions{}))

	// Output:
	// remaining: 3
	// _*List Piutang Jatuh Tempo 2024-03-15 sd 2024-03-15*_
	//
	// Tgl 2024-03-15
	// Invoice : Maju Jaya
	// 0,-
	// Invoice : Maju Jaya
	// 3,-
	// Invoice : Sinar Abadi
	// 0,-
	//
	// _*Grand Total Piutang 2024-03-15 s/d 2024-03-15 3,-*_
}

// Package format renders dates and Rupiah amounts for the text report.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Indonesian formats dates as "05 Januari 2024" and amounts as "Rp 1.250.000".
type Indonesian struct {
	printer *message.Printer
}

// NewIndonesian returns a formatter using Indonesian digit grouping.
func NewIndonesian() *Indonesian {
	return &Indonesian{printer: message.NewPrinter(language.Indonesian)}
}

// FormatDate prints the calendar day with the Indonesian month name.
func (f *Indonesian) FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// FormatCurrency rounds to whole Rupiah and groups thousands with dots.
func (f *Indonesian) FormatCurrency(amount decimal.Decimal) string {
	whole := amount.Round(0).IntPart()
	if whole < 0 {
		return f.printer.Sprintf("-Rp %d", -whole)
	}
	return f.printer.Sprintf("Rp %d", whole)
}

// Package clipboard puts rendered reports on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"piutang/pkg/services"
)

// ErrUnavailable is returned when the platform has no clipboard utility
// (e.g. a headless Linux box without xclip, xsel or wl-copy).
var ErrUnavailable = errors.New("system clipboard unavailable")

// System writes through the operating system clipboard.
type System struct{}

var _ services.ClipboardWriter = System{}

// WriteText replaces the clipboard contents with text.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Buffer keeps the last written text in memory.
type Buffer struct {
	Text string
}

var _ services.ClipboardWriter = (*Buffer)(nil)

func (b *Buffer) WriteText(text string) error {
	b.Text = text
	return nil
}

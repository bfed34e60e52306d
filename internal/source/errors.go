package source

import (
	"errors"
	"fmt"
)

// Common acquisition errors
var (
	// ErrFetchFailed is matched by every error a source returns.
	ErrFetchFailed = errors.New("fetching invoice records failed")

	// ErrInvalidRow is returned when a row cannot be turned into a record.
	ErrInvalidRow = errors.New("invalid invoice row")

	// ErrUnsupportedWorkbook is returned for workbook files that are neither .xlsx nor .xls.
	ErrUnsupportedWorkbook = errors.New("unsupported workbook format")
)

// FetchError wraps failures of a record source with the failing operation.
type FetchError struct {
	// Op is the operation that failed (e.g. "ReadRange", "Decode").
	Op string

	// Source is the record source name.
	Source string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("source %s: %s failed: %v", e.Source, e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes every FetchError match ErrFetchFailed.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

func fetchError(source, op string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}
	return &FetchError{Op: op, Source: source, Err: err}
}

// RowError describes why a single row was skipped.
type RowError struct {
	Row    int
	Column string
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d column %s: %s (value: %q)", e.Row, e.Column, e.Reason, e.Value)
}

// Is makes every RowError match ErrInvalidRow.
func (e *RowError) Is(target error) bool {
	return target == ErrInvalidRow
}

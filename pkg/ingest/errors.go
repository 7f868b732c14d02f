package ingest

import (
	"errors"
	"fmt"
)

// ErrNoUsableSheet indicates the workbook contains no sheets at all.
var ErrNoUsableSheet = errors.New("workbook contains no usable sheet")

// ErrEmptySheet indicates the selected sheet has no data rows.
var ErrEmptySheet = errors.New("selected sheet contains no data rows")

// IngestError wraps a failure with the ingestion stage it occurred in.
type IngestError struct {
	Stage string // "open", "read"
	Sheet string
	Err   error
}

func (e *IngestError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("ingest %s (sheet %q): %v", e.Stage, e.Sheet, e.Err)
	}
	return fmt.Sprintf("ingest %s: %v", e.Stage, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ia-satma/pili-sub002/pkg/ingest/models"
	"github.com/ia-satma/pili-sub002/pkg/ingest/parser"
)

// Parse converts raw workbook bytes into canonical initiative records
// tagged with versionID. It returns a non-nil error only when the bytes
// are not an openable workbook; every content-level problem is reported
// inside the result instead. Structural failures (no sheets, no data
// rows) produce an empty result with exactly one error; row-level
// failures are recorded and the batch continues.
func Parse(data []byte, versionID int, opts Options) (*models.ParseResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &IngestError{Stage: "open", Err: err}
	}
	defer f.Close()

	result := &models.ParseResult{
		Records: []*models.CanonicalRecord{},
		Errors:  []models.ParseError{},
	}

	sheet := parser.SelectSheet(f.GetSheetList(), opts.sheetPreferences())
	if sheet == "" {
		result.Errors = append(result.Errors, models.ParseError{
			Row:     0,
			Message: ErrNoUsableSheet.Error(),
		})
		return result, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		result.Errors = append(result.Errors, models.ParseError{
			Row:     0,
			Message: (&IngestError{Stage: "read", Sheet: sheet, Err: err}).Error(),
		})
		return result, nil
	}

	headerIdx := parser.FindHeaderRow(rows, opts.headerSearchLimit())
	policy := opts.datePolicy()

	var headers []string
	if headerIdx < len(rows) {
		headers = rows[headerIdx]
	}

	for i, cells := range dataRows(rows, headerIdx) {
		if parser.RowIsEmpty(cells) {
			continue
		}
		result.TotalRows++

		// Display numbering matches the uploader's spreadsheet: 1-indexed
		// plus the header offset.
		displayRow := headerIdx + i + 2

		outcome := processRowSafe(headers, cells, displayRow, versionID, policy)
		result.Errors = append(result.Errors, outcome.Errors...)
		result.Warnings = append(result.Warnings, outcome.Warnings...)
		if outcome.Record != nil {
			result.Records = append(result.Records, outcome.Record)
			result.ProcessedRows++
		}
	}

	if result.TotalRows == 0 {
		result.Errors = append(result.Errors, models.ParseError{
			Row:     0,
			Message: fmt.Sprintf("%s: %q", ErrEmptySheet.Error(), sheet),
		})
	}

	return result, nil
}

func dataRows(rows [][]string, headerIdx int) [][]string {
	if headerIdx+1 >= len(rows) {
		return nil
	}
	return rows[headerIdx+1:]
}

// processRowSafe isolates row failures: an unexpected panic while
// processing one row becomes a ParseError for that row and the batch
// continues.
func processRowSafe(headers, cells []string, displayRow, versionID int, policy parser.DatePolicy) (outcome parser.RowOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = parser.RowOutcome{
				Errors: []models.ParseError{{
					Row:     displayRow,
					Message: fmt.Sprintf("row processing failed: %v", r),
				}},
			}
		}
	}()
	return parser.ProcessRow(headers, cells, displayRow, versionID, policy)
}

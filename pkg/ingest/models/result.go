package models

// ParseError is one row-scoped problem found during ingestion. Row is
// 1-indexed and already includes the header offset, so it matches the
// row numbering the uploader sees in their spreadsheet. Row 0 marks a
// workbook-level problem.
type ParseError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ParseResult aggregates one ingestion call. Records preserve input row
// order. Warnings carry non-fatal coercion notes (for example a percent
// cell that could not be parsed) and never affect the error accounting.
type ParseResult struct {
	Records  []*CanonicalRecord `json:"records"`
	Errors   []ParseError       `json:"errors"`
	Warnings []ParseError       `json:"warnings,omitempty"`
	// TotalRows counts data rows seen (rows with at least one non-empty
	// cell below the header). ProcessedRows counts records emitted.
	TotalRows     int `json:"totalRows"`
	ProcessedRows int `json:"processedRows"`
}

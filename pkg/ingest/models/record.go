// Package models defines the data structures produced by workbook ingestion.
package models

// DateValue carries a date cell both as written and as resolved.
// Raw is always populated so the original text survives even when no
// canonical date could be derived.
type DateValue struct {
	// Raw is the cell text exactly as written, trimmed.
	Raw string `json:"raw"`
	// ISO is the canonical YYYY-MM-DD date, empty when none was derived.
	ISO string `json:"iso,omitempty"`
	// TBD marks an explicit "to be determined" cell.
	TBD bool `json:"tbd,omitempty"`
}

// Percent is a percent-complete value scaled to [0,100].
type Percent struct {
	Value int `json:"value"`
	// Unparsed marks a non-empty cell that could not be read as a number.
	// Value is 0 in that case, which is not the same as an explicit zero.
	Unparsed bool `json:"unparsed,omitempty"`
}

// CanonicalRecord is one initiative row after header mapping and cell
// coercion. Every field is nullable: nil means the row did not provide
// it. Columns that matched no canonical field land in ExtraFields keyed
// by their original header text.
type CanonicalRecord struct {
	ExternalID       *string    `json:"externalId,omitempty"`
	ProjectName      *string    `json:"projectName,omitempty"`
	Description      *string    `json:"description,omitempty"`
	Department       *string    `json:"department,omitempty"`
	Leader           *string    `json:"leader,omitempty"`
	Sponsor          *string    `json:"sponsor,omitempty"`
	Status           *string    `json:"status,omitempty"`
	Priority         *string    `json:"priority,omitempty"`
	Category         *string    `json:"category,omitempty"`
	ProjectType      *string    `json:"projectType,omitempty"`
	StartDate        *DateValue `json:"startDate,omitempty"`
	EndDateEstimated *DateValue `json:"endDateEstimated,omitempty"`
	EndDateActual    *DateValue `json:"endDateActual,omitempty"`
	RegistrationDate *DateValue `json:"registrationDate,omitempty"`
	PercentComplete  *Percent   `json:"percentComplete,omitempty"`
	// StatusUpdate and NextSteps are the structured halves of a combined
	// status / next-steps cell. StatusNextRaw preserves that cell verbatim.
	StatusUpdate  *string `json:"statusUpdate,omitempty"`
	NextSteps     *string `json:"nextSteps,omitempty"`
	StatusNextRaw *string `json:"statusNextRaw,omitempty"`
	Benefits      *string `json:"benefits,omitempty"`
	Scope         *string `json:"scope,omitempty"`
	Risks         *string `json:"risks,omitempty"`
	Comments      *string `json:"comments,omitempty"`

	ExtraFields map[string]string `json:"extraFields,omitempty"`

	// SourceVersionID tags the ingestion batch that produced the record.
	SourceVersionID int  `json:"sourceVersionId"`
	IsActive        bool `json:"isActive"`
}

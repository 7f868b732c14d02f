package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ia-satma/pili-sub002/pkg/ingest/models"
)

// RowOutcome is the result of processing one data row: either a record,
// or one or more errors, plus any non-fatal warnings. Both lists use
// the same display row numbering as the input spreadsheet.
type RowOutcome struct {
	Record   *models.CanonicalRecord
	Errors   []models.ParseError
	Warnings []models.ParseError
}

// ProcessRow maps one data row into a CanonicalRecord. Cells are
// visited in sheet order: mapped cells dispatch by their field's
// coercer kind (later duplicates of the same field overwrite earlier
// ones), unmapped non-empty cells land in the overflow bag under their
// original header text, or under their column letter when the row runs
// past the header or the header cell is blank. A row without a project
// name yields a single error and no record; a record without an
// external ID gets one synthesized from its display row so re-uploads
// produce stable IDs.
func ProcessRow(headers, cells []string, displayRow, versionID int, policy DatePolicy) RowOutcome {
	rec := &models.CanonicalRecord{
		SourceVersionID: versionID,
		IsActive:        true,
	}
	var outcome RowOutcome

	for i, raw := range cells {
		if v := CoerceText(raw); v == nil {
			continue
		}

		var field Field
		ok := false
		if i < len(headers) {
			field, ok = LookupField(NormalizeHeader(headers[i]))
		}
		if !ok {
			if rec.ExtraFields == nil {
				rec.ExtraFields = make(map[string]string)
			}
			rec.ExtraFields[overflowKey(headers, i)] = raw
			continue
		}

		switch KindOf(field) {
		case KindText:
			if slot := textSlot(rec, field); slot != nil {
				*slot = CoerceText(raw)
			}
		case KindDate:
			if slot := dateSlot(rec, field); slot != nil {
				dv := CoerceDate(raw, policy)
				*slot = &dv
			}
		case KindPercent:
			p := CoercePercent(raw)
			rec.PercentComplete = &p
			if p.Unparsed {
				outcome.Warnings = append(outcome.Warnings, models.ParseError{
					Row:     displayRow,
					Message: fmt.Sprintf("percent value %q is not a number, recorded as unparsed", raw),
				})
			}
		case KindStatusNext:
			sn := CoerceStatusNext(raw)
			rec.StatusNextRaw = &sn.Raw
			rec.StatusUpdate = sn.Status
			rec.NextSteps = sn.Next
		}
	}

	if rec.ProjectName == nil {
		outcome.Errors = append(outcome.Errors, models.ParseError{
			Row:     displayRow,
			Message: "missing project name, row skipped",
		})
		return outcome
	}

	if rec.ExternalID == nil {
		id := fmt.Sprintf("row-%d", displayRow)
		rec.ExternalID = &id
	}

	outcome.Record = rec
	return outcome
}

// overflowKey names an unmapped column: the original header text, or
// the spreadsheet column letter when no usable header exists for it.
func overflowKey(headers []string, i int) string {
	if i < len(headers) && strings.TrimSpace(headers[i]) != "" {
		return headers[i]
	}
	name, err := excelize.ColumnNumberToName(i + 1)
	if err != nil {
		return fmt.Sprintf("column %d", i+1)
	}
	return name
}

func textSlot(rec *models.CanonicalRecord, f Field) **string {
	switch f {
	case FieldExternalID:
		return &rec.ExternalID
	case FieldProjectName:
		return &rec.ProjectName
	case FieldDescription:
		return &rec.Description
	case FieldDepartment:
		return &rec.Department
	case FieldLeader:
		return &rec.Leader
	case FieldSponsor:
		return &rec.Sponsor
	case FieldStatus:
		return &rec.Status
	case FieldPriority:
		return &rec.Priority
	case FieldCategory:
		return &rec.Category
	case FieldProjectType:
		return &rec.ProjectType
	case FieldBenefits:
		return &rec.Benefits
	case FieldScope:
		return &rec.Scope
	case FieldRisks:
		return &rec.Risks
	case FieldComments:
		return &rec.Comments
	}
	return nil
}

func dateSlot(rec *models.CanonicalRecord, f Field) **models.DateValue {
	switch f {
	case FieldStartDate:
		return &rec.StartDate
	case FieldEndDateEstimated:
		return &rec.EndDateEstimated
	case FieldEndDateActual:
		return &rec.EndDateActual
	case FieldRegistrationDate:
		return &rec.RegistrationDate
	}
	return nil
}

// RowIsEmpty reports whether every cell of a row is blank. Blank rows
// are skipped before counting, so totalRows only counts rows with data.
func RowIsEmpty(cells []string) bool {
	for _, c := range cells {
		if CoerceText(c) != nil {
			return false
		}
	}
	return true
}

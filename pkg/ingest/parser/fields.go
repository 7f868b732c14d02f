// Package parser provides workbook parsing utilities: header
// normalization and mapping, cell coercion, sheet selection, and
// row processing.
package parser

// Field identifies one canonical initiative attribute. The set is
// closed: headers that resolve to none of these are kept verbatim in
// the record's extra-field bag.
type Field string

const (
	FieldExternalID       Field = "externalId"
	FieldProjectName      Field = "projectName"
	FieldDescription      Field = "description"
	FieldDepartment       Field = "department"
	FieldLeader           Field = "leader"
	FieldSponsor          Field = "sponsor"
	FieldStatus           Field = "status"
	FieldPriority         Field = "priority"
	FieldCategory         Field = "category"
	FieldProjectType      Field = "projectType"
	FieldStartDate        Field = "startDate"
	FieldEndDateEstimated Field = "endDateEstimated"
	FieldEndDateActual    Field = "endDateActual"
	FieldRegistrationDate Field = "registrationDate"
	FieldPercentComplete  Field = "percentComplete"
	FieldStatusNext       Field = "statusNext"
	FieldBenefits         Field = "benefits"
	FieldScope            Field = "scope"
	FieldRisks            Field = "risks"
	FieldComments         Field = "comments"
)

// Kind selects the coercer applied to a field's cells.
type Kind int

const (
	KindText Kind = iota
	KindDate
	KindPercent
	KindStatusNext
)

// fieldKinds routes each canonical field to its coercer. Adding a field
// is an entry here plus its aliases in headers.go; the row processor
// needs no changes.
var fieldKinds = map[Field]Kind{
	FieldExternalID:       KindText,
	FieldProjectName:      KindText,
	FieldDescription:      KindText,
	FieldDepartment:       KindText,
	FieldLeader:           KindText,
	FieldSponsor:          KindText,
	FieldStatus:           KindText,
	FieldPriority:         KindText,
	FieldCategory:         KindText,
	FieldProjectType:      KindText,
	FieldStartDate:        KindDate,
	FieldEndDateEstimated: KindDate,
	FieldEndDateActual:    KindDate,
	FieldRegistrationDate: KindDate,
	FieldPercentComplete:  KindPercent,
	FieldStatusNext:       KindStatusNext,
	FieldBenefits:         KindText,
	FieldScope:            KindText,
	FieldRisks:            KindText,
	FieldComments:         KindText,
}

// KindOf returns the coercer kind for a canonical field.
func KindOf(f Field) Kind {
	return fieldKinds[f]
}

// Package ingest converts uploaded workbook bytes describing
// improvement initiatives into strictly-typed canonical records. It is
// a pure single-pass computation: no value is derived that is not
// literally present in the source cells, and nothing is silently
// dropped. The package holds no mutable state across calls, so
// concurrent ingestions need no coordination.
package ingest

import "github.com/ia-satma/pili-sub002/pkg/ingest/parser"

// DefaultSheetPreferences ranks the sheet names expected to hold the
// initiative data, checked case-insensitively.
var DefaultSheetPreferences = []string{
	"proyectos",
	"projects",
	"iniciativas",
	"initiatives",
	"portafolio",
	"data",
	"datos",
}

// DefaultHeaderSearchLimit bounds how many leading rows are scanned
// when hunting for the header row.
const DefaultHeaderSearchLimit = 15

// Options configures ingestion policy. The zero value is ready to use.
type Options struct {
	// SheetPreferences overrides DefaultSheetPreferences when non-nil.
	SheetPreferences []string
	// HeaderSearchLimit overrides DefaultHeaderSearchLimit when positive.
	HeaderSearchLimit int
	// YearPivot overrides the two-digit-year window when positive.
	YearPivot int
	// MonthFirst reads ambiguous numeric dates as m/d/y instead of the
	// default d/m/y.
	MonthFirst bool
}

// DefaultOptions returns the standard ingestion policy.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) sheetPreferences() []string {
	if o.SheetPreferences != nil {
		return o.SheetPreferences
	}
	return DefaultSheetPreferences
}

func (o Options) headerSearchLimit() int {
	if o.HeaderSearchLimit > 0 {
		return o.HeaderSearchLimit
	}
	return DefaultHeaderSearchLimit
}

func (o Options) datePolicy() parser.DatePolicy {
	p := parser.DefaultDatePolicy()
	if o.YearPivot > 0 {
		p.YearPivot = o.YearPivot
	}
	p.DayFirst = !o.MonthFirst
	return p
}

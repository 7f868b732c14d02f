package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ia-satma/pili-sub002/pkg/ingest/models"
)

// serialEpoch is the spreadsheet serial-date anchor (Excel's day 0,
// 1899-12-30). Numeric date cells are day counts from this point.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DefaultYearPivot splits two-digit years: values above the pivot
// resolve to the 1900s, values at or below it to the 2000s.
const DefaultYearPivot = 50

// DatePolicy holds the date-reading conventions. Both knobs are policy
// choices, not universal conventions, so they stay overridable.
type DatePolicy struct {
	YearPivot int
	// DayFirst reads d/m/y; unset reads m/d/y.
	DayFirst bool
}

// DefaultDatePolicy returns the conventions the source workbooks use:
// day-before-month, pivot at 50.
func DefaultDatePolicy() DatePolicy {
	return DatePolicy{YearPivot: DefaultYearPivot, DayFirst: true}
}

// tbdSentinels are the bilingual spellings of "to be determined".
var tbdSentinels = map[string]struct{}{
	"tbd":              {},
	"to be determined": {},
	"to be defined":    {},
	"por definir":      {},
	"por determinar":   {},
	"pendiente":        {},
}

var (
	isoPrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	dmy4Re      = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})$`)
	dmy2Re      = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2})$`)
)

// CoerceDate resolves a date cell to a DateValue. The raw text is
// always preserved for audit. Resolution order, first match wins:
// TBD sentinel, numeric serial date, leading ISO date, day/month/year
// with a 4-digit year, the same with a 2-digit windowed year. Anything
// else keeps the raw text with no canonical date, which is not an
// error: the row may be valid without a parseable date.
func CoerceDate(raw string, policy DatePolicy) models.DateValue {
	s := strings.TrimSpace(raw)
	out := models.DateValue{Raw: s}
	if s == "" {
		return out
	}

	if _, ok := tbdSentinels[strings.ToLower(s)]; ok {
		out.TBD = true
		return out
	}

	if days, err := strconv.ParseFloat(s, 64); err == nil {
		out.ISO = serialEpoch.AddDate(0, 0, int(days)).Format("2006-01-02")
		return out
	}

	if m := isoPrefixRe.FindString(s); m != "" {
		if _, err := time.Parse("2006-01-02", m); err == nil {
			out.ISO = m
		}
		return out
	}

	if m := dmy4Re.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if !policy.DayFirst {
			day, month = month, day
		}
		year, _ := strconv.Atoi(m[3])
		if validDate(year, month, day) {
			out.ISO = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
		return out
	}

	if m := dmy2Re.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if !policy.DayFirst {
			day, month = month, day
		}
		yy, _ := strconv.Atoi(m[3])
		year := 2000 + yy
		if yy > policy.YearPivot {
			year = 1900 + yy
		}
		if validDate(year, month, day) {
			out.ISO = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
		return out
	}

	return out
}

// validDate reports whether the calendar date actually exists.
// time.Date normalizes overflow (Feb 31 becomes Mar 2), so a changed
// component means the input named an impossible date.
func validDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

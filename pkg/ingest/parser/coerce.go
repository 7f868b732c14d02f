package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ia-satma/pili-sub002/pkg/ingest/models"
)

// CoerceText trims a cell and returns nil for blank input, so consumers
// can tell "not provided" from "provided but blank".
func CoerceText(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// CoercePercent reads a percent-complete cell into [0,100]. Numbers in
// [0,1] are treated as fractions and scaled; anything else is clamped.
// A trailing "%" is stripped before parsing. Unparseable non-empty
// input yields Value 0 with Unparsed set, which the row processor
// surfaces as a warning.
func CoercePercent(raw string) models.Percent {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return models.Percent{Value: 0, Unparsed: true}
	}
	if f >= 0 && f <= 1 {
		return models.Percent{Value: int(math.Round(f * 100))}
	}
	if f < 0 {
		f = 0
	}
	if f > 100 {
		f = 100
	}
	return models.Percent{Value: int(math.Round(f))}
}

// StatusNext is the outcome of splitting a combined status / next-steps
// cell. Raw always holds the full original text.
type StatusNext struct {
	Raw    string
	Status *string
	Next   *string
}

// Marker regexps for the combined cell: a standalone S or N optionally
// followed by an ASCII or full-width colon. Word-bounded so the S
// inside "estatus" never matches.
var (
	statusMarkerRe = regexp.MustCompile(`(?i)\bS\b\s*[:：]?`)
	nextMarkerRe   = regexp.MustCompile(`(?i)\bN\b\s*[:：]?`)
)

// CoerceStatusNext extracts the structured halves of a status /
// next-steps cell. Segmentation follows the textual order of the
// markers; assignment follows each marker's identity, so the output is
// order-independent. With one marker, its field gets the remainder.
// With neither, both fields stay absent and only Raw is kept.
func CoerceStatusNext(raw string) StatusNext {
	text := strings.TrimSpace(raw)
	out := StatusNext{Raw: text}

	sLoc := statusMarkerRe.FindStringIndex(text)
	nLoc := nextMarkerRe.FindStringIndex(text)

	switch {
	case sLoc != nil && nLoc != nil:
		first, second := sLoc, nLoc
		firstIsStatus := true
		if nLoc[0] < sLoc[0] {
			first, second = nLoc, sLoc
			firstIsStatus = false
		}
		a := CoerceText(text[first[1]:second[0]])
		b := CoerceText(text[second[1]:])
		if firstIsStatus {
			out.Status, out.Next = a, b
		} else {
			out.Next, out.Status = a, b
		}
	case sLoc != nil:
		out.Status = CoerceText(text[sLoc[1]:])
	case nLoc != nil:
		out.Next = CoerceText(text[nLoc[1]:])
	}
	return out
}

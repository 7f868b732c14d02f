package parser

import "testing"

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Fecha   Inicio ", "fecha inicio"},
		{"INICIATIVA", "iniciativa"},
		{"Nombre\tdel\nProyecto", "nombre del proyecto"},
		{"", ""},
		{"   ", ""},
		{"status", "status"},
	}

	for _, tt := range tests {
		got := NormalizeHeader(tt.input)
		if got != tt.expected {
			t.Errorf("NormalizeHeader(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeHeaderIdempotent(t *testing.T) {
	inputs := []string{"  Fecha   Inicio ", "% Avance", "Estatus / Próximos pasos"}
	for _, in := range inputs {
		once := NormalizeHeader(in)
		twice := NormalizeHeader(once)
		if once != twice {
			t.Errorf("NormalizeHeader not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestLookupField(t *testing.T) {
	tests := []struct {
		header   string
		expected Field
		mapped   bool
	}{
		{"iniciativa", FieldProjectName, true},
		{"project name", FieldProjectName, true},
		{"descripción", FieldDescription, true},
		{"descripcion", FieldDescription, true}, // folded fallback
		{"dueño", FieldSponsor, true},
		{"dueno", FieldSponsor, true},
		{"% avance", FieldPercentComplete, true},
		{"fecha inicio", FieldStartDate, true},
		{"fecha fin real", FieldEndDateActual, true},
		{"estatus / próximos pasos", FieldStatusNext, true},
		{"id power steering", FieldExternalID, true},
		{"sitio de sharepoint", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := LookupField(tt.header)
		if ok != tt.mapped {
			t.Errorf("LookupField(%q) mapped = %v, expected %v", tt.header, ok, tt.mapped)
			continue
		}
		if ok && got != tt.expected {
			t.Errorf("LookupField(%q) = %q, expected %q", tt.header, got, tt.expected)
		}
	}
}

func TestLookupFieldFoldsAccentedInput(t *testing.T) {
	// An accented spelling absent from the table still resolves through
	// the folded map.
	got, ok := LookupField(NormalizeHeader("Categoría"))
	if !ok || got != FieldCategory {
		t.Errorf("expected Categoría to map to %q, got %q (mapped=%v)", FieldCategory, got, ok)
	}
}

func TestFindHeaderRow(t *testing.T) {
	rows := [][]string{
		{"Portafolio de Iniciativas"},
		{},
		{"Iniciativa", "Responsable", "Fecha Inicio", "% Avance"},
		{"Mejora A", "Ana", "15/03/2024", "50"},
	}
	if got := FindHeaderRow(rows, 15); got != 2 {
		t.Errorf("FindHeaderRow = %d, expected 2", got)
	}
}

func TestFindHeaderRowFallsBackToFirst(t *testing.T) {
	rows := [][]string{
		{"nothing", "recognizable"},
		{"here", "either"},
	}
	if got := FindHeaderRow(rows, 15); got != 0 {
		t.Errorf("FindHeaderRow = %d, expected fallback 0", got)
	}
}

func TestFindHeaderRowRespectsLimit(t *testing.T) {
	rows := [][]string{
		{"preamble"},
		{"Iniciativa", "Estatus", "Fecha Inicio"},
	}
	if got := FindHeaderRow(rows, 1); got != 0 {
		t.Errorf("FindHeaderRow with limit 1 = %d, expected 0", got)
	}
}

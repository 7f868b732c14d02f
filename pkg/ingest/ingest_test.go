package ingest

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	// A decoy sheet ahead of the data sheet: selection must go by name,
	// not declaration order.
	f.SetCellValue("Sheet1", "A1", "nothing of interest")

	if _, err := f.NewSheet("Proyectos"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	// Title preamble above the header row, as the uploads typically have.
	f.SetCellValue("Proyectos", "A1", "Portafolio de Iniciativas 2026")
	f.SetSheetRow("Proyectos", "A3", &[]interface{}{
		"Iniciativa", "ID Power Steering", "% Avance", "Fecha Inicio",
		"Estatus / Próximos pasos", "Sitio de Sharepoint",
	})
	f.SetSheetRow("Proyectos", "A4", &[]interface{}{
		"Mejora A", "AM03473", "0.5", "15/03/2024",
		"S: en curso N: validar alcance", "https://sp.example/mejora-a",
	})
	// Row 5 left blank on purpose.
	f.SetSheetRow("Proyectos", "A6", &[]interface{}{
		"", "X999", "10",
	})
	f.SetSheetRow("Proyectos", "A7", &[]interface{}{
		"Mejora B", "", "casi listo", "TBD",
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	data := buildWorkbook(t)

	result, err := Parse(data, 3, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if result.TotalRows != 3 {
		t.Errorf("totalRows = %d, expected 3 (blank rows are not counted)", result.TotalRows)
	}
	if result.ProcessedRows != 2 {
		t.Errorf("processedRows = %d, expected 2", result.ProcessedRows)
	}
	if len(result.Records) != 2 {
		t.Fatalf("records = %d, expected 2", len(result.Records))
	}
	if len(result.Records)+1 != result.TotalRows {
		t.Errorf("accounting broken: %d records + 1 dropped != %d total",
			len(result.Records), result.TotalRows)
	}

	first := result.Records[0]
	if first.ProjectName == nil || *first.ProjectName != "Mejora A" {
		t.Errorf("first record name = %v", first.ProjectName)
	}
	if first.ExternalID == nil || *first.ExternalID != "AM03473" {
		t.Errorf("first record externalId = %v", first.ExternalID)
	}
	if first.PercentComplete == nil || first.PercentComplete.Value != 50 {
		t.Errorf("first record percent = %+v", first.PercentComplete)
	}
	if first.StartDate == nil || first.StartDate.ISO != "2024-03-15" || first.StartDate.Raw != "15/03/2024" {
		t.Errorf("first record startDate = %+v", first.StartDate)
	}
	if first.StatusUpdate == nil || *first.StatusUpdate != "en curso" {
		t.Errorf("first record statusUpdate = %v", first.StatusUpdate)
	}
	if first.NextSteps == nil || *first.NextSteps != "validar alcance" {
		t.Errorf("first record nextSteps = %v", first.NextSteps)
	}
	if v, ok := first.ExtraFields["Sitio de Sharepoint"]; !ok || v != "https://sp.example/mejora-a" {
		t.Errorf("first record extraFields = %v", first.ExtraFields)
	}
	if first.SourceVersionID != 3 || !first.IsActive {
		t.Errorf("first record versioning = %d/%v", first.SourceVersionID, first.IsActive)
	}

	second := result.Records[1]
	if second.ExternalID == nil || *second.ExternalID != "row-7" {
		t.Errorf("second record externalId = %v, expected synthesized row-7", second.ExternalID)
	}
	if second.StartDate == nil || !second.StartDate.TBD || second.StartDate.ISO != "" {
		t.Errorf("second record startDate = %+v, expected TBD", second.StartDate)
	}
	if second.PercentComplete == nil || !second.PercentComplete.Unparsed {
		t.Errorf("second record percent = %+v, expected unparsed", second.PercentComplete)
	}

	if len(result.Errors) != 1 {
		t.Fatalf("errors = %v, expected one missing-name error", result.Errors)
	}
	if result.Errors[0].Row != 6 {
		t.Errorf("error row = %d, expected display row 6", result.Errors[0].Row)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Row != 7 {
		t.Errorf("warnings = %v, expected one at row 7", result.Warnings)
	}
}

func TestParseEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	result, err := Parse(buf.Bytes(), 1, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if result.TotalRows != 0 || result.ProcessedRows != 0 || len(result.Records) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly one structural error, got %v", result.Errors)
	}
	if result.Errors[0].Row != 0 || !strings.Contains(result.Errors[0].Message, "no data rows") {
		t.Errorf("unexpected structural error: %+v", result.Errors[0])
	}
}

func TestParseHeaderOnlySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Iniciativa", "Estatus", "Fecha Inicio"})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	result, err := Parse(buf.Bytes(), 1, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if result.TotalRows != 0 || len(result.Errors) != 1 {
		t.Errorf("expected zero rows and one error, got total=%d errors=%v",
			result.TotalRows, result.Errors)
	}
}

func TestParseRejectsGarbageBytes(t *testing.T) {
	if _, err := Parse([]byte("not a workbook"), 1, DefaultOptions()); err == nil {
		t.Fatal("expected an error for unreadable bytes")
	}
}

func TestParseMonthFirstOption(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Iniciativa", "Fecha Inicio"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Mejora C", "03/15/2024"})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	opts := DefaultOptions()
	opts.MonthFirst = true
	result, err := Parse(buf.Bytes(), 1, opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("records = %d, expected 1", len(result.Records))
	}
	if sd := result.Records[0].StartDate; sd == nil || sd.ISO != "2024-03-15" {
		t.Errorf("startDate = %+v, expected 2024-03-15", result.Records[0].StartDate)
	}
}

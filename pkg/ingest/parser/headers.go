package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeHeader canonicalizes a raw column header for table lookup:
// lower-case, trimmed, internal whitespace runs collapsed to single
// spaces. Idempotent.
func NormalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespaceRe.ReplaceAllString(s, " ")
}

// aliasEntry pairs one known header spelling with its canonical field.
type aliasEntry struct {
	Alias string
	Field Field
}

// fieldAliases is the ordered alias table. Aliases are stored already
// normalized. When two entries collide, the later one wins while the
// lookup maps are built (last match wins).
var fieldAliases = []aliasEntry{
	// External identifier
	{"id", FieldExternalID},
	{"id power steering", FieldExternalID},
	{"id ps", FieldExternalID},
	{"codigo", FieldExternalID},
	{"código", FieldExternalID},
	{"clave", FieldExternalID},
	{"identificador", FieldExternalID},
	{"card id devops", FieldExternalID},

	// Project / initiative name
	{"iniciativa", FieldProjectName},
	{"nombre", FieldProjectName},
	{"proyecto", FieldProjectName},
	{"nombre proyecto", FieldProjectName},
	{"nombre del proyecto", FieldProjectName},
	{"initiative", FieldProjectName},
	{"project", FieldProjectName},
	{"project name", FieldProjectName},
	{"name", FieldProjectName},

	// Description / problem statement
	{"descripcion", FieldDescription},
	{"descripción", FieldDescription},
	{"problema", FieldDescription},
	{"planteamiento del problema", FieldDescription},
	{"problem statement", FieldDescription},
	{"description", FieldDescription},

	// Organizational unit
	{"departamento", FieldDepartment},
	{"department", FieldDepartment},
	{"area", FieldDepartment},
	{"área", FieldDepartment},
	{"direccion", FieldDepartment},
	{"dirección", FieldDepartment},
	{"unidad de negocio", FieldDepartment},

	// Accountable person
	{"lider", FieldLeader},
	{"líder", FieldLeader},
	{"leader", FieldLeader},
	{"responsable", FieldLeader},
	{"lider del proyecto", FieldLeader},
	{"líder del proyecto", FieldLeader},

	// Sponsor
	{"dueño", FieldSponsor},
	{"dueno", FieldSponsor},
	{"owner", FieldSponsor},
	{"sponsor", FieldSponsor},
	{"patrocinador", FieldSponsor},

	// Status
	{"estado", FieldStatus},
	{"estatus", FieldStatus},
	{"status", FieldStatus},

	// Priority
	{"prioridad", FieldPriority},
	{"priority", FieldPriority},

	// Category
	{"categoria", FieldCategory},
	{"categoría", FieldCategory},
	{"category", FieldCategory},

	// Project type
	{"tipo", FieldProjectType},
	{"tipo proyecto", FieldProjectType},
	{"tipo de proyecto", FieldProjectType},
	{"tipo de iniciativa", FieldProjectType},
	{"project type", FieldProjectType},

	// Dates
	{"inicio", FieldStartDate},
	{"fecha inicio", FieldStartDate},
	{"fecha de inicio", FieldStartDate},
	{"start", FieldStartDate},
	{"start date", FieldStartDate},

	{"fecha fin", FieldEndDateEstimated},
	{"fecha de fin", FieldEndDateEstimated},
	{"fecha estimada", FieldEndDateEstimated},
	{"fecha fin estimada", FieldEndDateEstimated},
	{"fecha compromiso", FieldEndDateEstimated},
	{"end date", FieldEndDateEstimated},
	{"estimated end date", FieldEndDateEstimated},

	{"fin real", FieldEndDateActual},
	{"fecha fin real", FieldEndDateActual},
	{"fecha real de fin", FieldEndDateActual},
	{"fecha de cierre", FieldEndDateActual},
	{"actual end date", FieldEndDateActual},

	{"fecha registro", FieldRegistrationDate},
	{"fecha de registro", FieldRegistrationDate},
	{"fecha de alta", FieldRegistrationDate},
	{"fecha de captura", FieldRegistrationDate},
	{"registration date", FieldRegistrationDate},

	// Percent complete
	{"avance", FieldPercentComplete},
	{"% avance", FieldPercentComplete},
	{"% de avance", FieldPercentComplete},
	{"porcentaje", FieldPercentComplete},
	{"porcentaje de avance", FieldPercentComplete},
	{"% completado", FieldPercentComplete},
	{"percent complete", FieldPercentComplete},
	{"progress", FieldPercentComplete},

	// Combined status / next steps
	{"estatus / proximos pasos", FieldStatusNext},
	{"estatus / próximos pasos", FieldStatusNext},
	{"estatus y proximos pasos", FieldStatusNext},
	{"estatus y próximos pasos", FieldStatusNext},
	{"avances y proximos pasos", FieldStatusNext},
	{"avances y próximos pasos", FieldStatusNext},
	{"status / next steps", FieldStatusNext},
	{"status and next steps", FieldStatusNext},

	// Free text sections
	{"beneficio", FieldBenefits},
	{"beneficios", FieldBenefits},
	{"benefits", FieldBenefits},

	{"alcance", FieldScope},
	{"scope", FieldScope},

	{"riesgo", FieldRisks},
	{"riesgos", FieldRisks},
	{"risks", FieldRisks},

	{"comentarios", FieldComments},
	{"comments", FieldComments},
	{"notas", FieldComments},
	{"notes", FieldComments},
	{"observaciones", FieldComments},
}

var (
	aliasExact  map[string]Field
	aliasFolded map[string]Field
)

func init() {
	aliasExact = make(map[string]Field, len(fieldAliases))
	aliasFolded = make(map[string]Field, len(fieldAliases))
	for _, e := range fieldAliases {
		aliasExact[e.Alias] = e.Field
		aliasFolded[foldDiacritics(e.Alias)] = e.Field
	}
}

// LookupField resolves a normalized header to its canonical field. A
// miss on the exact key falls back to a diacritic-folded comparison so
// "descripción" and "descripcion" resolve identically. Unmatched
// headers are not errors; the caller keeps them in the overflow bag.
func LookupField(header string) (Field, bool) {
	if f, ok := aliasExact[header]; ok {
		return f, true
	}
	if f, ok := aliasFolded[foldDiacritics(header)]; ok {
		return f, true
	}
	return "", false
}

// foldDiacritics strips combining marks after NFD decomposition.
func foldDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FindHeaderRow hunts for the header row within the first limit rows by
// scoring each row on how many of its cells resolve through the alias
// table. Falls back to the first row when nothing scores. Uploaded
// sheets often carry title or preamble rows above the real header.
func FindHeaderRow(rows [][]string, limit int) int {
	if limit > len(rows) {
		limit = len(rows)
	}
	best, bestScore := 0, 0
	for i := 0; i < limit; i++ {
		score := 0
		for _, cell := range rows[i] {
			if _, ok := LookupField(NormalizeHeader(cell)); ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
		if score >= 4 {
			break
		}
	}
	return best
}

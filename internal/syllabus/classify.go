package syllabus

import (
	"strconv"
	"strings"
)

// RowKind is the semantic role of a table row, decided from its first two
// cells (plus a whole-row scan for the two headers that float between
// columns in real documents).
type RowKind int

const (
	KindUnknown RowKind = iota
	KindObjective
	KindUnitTableHeader
	KindUnitStart
	KindUnitsEnd
	KindTextBooksHeader
	KindReferenceBooksHeader
	KindWebResourcesHeader
	KindEvaluationHeader
	KindContinuation
	KindEntry
)

func (k RowKind) String() string {
	switch k {
	case KindObjective:
		return "objective"
	case KindUnitTableHeader:
		return "unit_table_header"
	case KindUnitStart:
		return "unit_start"
	case KindUnitsEnd:
		return "units_end"
	case KindTextBooksHeader:
		return "text_books_header"
	case KindReferenceBooksHeader:
		return "reference_books_header"
	case KindWebResourcesHeader:
		return "web_resources_header"
	case KindEvaluationHeader:
		return "evaluation_header"
	case KindContinuation:
		return "continuation"
	case KindEntry:
		return "entry"
	}
	return "unknown"
}

// ObjectiveNumber parses a "CO<digits>" marker cell. The second return is
// false for anything else, including bare "CO" and "CO1a".
func ObjectiveNumber(cell string) (int, bool) {
	if !strings.HasPrefix(cell, "CO") {
		return 0, false
	}
	n, err := strconv.Atoi(cell[2:])
	if err != nil || cell[2:] == "" {
		return 0, false
	}
	return n, true
}

// isEntryMarker reports whether a first cell marks a numbered list entry:
// all digits, or ending with a period ("1.", "12.").
func isEntryMarker(s string) bool {
	return isNumeric(s) || strings.HasSuffix(s, ".")
}

// isNumeric reports whether s is non-empty and all ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Classify maps a row to its semantic role. It is a pure function: the
// state machine decides what each role means in the current state, and
// ignores roles that make no sense there.
func Classify(row []string) RowKind {
	col0 := cellAt(row, 0)
	col1 := cellAt(row, 1)

	if _, ok := ObjectiveNumber(col0); ok {
		return KindObjective
	}
	if (strings.Contains(col0, "Unit") || strings.Contains(col0, "UNIT")) &&
		(strings.Contains(col1, "Details") || rowContains(row, "Details")) {
		return KindUnitTableHeader
	}
	if _, ok := RomanUnit(col0); ok {
		return KindUnitStart
	}
	if strings.Contains(col1, "Total") || strings.Contains(col0, "Course Outcomes") {
		return KindUnitsEnd
	}
	if strings.Contains(col0, "Text Books") || rowContains(row, "Text Books") {
		return KindTextBooksHeader
	}
	if strings.Contains(col0, "Reference Books") || strings.Contains(col0, "References Books") {
		return KindReferenceBooksHeader
	}
	if strings.Contains(col0, "Web Resources") {
		return KindWebResourcesHeader
	}
	if strings.Contains(col0, "Methods of Evaluation") || strings.Contains(col0, "Methods of Assessment") {
		return KindEvaluationHeader
	}
	if col0 == "" {
		return KindContinuation
	}
	if isEntryMarker(col0) {
		return KindEntry
	}
	return KindUnknown
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func rowContains(row []string, substr string) bool {
	for _, c := range row {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

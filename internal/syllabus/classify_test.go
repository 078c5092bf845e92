package syllabus

import "testing"

func TestObjectiveNumber(t *testing.T) {
	tests := []struct {
		cell string
		num  int
		ok   bool
	}{
		{"CO1", 1, true},
		{"CO12", 12, true},
		{"CO", 0, false},
		{"CO1a", 0, false},
		{"C01", 0, false},
		{"objective", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		num, ok := ObjectiveNumber(tt.cell)
		if num != tt.num || ok != tt.ok {
			t.Errorf("ObjectiveNumber(%q) = %d, %v; want %d, %v", tt.cell, num, ok, tt.num, tt.ok)
		}
	}
}

func TestRomanUnit(t *testing.T) {
	if n, ok := RomanUnit("III"); !ok || n != 3 {
		t.Errorf("RomanUnit(III) = %d, %v", n, ok)
	}
	for _, bad := range []string{"VII", "i", "IIII", "1", ""} {
		if _, ok := RomanUnit(bad); ok {
			t.Errorf("RomanUnit(%q) unexpectedly matched", bad)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want RowKind
	}{
		{"objective marker", []string{"CO1", "To understand something"}, KindObjective},
		{"unit table header", []string{"Unit", "Details", "Hours"}, KindUnitTableHeader},
		{"unit table header floats", []string{"Unit No.", "", "Details"}, KindUnitTableHeader},
		{"unit start", []string{"II", "Some unit detail text"}, KindUnitStart},
		{"units end total", []string{"", "Total", "60"}, KindUnitsEnd},
		{"units end outcomes", []string{"Course Outcomes", ""}, KindUnitsEnd},
		{"text books", []string{"Text Books", ""}, KindTextBooksHeader},
		{"reference books", []string{"Reference Books", ""}, KindReferenceBooksHeader},
		{"references books typo", []string{"References Books", ""}, KindReferenceBooksHeader},
		{"web resources", []string{"Web Resources", ""}, KindWebResourcesHeader},
		{"evaluation", []string{"Methods of Evaluation", ""}, KindEvaluationHeader},
		{"continuation", []string{"", "more detail text here"}, KindContinuation},
		{"numbered entry", []string{"1", "Prescott's Microbiology"}, KindEntry},
		{"dotted entry", []string{"2.", "Jawetz Medical Microbiology"}, KindEntry},
		{"unknown", []string{"Preamble", "text"}, KindUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.row); got != tt.want {
			t.Errorf("%s: Classify(%v) = %v, want %v", tt.name, tt.row, got, tt.want)
		}
	}
}

func TestClassify_ObjectiveBeatsEntry(t *testing.T) {
	// CO markers win over every later pattern.
	if got := Classify([]string{"CO3", "Total"}); got != KindObjective {
		t.Fatalf("expected objective, got %v", got)
	}
}

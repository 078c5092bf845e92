package parser

import "testing"

func TestRowsFromLayoutText(t *testing.T) {
	text := "Unit    Details                       Hours\n" +
		"\n" +
		"I       Morphology of bacteria        12\n" +
		"II\tSterilization techniques\t10\n"

	rows := rowsFromLayoutText(text)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %v", len(rows), rows)
	}
	if rows[0].Cell(0) != "Unit" || rows[0].Cell(1) != "Details" || rows[0].Cell(2) != "Hours" {
		t.Errorf("header row: %v", rows[0])
	}
	// Single spaces stay inside a cell.
	if rows[1].Cell(1) != "Morphology of bacteria" {
		t.Errorf("expected multi-word cell, got %q", rows[1].Cell(1))
	}
	// Tabs separate columns too.
	if rows[2].Cell(0) != "II" || rows[2].Cell(1) != "Sterilization techniques" {
		t.Errorf("tab row: %v", rows[2])
	}
}

func TestRowsFromLayoutText_Empty(t *testing.T) {
	if rows := rowsFromLayoutText("\n  \n\t\n"); len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rows)
	}
}

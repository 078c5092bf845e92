package generate

import "testing"

func TestContentFromData(t *testing.T) {
	data := map[string]any{
		"notes": []any{
			map[string]any{"title": "Intro", "points": []any{"a", "b"}},
		},
		"formulas": []any{
			map[string]any{"title": "Growth", "formula": "N = N0 * 2^n", "explanation": "doubling"},
		},
		"realworld": []any{
			map[string]any{"title": "Yogurt", "concept": "fermentation", "description": "lactobacillus"},
		},
	}
	c := ContentFromData(data)
	if len(c.Notes) != 1 || c.Notes[0].Title != "Intro" || len(c.Notes[0].Points) != 2 {
		t.Errorf("unexpected notes: %+v", c.Notes)
	}
	if len(c.Formulas) != 1 || c.Formulas[0].Formula != "N = N0 * 2^n" {
		t.Errorf("unexpected formulas: %+v", c.Formulas)
	}
	if len(c.Realworld) != 1 || c.Realworld[0].Concept != "fermentation" {
		t.Errorf("unexpected realworld: %+v", c.Realworld)
	}
}

func TestContentFromData_MalformedSectionsDefaultEmpty(t *testing.T) {
	data := map[string]any{
		"notes":    "not a list",
		"formulas": 42,
	}
	c := ContentFromData(data)
	if c.Notes == nil || len(c.Notes) != 0 {
		t.Errorf("expected empty notes slice, got %v", c.Notes)
	}
	if c.Formulas == nil || len(c.Formulas) != 0 {
		t.Errorf("expected empty formulas slice, got %v", c.Formulas)
	}
	if c.Realworld == nil || len(c.Realworld) != 0 {
		t.Errorf("expected empty realworld slice, got %v", c.Realworld)
	}
}

package generate

import "encoding/json"

// NoteSection is one notes entry of a topic's generated content.
type NoteSection struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// FormulaSection is one formulas entry.
type FormulaSection struct {
	Title       string `json:"title"`
	Formula     string `json:"formula"`
	Explanation string `json:"explanation"`
}

// RealWorldItem is one realworld entry.
type RealWorldItem struct {
	Title       string `json:"title"`
	Concept     string `json:"concept"`
	Description string `json:"description"`
}

// TopicContent is the structured content of one topic. Records are
// terminal once written; there is no in-place revision.
type TopicContent struct {
	Notes     []NoteSection    `json:"notes"`
	Formulas  []FormulaSection `json:"formulas"`
	Realworld []RealWorldItem  `json:"realworld"`
}

// ContentFromData maps a recovered JSON object onto the topic schema.
// Sections that are missing or malformed default to empty lists, so a
// partially conforming object still yields a usable record.
func ContentFromData(data map[string]any) TopicContent {
	return TopicContent{
		Notes:     decodeSection[NoteSection](data["notes"]),
		Formulas:  decodeSection[FormulaSection](data["formulas"]),
		Realworld: decodeSection[RealWorldItem](data["realworld"]),
	}
}

// decodeSection converts one loosely typed section through JSON. Any shape
// mismatch yields the empty list rather than an error.
func decodeSection[T any](v any) []T {
	if v == nil {
		return []T{}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

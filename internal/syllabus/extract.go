package syllabus

import "coursegen/internal/table"

// Extract runs the state machine over a document's rows and segments each
// unit's raw content into topics. The returned Syllabus is complete and
// never mutated afterward.
func Extract(doc *table.Document) *Syllabus {
	e := NewExtractor()
	for _, row := range doc.Rows {
		e.Feed(row)
		if e.State() == Done {
			break
		}
	}

	syl := e.Result()
	for i := range syl.Units {
		syl.Units[i].Topics = Segment(syl.Units[i].RawContent)
	}
	return syl
}

package coursemap

import (
	"encoding/json"
	"sync"

	"coursegen/internal/generate"
)

// TopicRecord is one topic's entry in the course map. Raw always keeps the
// text that produced the record, even on success; Failed marks a record
// whose candidate text never yielded a structured value. Records are
// terminal once built.
type TopicRecord struct {
	Name      string                    `json:"name"`
	Notes     []generate.NoteSection    `json:"notes"`
	Formulas  []generate.FormulaSection `json:"formulas"`
	Realworld []generate.RealWorldItem  `json:"realworld"`

	Failed bool   `json:"-"`
	Raw    string `json:"-"`
}

// Chapter is one syllabus unit with its generated topic records, in
// document order.
type Chapter struct {
	ID          int           `json:"id"`
	Class       string        `json:"class"`
	ChapterName string        `json:"chapterName"`
	Title       string        `json:"title"`
	Topics      []TopicRecord `json:"topics"`
}

// Map is the accumulating class -> subject -> chapters aggregate. Chapters
// are appended whole, after all their topics completed.
type Map struct {
	mu      sync.Mutex
	classes map[string]map[string][]*Chapter
}

func NewMap() *Map {
	return &Map{classes: make(map[string]map[string][]*Chapter)}
}

// Append adds a finished chapter under class/subject.
func (m *Map) Append(class, subject string, ch *Chapter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.classes[class] == nil {
		m.classes[class] = make(map[string][]*Chapter)
	}
	m.classes[class][subject] = append(m.classes[class][subject], ch)
}

// Snapshot returns a deep, JSON-safe copy of the aggregate.
func (m *Map) Snapshot() map[string]map[string][]Chapter {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]map[string][]Chapter, len(m.classes))
	for class, subjects := range m.classes {
		out[class] = make(map[string][]Chapter, len(subjects))
		for subject, chapters := range subjects {
			list := make([]Chapter, len(chapters))
			for i, ch := range chapters {
				list[i] = *ch
				list[i].Topics = append([]TopicRecord(nil), ch.Topics...)
			}
			out[class][subject] = list
		}
	}
	return out
}

// MarshalSnapshot serializes the snapshot with leaf strings normalized,
// ready for export.
func MarshalSnapshot(snap map[string]map[string][]Chapter) ([]byte, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return json.MarshalIndent(generate.CleanStrings(tree), "", "  ")
}

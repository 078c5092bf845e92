package syllabus

import (
	"fmt"

	"coursegen/internal/table"
)

// State is the position of the extractor within a syllabus document. States
// advance strictly forward; there are no backward transitions.
type State int

const (
	SeekingObjectives State = iota
	InUnits
	SeekingOutcomes
	SeekingResources
	Done
)

func (s State) String() string {
	switch s {
	case SeekingObjectives:
		return "seeking_objectives"
	case InUnits:
		return "in_units"
	case SeekingOutcomes:
		return "seeking_outcomes"
	case SeekingResources:
		return "seeking_resources"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Cell content thresholds. Cells at or below the threshold are layout
// noise (numbering, hour counts) rather than content.
const (
	minSectionText = 20 // objectives, outcomes, unit detail cells
	minEntryText   = 10 // continuation lines and resource entries
)

type resourceCategory int

const (
	noCategory resourceCategory = iota
	textBooks
	referenceBooks
	webResources
)

// Extractor consumes classified rows and accumulates a Syllabus. All parser
// state (current unit, current resource category) lives here, so separate
// extractions never interfere.
type Extractor struct {
	state      State
	objectives map[int]string
	outcomes   map[int]string
	units      []Unit
	current    *Unit
	resources  Resources
	category   resourceCategory
}

func NewExtractor() *Extractor {
	return &Extractor{
		state:      SeekingObjectives,
		objectives: make(map[int]string),
		outcomes:   make(map[int]string),
	}
}

// State returns the current machine state.
func (e *Extractor) State() State { return e.state }

// Feed advances the machine by one row. Rows that match no recognized
// pattern in the current state are skipped; no row ever produces an error.
// Once the machine reaches Done, remaining rows are not inspected.
func (e *Extractor) Feed(row table.Row) {
	if e.state == Done || len(row) < 2 {
		return
	}

	kind := Classify(row)
	switch e.state {
	case SeekingObjectives:
		e.feedObjectives(row, kind)
	case InUnits:
		e.feedUnits(row, kind)
	case SeekingOutcomes:
		e.feedOutcomes(row, kind)
	case SeekingResources:
		e.feedResources(row, kind)
	}
}

func (e *Extractor) feedObjectives(row table.Row, kind RowKind) {
	switch kind {
	case KindObjective:
		num, _ := ObjectiveNumber(row.Cell(0))
		if text := row.FirstAfter(1, minSectionText); text != "" {
			e.objectives[num] = UnitNameFromObjective(text)
		}
	case KindUnitTableHeader:
		e.state = InUnits
	}
}

func (e *Extractor) feedUnits(row table.Row, kind RowKind) {
	switch kind {
	case KindUnitStart:
		if e.current != nil {
			e.units = append(e.units, *e.current)
		}
		marker := row.Cell(0)
		num, _ := RomanUnit(marker)
		unit := Unit{
			Number:     num,
			Name:       "Unit " + marker,
			RawContent: row.FirstAfter(1, minSectionText),
		}
		// A unit row may carry its objective marker in any column; the
		// matching objective supplies the unit name.
		for i := range row {
			if co, ok := ObjectiveNumber(row.Cell(i)); ok {
				if name, found := e.objectives[co]; found {
					unit.Name = name
				}
				break
			}
		}
		e.current = &unit

	case KindContinuation:
		// Detail text spanning multiple physical rows: first cell empty,
		// content continues in a later column.
		if e.current == nil {
			return
		}
		if text := row.FirstAfter(1, minEntryText); text != "" {
			e.current.RawContent += " " + text
		}

	case KindUnitsEnd:
		// Rows like {"", "Total", "60"} share the continuation shape. With
		// a unit open, an empty first cell means continuation: any long
		// cell is appended and the unit stays open until a boundary row
		// with a non-empty first cell ("Course Outcomes") arrives.
		if e.current != nil && row.Cell(0) == "" {
			if text := row.FirstAfter(1, minEntryText); text != "" {
				e.current.RawContent += " " + text
			}
			return
		}
		if e.current != nil {
			e.units = append(e.units, *e.current)
			e.current = nil
		}
		e.state = SeekingOutcomes
	}
}

func (e *Extractor) feedOutcomes(row table.Row, kind RowKind) {
	switch kind {
	case KindObjective:
		num, _ := ObjectiveNumber(row.Cell(0))
		if text := row.FirstAfter(1, minSectionText); text != "" {
			e.outcomes[num] = text
		}
	case KindTextBooksHeader:
		e.state = SeekingResources
		e.category = textBooks
	}
}

func (e *Extractor) feedResources(row table.Row, kind RowKind) {
	switch kind {
	case KindReferenceBooksHeader:
		e.category = referenceBooks
		return
	case KindWebResourcesHeader:
		e.category = webResources
		return
	case KindEvaluationHeader:
		e.state = Done
		return
	case KindTextBooksHeader:
		return
	}

	// Any other row with a numbered first cell is an entry. This includes
	// rows whose title cell contains "Total" ("Total Quality Management,
	// ..."), which classify as units_end.
	if !isEntryMarker(row.Cell(0)) {
		return
	}
	text := row.FirstAfter(1, minEntryText)
	if text == "" || e.category == noCategory {
		// Entries before any category header have no home; dropped.
		return
	}
	switch e.category {
	case textBooks:
		e.resources.TextBooks = append(e.resources.TextBooks, text)
	case referenceBooks:
		e.resources.ReferenceBooks = append(e.resources.ReferenceBooks, text)
	case webResources:
		e.resources.WebResources = append(e.resources.WebResources, text)
	}
}

// Result freezes the extraction. A unit still open when the document ends
// was never closed by a marker or boundary row and is not emitted. An empty
// Units slice means the document held no recognizable syllabus; callers
// treat that as "nothing to extract", not an error.
func (e *Extractor) Result() *Syllabus {
	return &Syllabus{
		Units:      e.units,
		Outcomes:   e.outcomes,
		Resources:  e.resources,
		Objectives: e.objectives,
	}
}

package syllabus

// Unit is one curriculum unit extracted from the units table. Number comes
// from the roman-numeral marker cell, Name from a matching course objective
// (or a generic placeholder), RawContent from the detail column. Topics are
// filled by the segmenter in a later pass.
type Unit struct {
	Number     int      `json:"Unit_Number"`
	Name       string   `json:"Unit_Name"`
	RawContent string   `json:"-"`
	Topics     []string `json:"Topics"`
}

// Resources categorizes the bibliography rows of the syllabus. Entry rows
// seen before any category header have no home and are dropped.
type Resources struct {
	TextBooks      []string `json:"text_books"`
	ReferenceBooks []string `json:"reference_books"`
	WebResources   []string `json:"web_resources"`
}

// Syllabus is the full extraction result for one source document. It is
// built in a single forward pass over the document's rows and not mutated
// afterward. An empty Units slice means no syllabus was found.
type Syllabus struct {
	Units      []Unit         `json:"Units"`
	Outcomes   map[int]string `json:"course_outcomes"`
	Resources  Resources      `json:"resources"`
	Objectives map[int]string `json:"-"`
}

// romanUnits maps the recognized unit markers. Unit numbers are
// non-decreasing in document order; anything outside I..VI is not a marker.
var romanUnits = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6,
}

// RomanUnit reports the unit number for a marker cell, if it is one.
func RomanUnit(cell string) (int, bool) {
	n, ok := romanUnits[cell]
	return n, ok
}

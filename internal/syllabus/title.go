package syllabus

import "strings"

// Unit naming knobs. The word cap and minimum label length were tuned
// against real syllabi; override before extraction if a corpus needs it.
var (
	// MaxNameWords caps how many leading words of a stripped objective
	// become the unit label.
	MaxNameWords = 8
	// MinNameLen is the shortest acceptable derived label; anything
	// shorter falls back to the generic placeholder.
	MinNameLen = 5
)

// GenericUnitName is used when no usable label can be derived.
const GenericUnitName = "Unit Content"

// knownPhrases maps a phrase found in an objective to a curated short
// label. Checked before the generic stripping heuristic.
var knownPhrases = []struct {
	contains []string // all must be present (lowercased)
	label    string
}{
	{[]string{"properties and classification of viruses"}, "Virus Properties & Classification"},
	{[]string{"pathogenic microorganisms of viruses"}, "Viral Pathogenesis & Disease Mechanisms"},
	{[]string{"mechanisms by which they cause"}, "Viral Pathogenesis & Disease Mechanisms"},
	{[]string{"reemerging viral infections"}, "Emerging & Reemerging Viral Infections"},
	{[]string{"diagnostic skills", "viral"}, "Emerging & Reemerging Viral Infections"},
	{[]string{"types of parasites", "intestine"}, "Intestinal Parasitic Infections"},
	{[]string{"diagnosis of parasitic"}, "Parasitic Diagnosis Techniques"},
	{[]string{"skills in the diagnosis"}, "Parasitic Diagnosis Techniques"},
}

// starterPhrases are boilerplate openers stripped iteratively from an
// objective before deriving a label. Longer variants come first so they
// win over their prefixes.
var starterPhrases = []string{
	"To gain knowledge on", "To gain knowledge about", "To gain knowledge",
	"To develop skills in", "To develop skills",
	"Gain knowledge on", "Gain knowledge about", "Gain knowledge",
	"Learn the", "Learn to", "Learn about", "Learn",
	"To understand the", "To understand", "Understand the", "Understand",
	"To acquire knowledge on", "To acquire knowledge", "Acquire knowledge",
	"To study the", "To study", "Study the", "Study",
	"Explain the", "Explain", "Discuss the", "Discuss",
	"Illustrate the", "Illustrate", "Demonstrate the", "Demonstrate",
	"Impart knowledge on", "Impart knowledge",
	"Practice the", "Practice", "Observe the", "Observe",
	"Learning objectives:", "Learning objective:",
	"The", "A", "An",
}

// trailingStopwords are connectors dropped from the end of a derived label.
var trailingStopwords = map[string]bool{
	"and": true, "or": true, "the": true, "of": true, "in": true,
	"on": true, "with": true, "to": true, "for": true, "by": true, "at": true,
}

// UnitNameFromObjective derives a short unit label from a course objective.
// Known phrasings map to curated labels; otherwise leading boilerplate is
// stripped, the first MaxNameWords words are kept, a trailing stopword run
// and punctuation are trimmed, and the result is title-cased. Labels
// shorter than MinNameLen collapse to GenericUnitName.
func UnitNameFromObjective(objective string) string {
	objective = strings.TrimSpace(objective)
	if len(objective) < MinNameLen {
		return GenericUnitName
	}

	lower := strings.ToLower(objective)
	for _, kp := range knownPhrases {
		all := true
		for _, c := range kp.contains {
			if !strings.Contains(lower, c) {
				all = false
				break
			}
		}
		if all {
			return kp.label
		}
	}

	text := stripStarterPhrases(objective)

	words := strings.Fields(text)
	if len(words) > MaxNameWords {
		words = words[:MaxNameWords]
	}
	for len(words) > 0 && trailingStopwords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}

	name := strings.TrimRight(strings.Join(words, " "), ",.;:- ")
	if len(name) < MinNameLen {
		return GenericUnitName
	}
	return titleCase(name)
}

// stripStarterPhrases removes leading boilerplate openers repeatedly until
// none apply. Some objectives stack several ("To understand the ...").
func stripStarterPhrases(text string) string {
	for changed := true; changed; {
		changed = false
		lower := strings.ToLower(text)
		for _, phrase := range starterPhrases {
			if strings.HasPrefix(lower, strings.ToLower(phrase)) {
				text = strings.TrimSpace(text[len(phrase):])
				text = strings.TrimLeft(text, ",:- ")
				if rest, ok := cutPrefixFold(text, "on "); ok {
					text = rest
				} else if rest, ok := cutPrefixFold(text, "about "); ok {
					text = rest
				}
				changed = true
				break
			}
		}
	}
	return text
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return strings.TrimSpace(s[len(prefix):]), true
	}
	return s, false
}

// titleCase uppercases the first letter of each space-separated word,
// lowercasing the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		for j, c := range r {
			if c >= 'a' && c <= 'z' {
				r[j] = c - ('a' - 'A')
				break
			}
			if c >= '0' && c <= '9' {
				break
			}
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

package syllabus

import (
	"regexp"
	"strings"
)

// ListSplitThreshold is the number of "term - description," patterns a
// segment must contain before the list-flatten pass re-splits it on commas.
// Below the threshold commas never split. Tuned against real unit bodies;
// overridable.
var ListSplitThreshold = 3

// dashItemRe matches one "word(s) – description," item of an enumerated
// list that the first pass mis-joined into a single segment.
var dashItemRe = regexp.MustCompile(`\w+\s*[–-]\s*[^,]+,`)

// Segment splits a unit's raw content into ordered topic strings.
//
// First pass: a single left-to-right scan. Periods at parenthesis depth 0
// split only when followed by whitespace or end of input, so decimals and
// abbreviations survive. Semicolons at depth 0 always split. Parentheses
// only adjust the depth counter; unbalanced input can drive depth negative,
// which is passed through untouched (garbage in, garbage out). Whatever
// remains in the buffer at the end is the final topic.
//
// Second pass: segments holding ListSplitThreshold or more dash-comma list
// items are re-split on commas, recovering enumerations like
// "term1 - desc1, term2 - desc2, ...". Other segments pass unchanged.
func Segment(raw string) []string {
	var topics []string
	var buf strings.Builder
	depth := 0

	flush := func() {
		if t := strings.TrimSpace(buf.String()); t != "" {
			topics = append(topics, t)
		}
		buf.Reset()
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '(':
			depth++
			buf.WriteRune(c)
		case c == ')':
			depth--
			buf.WriteRune(c)
		case c == '.' && depth == 0:
			buf.WriteRune(c)
			if i+1 >= len(runes) || isSpace(runes[i+1]) {
				flush()
			}
		case c == ';' && depth == 0:
			buf.WriteRune(c)
			flush()
		default:
			buf.WriteRune(c)
		}
	}
	flush()

	return flattenLists(topics)
}

// flattenLists re-splits segments that look like comma-joined dash lists.
func flattenLists(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		if len(dashItemRe.FindAllStringIndex(topic, -1)) >= ListSplitThreshold {
			for _, part := range strings.Split(topic, ",") {
				if p := strings.TrimSpace(part); p != "" {
					out = append(out, p)
				}
			}
		} else {
			out = append(out, topic)
		}
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t'
}

package generate

import (
	"regexp"
	"strings"
)

// Compiled once; these run on every candidate and every leaf string.
var (
	fenceOpenJSONRe = regexp.MustCompile("(?i)^```json\\s*")
	fenceOpenRe     = regexp.MustCompile("^```\\s*")
	fenceCloseRe    = regexp.MustCompile("\\s*```$")
	controlByteRe   = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)
	looseEscapeRe   = regexp.MustCompile(`([^\\])\\ `)
	// A quoted string value broken across exactly two physical lines.
	twoLineStringRe = regexp.MustCompile(`"([^"\\]*(?:\\.[^"\\]*)*)\n([^"\\]*(?:\\.[^"\\]*)*)"`)

	wsRunRe          = regexp.MustCompile(`\s+`)
	spaceBeforePunct = regexp.MustCompile(`\s+([,.!?;:])`)
	punctNoSpaceRe   = regexp.MustCompile(`([,.!?;:])([A-Za-z0-9])`)
	punctRuns        = []struct {
		re  *regexp.Regexp
		rep string
	}{
		{regexp.MustCompile(`\.{2,}`), "."},
		{regexp.MustCompile(`,{2,}`), ","},
		{regexp.MustCompile(`!{2,}`), "!"},
		{regexp.MustCompile(`\?{2,}`), "?"},
	}
	wordRe = regexp.MustCompile(`[A-Za-z0-9_]+`)

	trailingCommaRe   = regexp.MustCompile(`,\s*([\]}])`)
	adjacentQuotesRe  = regexp.MustCompile(`"\s*"`)
	strayFinalQuoteRe = regexp.MustCompile(`["']\s*}$`)
	valueSegmentRe    = regexp.MustCompile(`(?s)("\s*:\s*")(.*?)("\s*[,}\]])`)
)

// normalizeQuotes replaces curly quote variants with straight ASCII ones.
func normalizeQuotes(s string) string {
	r := strings.NewReplacer(
		"\u201c", `"`, "\u201d", `"`,
		"\u2018", "'", "\u2019", "'", "\u201a", "'",
	)
	return r.Replace(s)
}

// normalizeFormat is the format-normalization pass: it removes generation
// artifacts without touching JSON structure, so already valid text stays
// valid, and it is idempotent on its own output.
func normalizeFormat(s string) string {
	s = strings.TrimSpace(s)
	s = fenceOpenJSONRe.ReplaceAllString(s, "")
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = fenceCloseRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = controlByteRe.ReplaceAllString(s, "")
	s = normalizeQuotes(s)
	// A single backslash before a space is a broken escape; double it so
	// the parser sees a literal backslash. Already doubled ones match no
	// further, keeping the pass idempotent.
	s = looseEscapeRe.ReplaceAllString(s, `${1}\\ `)
	s = twoLineStringRe.ReplaceAllString(s, `"${1} ${2}"`)
	return strings.TrimSpace(s)
}

// repairPunctuation is the quoting/punctuation repair pass, applied to
// the original candidate when format normalization did not yield a parse.
func repairPunctuation(s string) string {
	s = normalizeQuotes(s)
	s = strings.ReplaceAll(s, `',`, `",`)
	s = trailingCommaRe.ReplaceAllString(s, "${1}")
	s = adjacentQuotesRe.ReplaceAllString(s, `"`)
	s = strayFinalQuoteRe.ReplaceAllString(s, "}")
	return s
}

// escapeValueQuotes escapes unescaped double quotes strictly inside
// "key": "value" value segments. A value's terminating quote is the first
// one followed by a comma, brace or bracket, so interior quotes followed
// by ordinary text are caught.
func escapeValueQuotes(s string) string {
	return valueSegmentRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := valueSegmentRe.FindStringSubmatch(m)
		var b strings.Builder
		b.WriteString(sub[1])
		val := sub[2]
		for i := 0; i < len(val); i++ {
			if val[i] == '"' && (i == 0 || val[i-1] != '\\') {
				b.WriteString(`\"`)
				continue
			}
			b.WriteByte(val[i])
		}
		b.WriteString(sub[3])
		return b.String()
	})
}

// CleanStrings re-normalizes every leaf string of a decoded JSON value.
// Used at export time so repaired and direct-parsed records read the same.
func CleanStrings(v any) any {
	return cleanTree(v)
}

// ruleBasedClean normalizes one leaf string: whitespace runs collapse, a
// space appears after sentence punctuation glued to text, same-character
// punctuation runs collapse, curly quotes straighten, and an immediately
// repeated word is dropped.
func ruleBasedClean(s string) string {
	s = strings.TrimSpace(s)
	s = wsRunRe.ReplaceAllString(s, " ")
	s = spaceBeforePunct.ReplaceAllString(s, "${1}")
	s = punctNoSpaceRe.ReplaceAllString(s, "${1} ${2}")
	for _, pr := range punctRuns {
		s = pr.re.ReplaceAllString(s, pr.rep)
	}
	s = normalizeQuotes(s)
	return dropRepeatedWord(s)
}

// dropRepeatedWord removes the second of two identical adjacent words
// ("the the" -> "the"). Word runs collapse fully.
func dropRepeatedWord(s string) string {
	for {
		locs := wordRe.FindAllStringIndex(s, -1)
		removed := false
		for i := 1; i < len(locs); i++ {
			prev, cur := locs[i-1], locs[i]
			between := s[prev[1]:cur[0]]
			if between != "" && strings.TrimSpace(between) == "" &&
				s[prev[0]:prev[1]] == s[cur[0]:cur[1]] {
				s = s[:prev[1]] + s[cur[1]:]
				removed = true
				break
			}
		}
		if !removed {
			return s
		}
	}
}

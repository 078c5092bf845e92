package generate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the outcome of the recovery cascade for one candidate text.
// Text always holds what should be persisted for audit: the cleaned text
// that parsed, or the best-effort cleaned text when nothing did.
type Result struct {
	Data map[string]any // parsed object; nil when unrecoverable
	Text string
	Err  string // parse error description, set only on failure
}

// OK reports whether the cascade produced a structured value.
func (r Result) OK() bool { return r.Data != nil }

// A strategy is one fallible repair attempt. Every strategy starts from
// the original candidate text: running one strategy's regexes over
// another's output risks corrupting text the first already fixed.
type strategy struct {
	name string
	run  func(candidate string) (Result, error)
}

// strategies are tried in order; the first successful parse wins.
var strategies = []strategy{
	{"normalize-format", recoverFormat},
	{"repair-punctuation", recoverPunctuation},
}

// Recover runs the repair cascade over a candidate text. On failure the
// returned Result carries the punctuation-repaired text (the last
// best-effort form) and the final parse error; no further automatic
// repair is attempted.
func Recover(candidate string) Result {
	var last Result
	var lastErr error
	for _, s := range strategies {
		res, err := s.run(candidate)
		if err == nil {
			return res
		}
		last, lastErr = res, err
	}
	last.Err = lastErr.Error()
	return last
}

// Direct attempts a strict parse of the raw candidate before any repair.
func Direct(candidate string) (map[string]any, bool) {
	data, err := parseStrict(candidate)
	return data, err == nil
}

// recoverFormat strips generation-formatting artifacts (fences, control
// bytes, curly quotes, broken escapes, wrapped string values) and, when
// the result parses, normalizes every leaf string. Idempotent on its own
// clean output.
func recoverFormat(candidate string) (Result, error) {
	cleaned := normalizeFormat(candidate)
	data, err := parseStrict(cleaned)
	if err != nil {
		return Result{Text: cleaned}, err
	}
	return Result{Data: cleanTree(data).(map[string]any), Text: cleaned}, nil
}

// recoverPunctuation repairs quoting and punctuation corruption, with one
// last-resort retry that escapes quotes embedded in value segments. The
// punctuation-repaired text, not the escaped variant, is what a failure
// preserves.
func recoverPunctuation(candidate string) (Result, error) {
	repaired := repairPunctuation(candidate)
	data, err := parseStrict(repaired)
	if err == nil {
		return Result{Data: data, Text: repaired}, nil
	}

	escaped := escapeValueQuotes(repaired)
	data, retryErr := parseStrict(escaped)
	if retryErr == nil {
		return Result{Data: data, Text: escaped}, nil
	}
	// The failure reports the last attempt's error but keeps the
	// punctuation-repaired text, not the escaped variant.
	return Result{Text: repaired}, retryErr
}

// parseStrict decodes a candidate into a JSON object. Trailing content,
// null, and the empty object all fail: the schema requires a populated
// object, and `{}` is the backend's own "could not comply" signal.
func parseStrict(s string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON object")
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("candidate decoded to an empty object")
	}
	return m, nil
}

// cleanTree applies the rule-based text normalization to every leaf
// string of a decoded value.
func cleanTree(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cleanTree(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cleanTree(val)
		}
		return out
	case string:
		return ruleBasedClean(t)
	default:
		return v
	}
}

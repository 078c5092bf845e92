package table

import "strings"

// Row is one table row as an ordered sequence of cell texts. Cells may be
// empty; only the first two are ever inspected for classification, the rest
// are scanned for content.
type Row []string

// Document is a parsed source document reduced to its table rows, in
// document order across all pages and tables.
type Document struct {
	Title string // Document title (from metadata or filename)
	Rows  []Row
}

// Cell returns the trimmed cell at index i, or "" if the row is shorter.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

// FirstAfter returns the first cell at index >= start whose trimmed length
// exceeds minLen, cleaned of embedded newlines. Returns "" if none qualifies.
func (r Row) FirstAfter(start, minLen int) string {
	for i := start; i < len(r); i++ {
		c := strings.TrimSpace(r[i])
		if len(c) > minLen {
			return CleanText(r[i])
		}
	}
	return ""
}

// CleanText normalizes a cell extracted from a layout engine: embedded
// newlines become spaces and surrounding whitespace is dropped.
func CleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

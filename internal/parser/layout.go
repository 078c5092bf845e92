package parser

import (
	"regexp"
	"strings"

	"coursegen/internal/table"
)

// columnGapRe splits a layout-preserved text line into cells: columns are
// separated by tabs or runs of two-plus spaces. Single spaces stay inside
// a cell.
var columnGapRe = regexp.MustCompile(`\t+| {2,}`)

// rowsFromLayoutText turns layout-preserved text (pdftotext -layout, plain
// PDF extraction, fixed-width txt) into table rows, one per non-empty line.
func rowsFromLayoutText(text string) []table.Row {
	var rows []table.Row
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := columnGapRe.Split(strings.Trim(line, " \t"), -1)
		row := make(table.Row, 0, len(cells))
		for _, c := range cells {
			row = append(row, strings.TrimSpace(c))
		}
		rows = append(rows, row)
	}
	return rows
}

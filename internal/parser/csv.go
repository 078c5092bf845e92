package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"coursegen/internal/table"
)

// CSVParser handles CSV files: each record is one table row as-is.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*table.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &table.Document{Title: titleFromFilename(filename)}
	for _, rec := range records {
		doc.Rows = append(doc.Rows, table.Row(rec))
	}
	return doc, nil
}

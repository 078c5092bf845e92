package parser

import (
	"io"

	"coursegen/internal/table"
)

// TextParser handles plain text exports of layout engines: one row per
// line, columns separated by tab or multi-space runs.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*table.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &table.Document{
		Title: titleFromFilename(filename),
		Rows:  rowsFromLayoutText(string(data)),
	}, nil
}

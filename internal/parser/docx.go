package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"coursegen/internal/table"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files, reading rows from native word tables.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*table.Document, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "coursegen-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	wordDoc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	doc := &table.Document{Title: titleFromFilename(filename)}
	for _, item := range wordDoc.Document.Body.Items {
		tbl, ok := item.(*docx.Table)
		if !ok {
			continue
		}
		for _, tr := range tbl.TableRows {
			var row table.Row
			for _, tc := range tr.TableCells {
				row = append(row, cellParagraphText(tc))
			}
			if len(row) > 0 {
				doc.Rows = append(doc.Rows, row)
			}
		}
	}
	return doc, nil
}

// cellParagraphText joins a cell's paragraph texts with newlines, matching
// how a layout engine would emit a multi-line cell.
func cellParagraphText(tc *docx.WTableCell) string {
	var parts []string
	for _, para := range tc.Paragraphs {
		if t := docxParagraphText(para); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

package parser

import (
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
	}{
		{"syllabus.pdf", "*parser.PDFParser"},
		{"syllabus.DOCX", "*parser.DOCXParser"},
		{"syllabus.html", "*parser.HTMLParser"},
		{"syllabus.htm", "*parser.HTMLParser"},
		{"syllabus.md", "*parser.MarkdownParser"},
		{"syllabus.csv", "*parser.CSVParser"},
		{"syllabus.txt", "*parser.TextParser"},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.filename)
		if err != nil {
			t.Errorf("ForFile(%q): %v", tt.filename, err)
			continue
		}
		if got := typeName(p); got != tt.wantType {
			t.Errorf("ForFile(%q) = %s, want %s", tt.filename, got, tt.wantType)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *PDFParser:
		return "*parser.PDFParser"
	case *DOCXParser:
		return "*parser.DOCXParser"
	case *HTMLParser:
		return "*parser.HTMLParser"
	case *MarkdownParser:
		return "*parser.MarkdownParser"
	case *CSVParser:
		return "*parser.CSVParser"
	case *TextParser:
		return "*parser.TextParser"
	}
	return "unknown"
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("archive.zip"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("a.pdf") || !IsSupportedExtension("b.CSV") {
		t.Error("expected supported extensions to match case-insensitively")
	}
	if IsSupportedExtension("c.exe") || IsSupportedExtension("noext") {
		t.Error("unexpected support for unknown extensions")
	}
}

func TestTextParser(t *testing.T) {
	text := "Unit    Details\nI       Morphology of bacteria in depth"
	doc, err := (&TextParser{}).Parse(strings.NewReader(text), "syllabus.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "syllabus" {
		t.Errorf("expected title from filename, got %q", doc.Title)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(doc.Rows))
	}
}

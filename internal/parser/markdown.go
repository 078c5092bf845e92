package parser

import (
	"bytes"
	"io"
	"strings"

	"coursegen/internal/table"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark with the GFM table
// extension; pipe-table rows become document rows.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*table.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &table.Document{Title: titleFromFilename(filename)}

	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.TableHeader, *east.TableRow:
			var row table.Row
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				row = append(row, cellText(c, src))
			}
			if len(row) > 0 {
				doc.Rows = append(doc.Rows, row)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// cellText gets the text of a table cell from its inline children. Cells
// carry both raw line segments and parsed inlines; preferring the inlines
// avoids counting the same text twice.
func cellText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
			} else {
				walk(c)
			}
		}
	}
	walk(n)
	if buf.Len() == 0 && n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
	}
	return strings.TrimSpace(buf.String())
}

package provider

import (
	"bytes"
	"io"

	"github.com/MatLN8/pdf-restruct/internal/span"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownProvider handles Markdown files using goldmark. Headings
// become large-font synthetic spans, everything else body-sized lines;
// numbered headings like "4.2 Terms" then flow through the same
// pattern matcher as PDF text.
type MarkdownProvider struct{}

func (p *MarkdownProvider) Parse(r io.Reader, filename string) (*span.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var lines []synthLine
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if t := string(node.Text(src)); t != "" {
				lines = append(lines, synthLine{text: t, fontSize: headingFontSize(node.Level)})
			}
		default:
			lines = splitLines(extractText(n, src), bodyFontSize, lines)
		}
	}

	return synthDocument([][]synthLine{lines}), nil
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	// Also handle inline children.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(extractText(c, src))
		}
	}
	return buf.String()
}

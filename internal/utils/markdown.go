package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// PlainText renders a markdown post body as plain text. Unlike the
// analyzer normalization pipeline this keeps casing and punctuation; it
// is used for human-readable excerpts in API responses.
func PlainText(body string) string {
	if body == "" {
		return ""
	}

	doc := markdown.Parse([]byte(body), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")

	return result
}

// Excerpt returns the first maxRunes runes of the plain-text rendering of
// a post body, cut at a word boundary with a trailing ellipsis.
func Excerpt(body string, maxRunes int) string {
	plain := PlainText(body)
	if maxRunes <= 0 {
		return plain
	}

	runes := []rune(plain)
	if len(runes) <= maxRunes {
		return plain
	}

	cut := string(runes[:maxRunes])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}

// extractText walks the AST and extracts text content
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return

	case *ast.Code:
		buf.Write(n.Literal)
		return

	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return

	case *ast.Hardbreak:
		buf.WriteString("\n")
		return

	case *ast.Softbreak:
		buf.WriteString(" ")
		return

	case *ast.Image:
		// Image alt text is not prose; skip the whole node.
		return

	case *ast.HTMLBlock:
		return

	case *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph:
		buf.WriteString("\n\n")
	case *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List:
		buf.WriteString("\n")
	case *ast.BlockQuote:
		buf.WriteString("\n")
	}
}

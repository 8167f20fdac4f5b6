// Package normalize implements the Normalizer interface.
// It turns HTML into Markdown with html-to-markdown. The Markdown renderer
// uses it for the free text of a card, so characters that carry meaning in
// Markdown come out escaped and the text reads exactly as it does in HTML.
package normalize

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/extdir/core"
)

var _ core.Normalizer = (*MarkdownNormalizer)(nil)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts an HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(fragment string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// Text converts plain text into a Markdown inline. The text is HTML-escaped
// first so markup-looking input stays literal.
func (n *MarkdownNormalizer) Text(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return n.Normalize("<p>" + html.EscapeString(s) + "</p>")
}

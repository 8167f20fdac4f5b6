// Package render — Markdown renderer.
// Writes one section per card. Links are copied from the card unchanged;
// only the heading and description pass through the normalizer, which
// escapes Markdown syntax in free text.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/extdir/core"
	"github.com/gaurav-prasanna/extdir/core/listing"
	"github.com/gaurav-prasanna/extdir/core/normalize"
)

// MarkdownRenderer converts a listing into Markdown.
type MarkdownRenderer struct {
	normalizer *normalize.MarkdownNormalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{normalizer: normalize.New()}
}

// Render returns the listing as Markdown, headed by the listing title.
//
//	### [luna](/extension?id=Minestom/luna)
//
//	by [Minestom](https://github.com/Minestom) · official
//
//	A scripting extension
func (r *MarkdownRenderer) Render(l core.Listing) ([]byte, error) {
	cards, err := listing.Cards(l.Extensions)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	if l.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", l.Title)
	}
	for _, c := range cards {
		if err := r.writeCard(&b, c); err != nil {
			return nil, fmt.Errorf("card %s: %w", c.Href, err)
		}
	}
	if l.Pages > 1 {
		fmt.Fprintf(&b, "_Page %d of %d_\n", l.Page, l.Pages)
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func (r *MarkdownRenderer) writeCard(b *strings.Builder, c core.Card) error {
	heading, err := r.normalizer.Text(c.Heading)
	if err != nil {
		return err
	}
	description, err := r.normalizer.Text(c.Description)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, "### [%s](%s)\n\n", heading, c.Href)
	fmt.Fprintf(b, "by [%s](%s)", c.BylineText, c.BylineHref)
	if c.Official {
		b.WriteString(" · official")
	}
	b.WriteString("\n\n")
	if description != "" {
		b.WriteString(description + "\n\n")
	}
	return nil
}

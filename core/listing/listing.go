// Package listing renders the extension directory: the list of entry cards
// and the HTML page that hosts it.
package listing

import (
	"bytes"
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/gaurav-prasanna/extdir/core"
	"github.com/gaurav-prasanna/extdir/core/entry"
)

// ListClass is applied to the <ul> holding the entries.
const ListClass = "extension-list"

// DefaultTitle is used when a listing has no title.
const DefaultTitle = "Extensions"

// Cards maps every extension to its card, in input order.
// A record without an owner fails the whole listing.
func Cards(exts []core.Extension) ([]core.Card, error) {
	cards := make([]core.Card, 0, len(exts))
	for i, ext := range exts {
		card, err := entry.NewCard(ext)
		if err != nil {
			return nil, fmt.Errorf("extension %d (%q): %w", i, ext.Name, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// List returns the <ul> with one entry per extension.
func List(exts []core.Extension) (g.Node, error) {
	cards, err := Cards(exts)
	if err != nil {
		return nil, err
	}
	return h.Ul(h.Class(ListClass), g.Map(cards, entry.Node)), nil
}

// Page returns the complete HTML5 document for a listing.
func Page(l core.Listing) (g.Node, error) {
	list, err := List(l.Extensions)
	if err != nil {
		return nil, err
	}

	title := l.Title
	if title == "" {
		title = DefaultTitle
	}

	var head []g.Node
	if l.Stylesheet != "" {
		head = append(head, h.Link(h.Rel("stylesheet"), h.Href(l.Stylesheet)))
	}

	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head:     head,
		Body: []g.Node{
			h.Main(
				h.H1(g.Text(title)),
				list,
				g.If(l.Pages > 1, h.Nav(h.Class("pagination"),
					g.Textf("Page %d of %d", l.Page, l.Pages),
				)),
			),
		},
	}), nil
}

// Write renders node into w.
func Write(w io.Writer, node g.Node) error {
	if err := node.Render(w); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

// String renders node into a string.
func String(node g.Node) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

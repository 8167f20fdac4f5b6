// Package render provides output renderers for the extdir pipeline.
// This file implements the HTML renderers: the full page and the bare
// list fragment that other pages can embed.
package render

import (
	"github.com/gaurav-prasanna/extdir/core"
	"github.com/gaurav-prasanna/extdir/core/listing"
)

// HTMLRenderer writes the listing as a complete HTML5 document.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the HTML document bytes.
func (r *HTMLRenderer) Render(l core.Listing) ([]byte, error) {
	node, err := listing.Page(l)
	if err != nil {
		return nil, err
	}
	out, err := listing.String(node)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// FragmentRenderer writes only the <ul> of entries.
type FragmentRenderer struct{}

// NewFragmentRenderer creates a FragmentRenderer.
func NewFragmentRenderer() *FragmentRenderer {
	return &FragmentRenderer{}
}

// Render returns the list fragment bytes.
func (r *FragmentRenderer) Render(l core.Listing) ([]byte, error) {
	out, err := fragment(l)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Extension returns the file extension for fragment output.
func (r *FragmentRenderer) Extension() string {
	return ".fragment.html"
}

func fragment(l core.Listing) (string, error) {
	node, err := listing.List(l.Extensions)
	if err != nil {
		return "", err
	}
	return listing.String(node)
}

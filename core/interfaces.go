// Package core defines the record types and pipeline interfaces for extdir.
// Each stage of the pipeline is a clean, testable interface.
package core

import "io"

// Owner is the account that published an extension.
type Owner struct {
	Login string `json:"login" yaml:"login"`
}

// Extension holds the display metadata of one directory entry.
// Owner is a pointer so that an absent owner can be told apart from an
// empty one when records are decoded.
type Extension struct {
	Owner       *Owner `json:"owner" yaml:"owner"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Login returns the owner's login, or "" when the owner is absent.
func (e Extension) Login() string {
	if e.Owner == nil {
		return ""
	}
	return e.Owner.Login
}

// ID returns the "<login>/<name>" identifier used in entry links.
func (e Extension) ID() string {
	return e.Login() + "/" + e.Name
}

// Card is the view model of a rendered entry.
type Card struct {
	Official    bool   `json:"official"`
	Class       string `json:"class,omitempty"`
	Href        string `json:"href"`
	Heading     string `json:"heading"`
	BylineHref  string `json:"byline_href"`
	BylineText  string `json:"byline_text"`
	Description string `json:"description"`
}

// Listing is an ordered set of extensions shown on one page.
type Listing struct {
	Title      string
	Stylesheet string
	Page       int // 1-based; 0 when the listing is not paginated
	Pages      int
	Extensions []Extension
}

// Source loads extension records.
type Source interface {
	Load(r io.Reader) ([]Extension, error)
}

// Extractor reads cards back out of rendered HTML.
type Extractor interface {
	Extract(html string) ([]Card, error)
}

// Normalizer converts an HTML fragment into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a listing into a final output format.
type Renderer interface {
	Render(listing Listing) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

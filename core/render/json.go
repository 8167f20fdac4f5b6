// Package render — JSON renderer.
// Emits the card view models of a listing together with a summary, the
// same shape the inspect command produces from rendered HTML.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/extdir/core"
	"github.com/gaurav-prasanna/extdir/core/extract"
	"github.com/gaurav-prasanna/extdir/core/listing"
)

// ListingJSON is the complete JSON output for a listing.
type ListingJSON struct {
	Title   string          `json:"title,omitempty"`
	Page    int             `json:"page,omitempty"`
	Pages   int             `json:"pages,omitempty"`
	Summary extract.Summary `json:"summary"`
	Cards   []core.Card     `json:"cards"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the listing into ListingJSON.
func (r *JSONRenderer) Render(l core.Listing) ([]byte, error) {
	cards, err := listing.Cards(l.Extensions)
	if err != nil {
		return nil, err
	}
	return MarshalCards(ListingJSON{Title: l.Title, Page: l.Page, Pages: l.Pages}, cards)
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// MarshalCards fills in the cards and summary of doc and encodes it.
func MarshalCards(doc ListingJSON, cards []core.Card) ([]byte, error) {
	doc.Cards = cards
	if doc.Cards == nil {
		doc.Cards = []core.Card{}
	}
	doc.Summary = extract.Summary{Total: len(cards)}
	for _, c := range cards {
		if c.Official {
			doc.Summary.Official++
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

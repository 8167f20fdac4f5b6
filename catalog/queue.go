// Package catalog — ordered collection with deduplication.
// Maintains a seen set keyed by extension ID so the same extension is
// listed once, at the position it first appeared.
package catalog

import "github.com/gaurav-prasanna/extdir/core"

// Catalog is an insertion-ordered set of extensions.
type Catalog struct {
	items []core.Extension
	seen  map[string]bool
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		seen: make(map[string]bool),
	}
}

// Add appends ext unless an extension with the same ID is already present.
// It reports whether ext was added.
func (c *Catalog) Add(ext core.Extension) bool {
	id := ext.ID()
	if c.seen[id] {
		return false
	}
	c.seen[id] = true
	c.items = append(c.items, ext)
	return true
}

// AddAll adds every extension and returns how many were duplicates.
func (c *Catalog) AddAll(exts []core.Extension) int {
	dups := 0
	for _, ext := range exts {
		if !c.Add(ext) {
			dups++
		}
	}
	return dups
}

// Len returns the number of unique extensions.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns the extensions in insertion order.
func (c *Catalog) All() []core.Extension {
	return c.items
}

// Filter returns the extensions accepted by every rule, in insertion order.
func (c *Catalog) Filter(rules ...Rule) []core.Extension {
	var out []core.Extension
	for _, ext := range c.items {
		if Match(ext, rules...) {
			out = append(out, ext)
		}
	}
	return out
}

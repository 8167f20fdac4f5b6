// Package page splits a listing into fixed-size pages.
// Entries keep their input order; only the last page may be short.
package page

import "github.com/gaurav-prasanna/extdir/core"

// DefaultSize is the number of entries per page when none is configured.
const DefaultSize = 24

// Paginator splits listings into pages.
type Paginator struct {
	Size int // number of entries per page
}

// New creates a Paginator with the given page size.
// Defaults to DefaultSize if size <= 0.
func New(size int) *Paginator {
	if size <= 0 {
		size = DefaultSize
	}
	return &Paginator{Size: size}
}

// Split returns the pages of l. Each page carries l's title and stylesheet
// along with its 1-based number and the page count. An empty listing yields
// no pages.
func (p *Paginator) Split(l core.Listing) []core.Listing {
	exts := l.Extensions
	if len(exts) == 0 {
		return nil
	}
	size := p.Size
	if size <= 0 {
		size = DefaultSize
	}

	total := (len(exts) + size - 1) / size
	pages := make([]core.Listing, 0, total)
	for i := 0; i < len(exts); i += size {
		end := min(i+size, len(exts))
		pages = append(pages, core.Listing{
			Title:      l.Title,
			Stylesheet: l.Stylesheet,
			Page:       len(pages) + 1,
			Pages:      total,
			Extensions: exts[i:end],
		})
	}
	return pages
}

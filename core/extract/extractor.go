// Package extract implements the Extractor interface.
// It reads rendered extension cards back out of HTML by:
//  1. Walking the raw token stream, so the byline anchor nested inside the
//     card anchor is seen exactly as it was written
//  2. Summarizing a whole document with goquery (entry and official counts)
package extract

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/extdir/core"
	"github.com/gaurav-prasanna/extdir/core/entry"
)

// Summary counts the entries found in a rendered document.
type Summary struct {
	Total    int `json:"total"`
	Official int `json:"official"`
}

// HTMLExtractor reads cards from rendered listing HTML.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// field is the card text currently being collected.
type field int

const (
	fieldNone field = iota
	fieldHeading
	fieldByline
	fieldDescription
)

// Extract returns one card per <li class="extension-entry">, in document order.
func (e *HTMLExtractor) Extract(src string) ([]core.Card, error) {
	z := html.NewTokenizer(strings.NewReader(src))

	var (
		cards   []core.Card
		cur     *core.Card
		divSeen bool
		anchors int
		inByH4  bool
		target  = fieldNone
		text    strings.Builder
	)

	flush := func() {
		if cur == nil {
			return
		}
		value := text.String()
		switch target {
		case fieldHeading:
			cur.Heading = value
		case fieldByline:
			cur.BylineText = value
		case fieldDescription:
			cur.Description = value
		}
		text.Reset()
		target = fieldNone
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("tokenizing HTML: %w", err)
			}
			return cards, nil

		case html.StartTagToken:
			tok := z.Token()
			if tok.DataAtom == atom.Li && hasClass(tok, entry.ItemClass) {
				cards = append(cards, core.Card{})
				cur = &cards[len(cards)-1]
				divSeen, anchors, inByH4, target = false, 0, false, fieldNone
			}
			if cur == nil {
				continue
			}
			switch tok.DataAtom {
			case atom.Div:
				if !divSeen {
					divSeen = true
					cur.Class = attr(tok, "class")
					cur.Official = cur.Class == entry.OfficialClass
				}
			case atom.A:
				anchors++
				if anchors == 1 {
					cur.Href = attr(tok, "href")
				} else if inByH4 {
					cur.BylineHref = attr(tok, "href")
					target = fieldByline
				}
			case atom.H3:
				target = fieldHeading
			case atom.H4:
				inByH4 = true
			case atom.P:
				target = fieldDescription
			}

		case html.EndTagToken:
			if cur == nil {
				continue
			}
			tok := z.Token()
			switch tok.DataAtom {
			case atom.A:
				if target == fieldByline {
					flush()
				}
				anchors--
			case atom.H3, atom.P:
				flush()
			case atom.H4:
				inByH4 = false
			case atom.Li:
				cur = nil
			}

		case html.TextToken:
			if cur != nil && target != fieldNone {
				text.WriteString(z.Token().Data)
			}
		}
	}
}

// Summarize counts entries and official entries in a rendered document.
func Summarize(src string) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return Summary{}, fmt.Errorf("parsing HTML: %w", err)
	}
	items := doc.Find("li." + entry.ItemClass)
	return Summary{
		Total:    items.Length(),
		Official: items.ChildrenFiltered("div." + entry.OfficialClass).Length(),
	}, nil
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(tok html.Token, class string) bool {
	return slices.Contains(strings.Fields(attr(tok, "class")), class)
}

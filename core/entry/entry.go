// Package entry renders a single extension card for the directory listing.
//
// The markup is:
//
//	<li class="extension-entry">
//	  <div class="official">               (class only for the Minestom account)
//	    <a href="/extension?id=login/name" rel="nofollow">
//	      <h3>name</h3>
//	      <h4>by <a rel="nofollow" href="https://github.com/login">login</a></h4>
//	      <p>description</p>
//	    </a>
//	  </div>
//	</li>
//
// Links are built by plain concatenation; login and name are not URL-encoded.
package entry

import (
	"errors"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/gaurav-prasanna/extdir/core"
)

const (
	// OfficialLogin is the account whose extensions are marked official.
	OfficialLogin = "Minestom"
	// OfficialClass is applied to the card container of official extensions.
	OfficialClass = "official"
	// ItemClass is applied to every list item.
	ItemClass = "extension-entry"

	detailPrefix  = "/extension?id="
	profilePrefix = "https://github.com/"
	linkRel       = "nofollow"
)

// ErrMissingOwner is returned for a record without an owner login.
var ErrMissingOwner = errors.New("extension has no owner")

// Href returns the detail page link for an extension.
func Href(login, name string) string {
	return detailPrefix + login + "/" + name
}

// ProfileHref returns the GitHub profile link for an owner.
func ProfileHref(login string) string {
	return profilePrefix + login
}

// IsOfficial reports whether login is exactly the official account.
func IsOfficial(login string) bool {
	return login == OfficialLogin
}

// Class returns the container class for an owner: OfficialClass or "".
func Class(login string) string {
	if IsOfficial(login) {
		return OfficialClass
	}
	return ""
}

// NewCard maps a record to its card view model.
func NewCard(ext core.Extension) (core.Card, error) {
	if ext.Owner == nil || ext.Owner.Login == "" {
		return core.Card{}, ErrMissingOwner
	}
	login := ext.Owner.Login
	return core.Card{
		Official:    IsOfficial(login),
		Class:       Class(login),
		Href:        Href(login, ext.Name),
		Heading:     ext.Name,
		BylineHref:  ProfileHref(login),
		BylineText:  login,
		Description: ext.Description,
	}, nil
}

// Render returns the list item for one extension.
func Render(ext core.Extension) (g.Node, error) {
	card, err := NewCard(ext)
	if err != nil {
		return nil, err
	}
	return Node(card), nil
}

// Node builds the list item markup for an already mapped card.
func Node(c core.Card) g.Node {
	return h.Li(h.Class(ItemClass),
		h.Div(
			g.If(c.Class != "", h.Class(c.Class)),
			h.A(h.Href(c.Href), h.Rel(linkRel),
				h.H3(g.Text(c.Heading)),
				h.H4(
					g.Text("by "),
					h.A(h.Rel(linkRel), h.Href(c.BylineHref), g.Text(c.BylineText)),
				),
				h.P(g.Text(c.Description)),
			),
		),
	)
}

package listing

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/extdir/core"
	"github.com/gaurav-prasanna/extdir/core/entry"
)

func sample() []core.Extension {
	return []core.Extension{
		{Owner: &core.Owner{Login: "Minestom"}, Name: "luna", Description: "A scripting extension"},
		{Owner: &core.Owner{Login: "someone"}, Name: "foo"},
		{Owner: &core.Owner{Login: "Minestom"}, Name: "terra", Description: "World generation"},
	}
}

func TestList_Order(t *testing.T) {
	node, err := List(sample())
	require.NoError(t, err)
	out, err := String(node)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<ul class="extension-list"><li class="extension-entry">`))
	luna := strings.Index(out, "/extension?id=Minestom/luna")
	foo := strings.Index(out, "/extension?id=someone/foo")
	terra := strings.Index(out, "/extension?id=Minestom/terra")
	assert.True(t, luna < foo && foo < terra, "entries out of order: %s", out)
}

func TestList_Empty(t *testing.T) {
	node, err := List(nil)
	require.NoError(t, err)
	out, err := String(node)
	require.NoError(t, err)
	assert.Equal(t, `<ul class="extension-list"></ul>`, out)
}

func TestList_MissingOwner(t *testing.T) {
	exts := append(sample(), core.Extension{Name: "orphan"})
	_, err := List(exts)
	require.ErrorIs(t, err, entry.ErrMissingOwner)
	assert.Contains(t, err.Error(), "extension 3")
}

func TestPage(t *testing.T) {
	node, err := Page(core.Listing{
		Title:      "Minestom Extensions",
		Stylesheet: "/static/extensions.css",
		Extensions: sample(),
	})
	require.NoError(t, err)
	out, err := String(node)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "Minestom Extensions", doc.Find("title").Text())
	assert.Equal(t, "Minestom Extensions", doc.Find("h1").Text())
	href, ok := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "/static/extensions.css", href)
	assert.Equal(t, 3, doc.Find("ul.extension-list > li.extension-entry").Length())
	assert.Equal(t, 2, doc.Find("li.extension-entry > div.official").Length())
	assert.Equal(t, 0, doc.Find("nav.pagination").Length())
}

func TestPage_DefaultTitleAndPagination(t *testing.T) {
	node, err := Page(core.Listing{Page: 2, Pages: 3, Extensions: sample()[:1]})
	require.NoError(t, err)
	out, err := String(node)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, doc.Find("title").Text())
	assert.Equal(t, "Page 2 of 3", doc.Find("nav.pagination").Text())
}

package dom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/dom"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestConvertEmptyTree(t *testing.T) {
	root, err := htmltree.Parse("")
	require.NoError(t, err)
	doc := dom.Convert(root)
	require.Equal(t, html.DocumentNode, doc.Type)
	require.Nil(t, doc.FirstChild, "empty tree should convert to a childless document")
}

func TestConvertElementTree(t *testing.T) {
	root, err := htmltree.Parse(`<div id="blob"><span>content</span></div>`)
	require.NoError(t, err)
	doc := dom.Convert(root)

	div := doc.FirstChild
	require.NotNil(t, div)
	require.Equal(t, html.ElementNode, div.Type)
	require.Equal(t, "div", div.Data)
	require.Len(t, div.Attr, 1)
	require.Equal(t, "id", div.Attr[0].Key)
	require.Equal(t, "blob", div.Attr[0].Val)

	span := div.FirstChild
	require.NotNil(t, span)
	require.Equal(t, "span", span.Data)
	require.Equal(t, html.TextNode, span.FirstChild.Type)
	require.Equal(t, "content", span.FirstChild.Data)
}

func TestConvertSequenceBecomesSiblings(t *testing.T) {
	root, err := htmltree.Parse("a<strong>b</strong>c")
	require.NoError(t, err)
	doc := dom.Convert(root)

	var kinds []html.NodeType
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		kinds = append(kinds, n.Type)
	}
	require.Equal(t, []html.NodeType{html.TextNode, html.ElementNode, html.TextNode}, kinds)
}

func TestConvertCommentAndDoctype(t *testing.T) {
	root, err := htmltree.Parse("<!doctype html><!--note-->")
	require.NoError(t, err)
	doc := dom.Convert(root)

	dt := doc.FirstChild
	require.NotNil(t, dt)
	require.Equal(t, html.DoctypeNode, dt.Type)
	require.Equal(t, "doctype", dt.Data)

	comment := dt.NextSibling
	require.NotNil(t, comment)
	require.Equal(t, html.CommentNode, comment.Type)
	require.Equal(t, "note", comment.Data)
}

func TestConvertedTreeRenders(t *testing.T) {
	input := `<div id="blob"><span>content</span></div>`
	root, err := htmltree.Parse(input)
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, html.Render(&b, dom.Convert(root)))
	require.Equal(t, input, b.String())
}

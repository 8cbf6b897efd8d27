/*
Package dom converts markup trees into W3C-style DOM nodes.

The target node type is golang.org/x/net/html.Node, which makes a parsed
tree usable with the wider ecosystem around that package (selectors,
renderers, sanitizers).

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/htmltree/tree"
	"golang.org/x/net/html"
)

// Convert builds an x/net/html node tree from a markup tree. The result is
// a DocumentNode whose children are the converted top-level nodes, the same
// shape html.Parse produces. Empty trees convert to a document without
// children.
//
// Open elements and open comments convert like closed ones; the distinction
// only matters for byte-exact rendering, which stays with tree.Render.
func Convert(root *tree.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	appendConverted(doc, root)
	return doc
}

// appendConverted appends the conversion of n to parent. A sequence
// contributes one sibling per element, everything else at most one node.
func appendConverted(parent *html.Node, n *tree.Node) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case tree.KindEmpty:
		// contributes nothing
	case tree.KindText:
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text()})
	case tree.KindComment:
		content, _ := n.Comment()
		parent.AppendChild(&html.Node{Type: html.CommentNode, Data: content})
	case tree.KindDoctype:
		name, attr, hasAttr := n.Doctype()
		dt := &html.Node{Type: html.DoctypeNode, Data: name}
		if hasAttr {
			dt.Attr = []html.Attribute{{Key: attr}}
		}
		parent.AppendChild(dt)
	case tree.KindElement:
		el := &html.Node{
			Type: html.ElementNode,
			Data: n.Tag().Name(),
			Attr: convertAttrs(n),
		}
		appendConverted(el, n.Child())
		parent.AppendChild(el)
	case tree.KindSequence:
		for _, sibling := range n.Sequence() {
			appendConverted(parent, sibling)
		}
	}
}

func convertAttrs(n *tree.Node) []html.Attribute {
	attrs := n.Tag().Attrs()
	if len(attrs) == 0 {
		return nil
	}
	converted := make([]html.Attribute, len(attrs))
	for i, a := range attrs {
		converted[i] = html.Attribute{Key: a.Key, Val: a.Value}
	}
	return converted
}

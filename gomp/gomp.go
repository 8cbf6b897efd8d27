/*
Package gomp lowers markup trees to gomponents nodes.

gomponents (maragu.dev/gomponents) is a library for writing HTML as plain
Go code. Lowering a parsed tree produces a gomponents node that renders
equivalent HTML, which lets parsed fragments be spliced into
programmatically built pages.

Lowering is not byte-exact: gomponents decides rendering details like void
elements and attribute quoting itself. For exact round-tripping use
tree.Render.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gomp

import (
	"github.com/npillmayer/htmltree/tree"
	g "maragu.dev/gomponents"
)

// Lower converts a markup tree into a gomponents node. Empty trees lower
// to nil, which gomponents treats as "render nothing".
func Lower(root *tree.Node) g.Node {
	if root == nil {
		return nil
	}
	switch root.Kind() {
	case tree.KindEmpty:
		return nil
	case tree.KindText:
		return g.Text(root.Text())
	case tree.KindComment:
		content, full := root.Comment()
		if full {
			return g.Raw("<!--" + content + "-->")
		}
		return g.Raw("<!--" + content)
	case tree.KindDoctype:
		return g.Raw(root.Render())
	case tree.KindElement:
		return lowerElement(root)
	case tree.KindSequence:
		children := make([]g.Node, 0, len(root.Sequence()))
		for _, el := range root.Sequence() {
			if n := Lower(el); n != nil {
				children = append(children, n)
			}
		}
		return g.Group(children)
	}
	return nil
}

func lowerElement(el *tree.Node) g.Node {
	var args []g.Node
	for _, a := range el.Tag().Attrs() {
		if a.Valued {
			args = append(args, g.Attr(a.Key, a.Value))
		} else {
			args = append(args, g.Attr(a.Key))
		}
	}
	if child := Lower(el.Child()); child != nil {
		args = append(args, child)
	}
	return g.El(el.Tag().Name(), args...)
}

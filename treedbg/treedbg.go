/*
Package treedbg implements helpers to debug a markup tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treedbg

import (
	"fmt"
	"io"

	"github.com/npillmayer/htmltree/tree"
	tp "github.com/xlab/treeprint"
)

// Print returns an ASCII diagram of a markup tree, one branch per element
// subtree and sequence. Intended for test logs and debugging sessions.
func Print(root *tree.Node) string {
	p := tp.New()
	appendNode(p, root)
	return p.String()
}

// Dump writes the diagram for a markup tree to w.
func Dump(w io.Writer, root *tree.Node) error {
	_, err := io.WriteString(w, Print(root))
	return err
}

func appendNode(p tp.Tree, n *tree.Node) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case tree.KindEmpty:
		p.AddNode("·")
	case tree.KindText:
		p.AddNode(fmt.Sprintf("%q", n.Text()))
	case tree.KindComment:
		content, full := n.Comment()
		state := "open"
		if full {
			state = "full"
		}
		p.AddNode(fmt.Sprintf("comment(%s) %q", state, content))
	case tree.KindDoctype:
		name, attr, hasAttr := n.Doctype()
		if hasAttr {
			p.AddNode(fmt.Sprintf("<!%s %s>", name, attr))
		} else {
			p.AddNode(fmt.Sprintf("<!%s>", name))
		}
	case tree.KindElement:
		label := fmt.Sprintf("<%s> %s", n.Tag().Name(), n.Status())
		if ch := n.Child(); ch != nil && !ch.IsEmpty() {
			branch := p.AddBranch(label)
			appendNode(branch, ch)
		} else {
			p.AddNode(label)
		}
	case tree.KindSequence:
		branch := p.AddBranch(fmt.Sprintf("seq(%d)", len(n.Sequence())))
		for _, el := range n.Sequence() {
			appendNode(branch, el)
		}
	}
}

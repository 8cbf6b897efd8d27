package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Render serializes the tree back to markup text. For trees built from
// well-formed input this is the exact inverse of parsing: the output equals
// the input byte for byte. Elements still open render without a closing
// tag, comments still open render without the terminating '-->'.
func (n *Node) Render() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	switch n.kind {
	case KindEmpty:
		// nothing
	case KindText:
		b.Write(n.text)
	case KindComment:
		b.WriteString("<!--")
		b.Write(n.text)
		if n.full {
			b.WriteString("-->")
		}
	case KindDoctype:
		b.WriteString("<!")
		b.WriteString(n.name)
		if n.hasAtt {
			b.WriteByte(' ')
			b.WriteString(n.attr)
		} else if n.name != "" {
			b.WriteByte(' ')
		}
		b.WriteByte('>')
	case KindElement:
		switch n.status {
		case SelfClosing:
			// child is empty for self-closing elements, nothing to render
			b.WriteByte('<')
			b.WriteString(n.tag.String())
			b.WriteString(" />")
		case Opened:
			b.WriteByte('<')
			b.WriteString(n.tag.String())
			b.WriteByte('>')
			n.child.render(b)
		case Closed:
			b.WriteByte('<')
			b.WriteString(n.tag.String())
			b.WriteByte('>')
			n.child.render(b)
			b.WriteString("</")
			b.WriteString(n.tag.Name())
			b.WriteByte('>')
		}
	case KindSequence:
		for _, el := range n.seq {
			el.render(b)
		}
	default:
		panic(corrupt("unknown node kind in render"))
	}
}

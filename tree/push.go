package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"unicode/utf8"

	"github.com/npillmayer/htmltree/tag"
)

func appendRune(b []byte, ch rune) []byte {
	return utf8.AppendRune(b, ch)
}

// PushChar feeds one character of raw text into the tree. The character is
// appended at the end of the fringe: inside the innermost open element or
// open comment, extending a text run if one is already there, and starting
// a new sibling if the node at the insertion point cannot take more content.
func (n *Node) PushChar(ch rune) {
	switch n.kind {
	case KindEmpty:
		*n = *textNode(ch)
	case KindElement:
		if n.status == Opened {
			n.child.PushChar(ch)
			return
		}
		// closed or self-closing: start a sibling text run
		n.spawnSibling(textNode(ch))
	case KindDoctype:
		n.spawnSibling(textNode(ch))
	case KindText:
		n.text = appendRune(n.text, ch)
	case KindComment:
		if n.full {
			n.spawnSibling(textNode(ch))
		} else {
			n.text = appendRune(n.text, ch)
		}
	case KindSequence:
		last := n.lastInSequence()
		if last.pushable(true) {
			last.PushChar(ch)
			return
		}
		n.seq = append(n.seq, textNode(ch))
	default:
		panic(corrupt("unknown node kind in PushChar"))
	}
}

// PushTag inserts a new element for an opening tag at the end of the fringe.
// With inline set the element is self-closing and never becomes part of the
// fringe itself.
func (n *Node) PushTag(t tag.Tag, inline bool) {
	tracer().Debugf("push tag <%s>, inline=%v", t.Name(), inline)
	n.pushNode(elementNode(t, inline))
}

// PushDoctype inserts a document declaration at the end of the fringe.
// A declaration is always a leaf: it has no children and no notion of
// being open. hasAttr distinguishes `<!name >` from `<!name attr>`.
func (n *Node) PushDoctype(name, attr string, hasAttr bool) {
	n.pushNode(doctypeNode(name, attr, hasAttr))
}

// PushComment starts a new comment at the end of the fringe. The comment
// collects subsequent characters until CloseComment terminates it.
//
// The driver must not start a comment while another one is open; doing so
// violates the fringe invariant and panics with ErrInternal.
func (n *Node) PushComment() {
	n.pushNode(commentNode())
}

// pushNode inserts a fresh node at the end of the fringe. Inert nodes at
// the insertion point are wrapped into a sequence together with the
// newcomer (sequence promotion).
func (n *Node) pushNode(node *Node) {
	switch n.kind {
	case KindEmpty:
		*n = *node
	case KindElement:
		if n.status == Opened {
			n.child.pushNode(node)
			return
		}
		n.spawnSibling(node)
	case KindText, KindDoctype:
		n.spawnSibling(node)
	case KindComment:
		if !n.full {
			// the driver must close the running comment first
			panic(corrupt("node pushed into an open comment"))
		}
		n.spawnSibling(node)
	case KindSequence:
		last := n.lastInSequence()
		if last.pushable(false) {
			last.pushNode(node)
			return
		}
		n.seq = append(n.seq, node)
	default:
		panic(corrupt("unknown node kind in pushNode"))
	}
}

// pushable checks whether a node at the end of a sequence still accepts
// content, i.e. whether the fringe continues into it. Text runs accept
// further characters but no nodes, hence the isChar distinction.
func (n *Node) pushable(isChar bool) bool {
	switch n.kind {
	case KindElement:
		return n.status == Opened
	case KindText:
		return isChar
	case KindComment:
		return !n.full
	case KindDoctype:
		return false
	}
	// sequences are flattened and empties never stored, so neither can be
	// an element of a sequence
	panic(corrupt("sequence contains " + n.kind.String() + " node"))
}

func (n *Node) lastInSequence() *Node {
	if len(n.seq) == 0 {
		panic(corrupt("sequence with no elements"))
	}
	return n.seq[len(n.seq)-1]
}

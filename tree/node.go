package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/htmltree/tag"
)

/*
We manage a tree of mutable nodes. A node is one of six shapes, discriminated
by a kind tag. Child links are exclusively owned: every subtree has exactly
one parent slot referencing it, and replacing a slot's content always
overwrites the slot in the same step that moves the old value out. This is
what lets the mutation operations recover the insertion point by recursion
instead of keeping an open-element stack.
*/

// Kind discriminates the six shapes a tree node can take.
type Kind int8

const (
	KindEmpty    Kind = iota // neutral state; a freshly created node
	KindText                 // a run of raw character data
	KindComment              // an in-progress or terminated comment
	KindDoctype              // a document declaration like <!doctype html>
	KindElement              // a markup element with a subtree
	KindSequence             // two or more siblings at the same level
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindDoctype:
		return "Doctype"
	case KindElement:
		return "Element"
	case KindSequence:
		return "Sequence"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Status is the lifecycle state of an element node. It controls whether the
// element can still receive children and whether the fringe descends into it.
type Status int8

const (
	Opened      Status = iota // start tag seen, no end tag yet; accepts children
	Closed                    // end tag seen; inert
	SelfClosing               // <tag />; inert from the start, child always empty
)

func (s Status) String() string {
	switch s {
	case Opened:
		return "open"
	case Closed:
		return "closed"
	case SelfClosing:
		return "self-closing"
	}
	return fmt.Sprintf("Status(%d)", int8(s))
}

// ErrInternal marks states that cannot be reached as long as the driver
// upholds its contract (e.g. opening a comment while one is already open).
// The mutation operations panic with an error wrapping ErrInternal when they
// find such a state; this is a programming fault, never a parse error.
var ErrInternal = errors.New("markup tree invariant violated")

func corrupt(msg string) error {
	return fmt.Errorf("%w: %s", ErrInternal, msg)
}

// Node is the building block of the markup tree. The zero value is an
// empty tree, ready to receive events.
type Node struct {
	kind   Kind
	text   []byte     // Text content, or comment content
	full   bool       // comment terminated?
	name   string     // doctype name
	attr   string     // doctype attribute, "" if absent
	hasAtt bool       // doctype attribute present? (distinguishes <!n > from <!n "">)
	tag    tag.Tag    // element tag value
	status Status     // element lifecycle state
	child  *Node      // element subtree; empty unless status permits content
	seq    []*Node    // sequence elements, always ≥ 2
}

// New creates an empty tree.
func New() *Node {
	return &Node{}
}

func textNode(ch rune) *Node {
	n := &Node{kind: KindText}
	n.text = appendRune(n.text, ch)
	return n
}

func doctypeNode(name, attr string, hasAttr bool) *Node {
	return &Node{kind: KindDoctype, name: name, attr: attr, hasAtt: hasAttr}
}

func elementNode(t tag.Tag, inline bool) *Node {
	status := Opened
	if inline {
		status = SelfClosing
	}
	return &Node{kind: KindElement, tag: t, status: status, child: &Node{}}
}

func commentNode() *Node {
	return &Node{kind: KindComment}
}

// Kind returns the node's shape.
func (n *Node) Kind() Kind {
	return n.kind
}

// Text returns the content of a Text node or the accumulated content of a
// Comment node. It is empty for all other kinds.
func (n *Node) Text() string {
	return string(n.text)
}

// Comment returns the content of a comment node and whether its terminating
// '-->' has been seen.
func (n *Node) Comment() (content string, full bool) {
	return string(n.text), n.full
}

// Doctype returns the declaration's name and attribute. hasAttr reports
// whether an attribute was present at all.
func (n *Node) Doctype() (name, attr string, hasAttr bool) {
	return n.name, n.attr, n.hasAtt
}

// Tag returns the tag value of an element node.
func (n *Node) Tag() tag.Tag {
	return n.tag
}

// Status returns the lifecycle state of an element node.
func (n *Node) Status() Status {
	return n.status
}

// Child returns the subtree of an element node, or nil for other kinds.
func (n *Node) Child() *Node {
	if n.kind != KindElement {
		return nil
	}
	return n.child
}

// Sequence returns the elements of a sequence node, nil for other kinds.
// Callers must not modify the returned slice.
func (n *Node) Sequence() []*Node {
	return n.seq
}

// IsEmpty checks if a tree holds no content at all.
func (n *Node) IsEmpty() bool {
	if n.kind == KindSequence {
		return len(n.seq) == 0
	}
	return n.kind == KindEmpty
}

func (n *Node) String() string {
	return n.Render()
}

// spawnSibling moves the current node out of its slot and replaces the slot
// with a two-element sequence of the old content and sib. The old value is
// copied into a fresh node before the slot is overwritten, so no subtree is
// ever referenced from two places.
func (n *Node) spawnSibling(sib *Node) {
	prev := *n
	*n = Node{kind: KindSequence, seq: []*Node{&prev, sib}}
}

package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// ClosingError reports a closing tag that could not be matched against the
// innermost open element. Open is the name of the element that was actually
// open, or "" if no element was open at all.
type ClosingError struct {
	Name string // name in the offending closing tag
	Open string // name of the innermost open element, "" if none
}

func (e *ClosingError) Error() string {
	if e.Open == "" {
		return fmt.Sprintf("invalid closing tag: found closing tag for '%s' but no tag is open", e.Name)
	}
	return fmt.Sprintf("invalid closing tag: found closing tag for '%s' but '%s' is open", e.Name, e.Open)
}

// CloseComment terminates the comment at the end of the fringe. It reports
// whether a comment was actually closed; closing when no open comment is
// there is not an error, since the driver uses the outcome as a probe.
func (n *Node) CloseComment() bool {
	switch n.kind {
	case KindComment:
		if n.full {
			return false
		}
		n.full = true
		return true
	case KindElement:
		return n.status == Opened && n.child.CloseComment()
	case KindSequence:
		if len(n.seq) == 0 {
			return false
		}
		return n.seq[len(n.seq)-1].CloseComment()
	case KindEmpty, KindText, KindDoctype:
		return false
	}
	panic(corrupt("unknown node kind in CloseComment"))
}

// closeOutcome is the result of resolving a closing tag against the fringe.
type closeOutcome int8

const (
	closedTag closeOutcome = iota
	noOpenTag
	wrongName
)

// CloseTag closes the innermost open element if its name matches. On
// mismatch the tree is left untouched and a *ClosingError describes which
// element was open instead; closing with nothing open is an error as well.
func (n *Node) CloseTag(name string) error {
	outcome, open := n.closeTag(name)
	switch outcome {
	case closedTag:
		return nil
	case wrongName:
		tracer().Debugf("closing tag </%s> does not match open <%s>", name, open)
		return &ClosingError{Name: name, Open: open}
	}
	return &ClosingError{Name: name}
}

// closeTag descends the fringe for the innermost open element. The deepest
// recursive call that still finds an open element is the only one allowed
// to match or complain; outer elements pass inner outcomes through
// unchanged, so a mismatch never closes an enclosing element.
func (n *Node) closeTag(name string) (closeOutcome, string) {
	switch n.kind {
	case KindElement:
		if n.status != Opened {
			return noOpenTag, ""
		}
		if outcome, open := n.child.closeTag(name); outcome != noOpenTag {
			return outcome, open
		}
		// no deeper open element: this one is the innermost
		if n.tag.Name() == name {
			n.status = Closed
			return closedTag, ""
		}
		return wrongName, n.tag.Name()
	case KindSequence:
		if len(n.seq) == 0 {
			return noOpenTag, ""
		}
		return n.seq[len(n.seq)-1].closeTag(name)
	}
	return noOpenTag, ""
}

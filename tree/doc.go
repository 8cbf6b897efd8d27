/*
Package tree implements an incrementally built markup tree.

Overview

A Node is fed one structural event at a time — a character, a tag open, a
tag close, a comment open, a comment close — by an external driver (the
tokenizer in the root package). The tree never re-reads input and keeps no
explicit stack of open elements: the current insertion point is recovered
on every event by descending through open elements and the last element of
sibling sequences. This path is called the fringe, and the tree maintains
the invariant that at most one such path exists at any time.

Rendering a tree with String reproduces the original markup byte for byte
for well-formed input.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmltree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("htmltree.tree")
}

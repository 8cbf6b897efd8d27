/*
Package htmltree parses HTML-like markup into a tree of nodes.

Overview

The package splits into a thin event driver (this package) and the tree
itself (package tree). Parse scans its input exactly once, left to right,
and translates every character into one of five tree events: push a
character, open a tag, close a tag, open a comment, close a comment. The
tree locates the insertion point for each event on its own; the driver
keeps no state about nesting.

	root, err := htmltree.Parse(`<nav><ul><li href="first">First link</li></ul></nav>`)
	if err != nil { … }
	fmt.Println(root.Render()) // reproduces the input

Parsing does not validate HTML semantics: void elements, entities and
content models are not known to the parser, and malformed input is not
repaired. The only recoverable parse error is a closing tag that does not
match the innermost open element.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmltree.parse'.
func tracer() tracing.Trace {
	return tracing.Select("htmltree.parse")
}

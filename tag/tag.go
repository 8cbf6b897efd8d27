package tag

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Attr is a single attribute of an opening tag. Attributes are kept in
// source order and re-rendered in the exact form they were written in,
// so that serializing a parsed tag reproduces its input.
type Attr struct {
	Key    string
	Value  string
	Valued bool // distinguishes `key=""` from a bare `key`
	Quote  byte // quote character used in the source, '"' or '\''; 0 for an unquoted value
}

// NewAttr creates a double-quoted key/value attribute.
func NewAttr(key, value string) Attr {
	return Attr{Key: key, Value: value, Valued: true, Quote: '"'}
}

// Flag creates a value-less attribute, as in `<input disabled>`.
func Flag(key string) Attr {
	return Attr{Key: key}
}

// Tag is the value of an opening tag: a name plus an ordered list of
// attributes. A Tag is built once by the tokenizer and never modified
// afterwards; the tree only reads its name and renders it.
type Tag struct {
	name  string
	attrs []Attr
}

// New creates a tag value. The attribute slice is taken over by the tag
// and must not be mutated by the caller afterwards.
func New(name string, attrs ...Attr) Tag {
	return Tag{name: name, attrs: attrs}
}

// Name returns the tag's name. Closing-tag resolution compares names
// case-sensitively.
func (t Tag) Name() string {
	return t.name
}

// Attrs returns the tag's attributes in source order.
func (t Tag) Attrs() []Attr {
	return t.attrs
}

// String renders the interior of the opening tag, i.e. everything between
// '<' and '>' for a non-self-closing tag: the name, followed by the
// attributes separated by single spaces.
func (t Tag) String() string {
	var b strings.Builder
	b.WriteString(t.name)
	for _, a := range t.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		if a.Valued {
			b.WriteByte('=')
			if a.Quote != 0 {
				b.WriteByte(a.Quote)
			}
			b.WriteString(a.Value)
			if a.Quote != 0 {
				b.WriteByte(a.Quote)
			}
		}
	}
	return b.String()
}

package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/htmltree/tag"
	"github.com/npillmayer/htmltree/tree"
)

// ErrUnterminated is returned when the input ends inside a tag construct,
// i.e. after '<' of an opening or closing tag whose '>' never arrives.
// Unterminated comments are not an error: they stay open in the tree and
// render without their terminator.
var ErrUnterminated = errors.New("unexpected end of input inside tag")

// Parse builds a markup tree from input. The scan is a single left-to-right
// pass; each recognized construct is handed to the tree as one event.
//
// On error the returned tree holds everything parsed so far.
func Parse(input string) (*tree.Node, error) {
	p := &parser{input: input, root: tree.New()}
	err := p.run()
	return p.root, err
}

// parser is the event driver. pos always sits on the next byte to consume;
// consumed input is never revisited.
type parser struct {
	input     string
	pos       int
	root      *tree.Node
	inComment bool
}

func (p *parser) run() error {
	for p.pos < len(p.input) {
		if p.inComment {
			p.scanCommentContent()
			continue
		}
		rest := p.input[p.pos:]
		switch {
		case strings.HasPrefix(rest, "<!--"):
			tracer().Debugf("comment open at %d", p.pos)
			p.root.PushComment()
			p.inComment = true
			p.pos += len("<!--")
		case strings.HasPrefix(rest, "</"):
			if err := p.scanClosingTag(); err != nil {
				return err
			}
		case strings.HasPrefix(rest, "<!"):
			if err := p.scanDoctype(); err != nil {
				return err
			}
		case len(rest) >= 2 && rest[0] == '<' && isNameStart(rest[1]):
			if err := p.scanOpeningTag(); err != nil {
				return err
			}
		default:
			ch, size := utf8.DecodeRuneInString(rest)
			p.root.PushChar(ch)
			p.pos += size
		}
	}
	return nil
}

// scanCommentContent forwards characters into the open comment until the
// terminating '-->' is found or the input ends.
func (p *parser) scanCommentContent() {
	for p.pos < len(p.input) {
		if strings.HasPrefix(p.input[p.pos:], "-->") {
			p.root.CloseComment()
			p.inComment = false
			p.pos += len("-->")
			return
		}
		ch, size := utf8.DecodeRuneInString(p.input[p.pos:])
		p.root.PushChar(ch)
		p.pos += size
	}
	// input ended inside the comment; it stays open and renders as-is
}

// scanClosingTag consumes '</name>' and resolves it against the fringe.
func (p *parser) scanClosingTag() error {
	start := p.pos
	p.pos += len("</")
	name := p.scanName()
	if p.pos >= len(p.input) || p.input[p.pos] != '>' {
		return fmt.Errorf("offset %d: %w", start, ErrUnterminated)
	}
	p.pos++
	if err := p.root.CloseTag(name); err != nil {
		return fmt.Errorf("offset %d: %w", start, err)
	}
	return nil
}

// scanDoctype consumes a '<!name attr>' declaration. The attribute part is
// kept verbatim, so declarations render back byte for byte.
func (p *parser) scanDoctype() error {
	start := p.pos
	p.pos += len("<!")
	name := p.scanName()
	var attr string
	hasAttr := false
	if p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
		end := strings.IndexByte(p.input[p.pos:], '>')
		if end < 0 {
			return fmt.Errorf("offset %d: %w", start, ErrUnterminated)
		}
		attr = p.input[p.pos : p.pos+end]
		hasAttr = attr != ""
		p.pos += end
	}
	if p.pos >= len(p.input) || p.input[p.pos] != '>' {
		return fmt.Errorf("offset %d: %w", start, ErrUnterminated)
	}
	p.pos++
	tracer().Debugf("declaration <!%s> at %d", name, start)
	p.root.PushDoctype(name, attr, hasAttr)
	return nil
}

// scanOpeningTag consumes '<name …>' or '<name …/>', builds the tag value
// and pushes it into the tree.
func (p *parser) scanOpeningTag() error {
	start := p.pos
	p.pos++ // '<'
	name := p.scanName()
	var attrs []tag.Attr
	inline := false
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return fmt.Errorf("offset %d: %w", start, ErrUnterminated)
		}
		switch p.input[p.pos] {
		case '>':
			p.pos++
			p.root.PushTag(tag.New(name, attrs...), inline)
			return nil
		case '/':
			p.pos++
			inline = true
		default:
			a, err := p.scanAttr(start)
			if err != nil {
				return err
			}
			attrs = append(attrs, a)
		}
	}
}

// scanAttr consumes one attribute: a bare key, key=value, key="value" or
// key='value'. The quoting style is recorded so rendering reproduces it.
func (p *parser) scanAttr(start int) (tag.Attr, error) {
	key := p.scanName()
	if key == "" {
		// not a name character; a tag cannot continue here
		return tag.Attr{}, fmt.Errorf("offset %d: %w", p.pos, errBadAttr(p.input[p.pos]))
	}
	a := tag.Attr{Key: key}
	if p.pos >= len(p.input) || p.input[p.pos] != '=' {
		return a, nil // value-less attribute
	}
	p.pos++
	a.Valued = true
	if p.pos < len(p.input) && (p.input[p.pos] == '"' || p.input[p.pos] == '\'') {
		quote := p.input[p.pos]
		p.pos++
		end := strings.IndexByte(p.input[p.pos:], quote)
		if end < 0 {
			return a, fmt.Errorf("offset %d: %w", start, ErrUnterminated)
		}
		a.Quote = quote
		a.Value = p.input[p.pos : p.pos+end]
		p.pos += end + 1
		return a, nil
	}
	val := p.pos
	for p.pos < len(p.input) && !isSpace(p.input[p.pos]) &&
		p.input[p.pos] != '>' && p.input[p.pos] != '/' {
		p.pos++
	}
	a.Value = p.input[val:p.pos]
	return a, nil
}

func errBadAttr(b byte) error {
	return fmt.Errorf("unexpected character %q in tag", b)
}

// scanName consumes a run of name characters (letters, digits, '-', '_',
// ':' and '.').
func (p *parser) scanName() string {
	start := p.pos
	for p.pos < len(p.input) && isNameByte(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isNameStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func isNameByte(b byte) bool {
	return isNameStart(b) || b >= '0' && b <= '9' || b == '-' || b == ':' || b == '.'
}

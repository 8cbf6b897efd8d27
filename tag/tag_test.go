package tag_test

import (
	"testing"

	. "github.com/npillmayer/htmltree/tag"
)

func TestTagNameOnly(t *testing.T) {
	d := New("div")
	if d.Name() != "div" {
		t.Errorf("expected name to be 'div', is %q", d.Name())
	}
	if d.String() != "div" {
		t.Errorf("expected display to be 'div', is %q", d.String())
	}
}

func TestTagWithAttributes(t *testing.T) {
	a := New("a", NewAttr("href", "https://example.org"), Flag("download"))
	want := `a href="https://example.org" download`
	if a.String() != want {
		t.Errorf("expected display to be %q, is %q", want, a.String())
	}
}

func TestAttrQuoteStylesPreserved(t *testing.T) {
	cases := []struct {
		attr Attr
		want string
	}{
		{Attr{Key: "id", Value: "x", Valued: true, Quote: '"'}, `input id="x"`},
		{Attr{Key: "id", Value: "x", Valued: true, Quote: '\''}, `input id='x'`},
		{Attr{Key: "id", Value: "x", Valued: true}, `input id=x`},
		{Attr{Key: "id", Value: "", Valued: true, Quote: '"'}, `input id=""`},
		{Attr{Key: "id"}, `input id`},
	}
	for _, c := range cases {
		got := New("input", c.attr).String()
		if got != c.want {
			t.Errorf("expected display to be %q, is %q", c.want, got)
		}
	}
}

func TestAttrOrderIsStable(t *testing.T) {
	tg := New("div", NewAttr("b", "2"), NewAttr("a", "1"), NewAttr("c", "3"))
	want := `div b="2" a="1" c="3"`
	if tg.String() != want {
		t.Errorf("expected attributes in source order, got %q", tg.String())
	}
}

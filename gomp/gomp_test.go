package gomp_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/gomp"
	"github.com/stretchr/testify/require"
)

func renderLowered(t *testing.T, input string) string {
	t.Helper()
	root, err := htmltree.Parse(input)
	require.NoError(t, err)
	node := gomp.Lower(root)
	require.NotNil(t, node)
	var b strings.Builder
	require.NoError(t, node.Render(&b))
	return b.String()
}

func TestLowerElementTree(t *testing.T) {
	got := renderLowered(t, `<div id="x"><span>hi</span></div>`)
	require.Equal(t, `<div id="x"><span>hi</span></div>`, got)
}

func TestLowerSequence(t *testing.T) {
	got := renderLowered(t, "a<strong>b</strong>c")
	require.Equal(t, "a<strong>b</strong>c", got)
}

func TestLowerComment(t *testing.T) {
	got := renderLowered(t, "<!--note-->")
	require.Equal(t, "<!--note-->", got)
}

func TestLowerDoctype(t *testing.T) {
	got := renderLowered(t, "<!doctype html>x")
	require.Equal(t, "<!doctype html>x", got)
}

func TestLowerEmptyTree(t *testing.T) {
	root, err := htmltree.Parse("")
	require.NoError(t, err)
	require.Nil(t, gomp.Lower(root), "empty tree should lower to nil")
}

func TestLowerTextIsEscaped(t *testing.T) {
	// gomponents escapes text content; lowering is equivalent HTML, not a
	// byte-exact copy
	got := renderLowered(t, "<p>a & b</p>")
	require.Equal(t, "<p>a &amp; b</p>", got)
}

package treedbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/htmltree"
	"github.com/npillmayer/htmltree/treedbg"
)

func TestPrintContainsAllNodes(t *testing.T) {
	root, err := htmltree.Parse(`<!doctype html><div id="x"><!--note-->hi</div>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	diagram := treedbg.Print(root)
	t.Logf("tree =\n%s", diagram)
	for _, want := range []string{"<!doctype html>", "<div>", "comment(full)", `"hi"`} {
		if !strings.Contains(diagram, want) {
			t.Errorf("expected diagram to contain %q, hasn't:\n%s", want, diagram)
		}
	}
}

func TestDumpWritesDiagram(t *testing.T) {
	root, err := htmltree.Parse("<p>x</p>")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var b strings.Builder
	if err := treedbg.Dump(&b, root); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if b.String() != treedbg.Print(root) {
		t.Error("expected Dump to write the same diagram Print returns, didn't")
	}
}

package sexp

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseCall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.sexp")
	defer teardown()
	//
	root, err := Parse("(send nil :foo)")
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	if root.Type() != "send" || len(root.Children()) != 2 {
		t.Fatalf("expected send node with 2 children, got %s", root.String())
	}
	if root.Children()[0].Type() != "nil" {
		t.Errorf("first child should be nil node, is %s", root.Children()[0].Type())
	}
	sym := root.Children()[1]
	if sym.Type() != "symbol" || sym.Value() != "foo" {
		t.Errorf("second child should be symbol foo, is %s", sym.(*TreeNode).String())
	}
}

func TestParseSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.sexp")
	defer teardown()
	//
	root, err := Parse("(send nil :foo)")
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	if root.Span().From() != 0 || root.Span().To() != 15 {
		t.Errorf("root should span (0…15), spans %v", root.Span())
	}
	nilNode := root.Children()[0]
	if nilNode.Span().From() != 6 || nilNode.Span().To() != 9 {
		t.Errorf("nil node should span (6…9), spans %v", nilNode.Span())
	}
	sym := root.Children()[1]
	if sym.Span().From() != 10 || sym.Span().To() != 14 {
		t.Errorf("symbol should span (10…14), spans %v", sym.Span())
	}
}

func TestParseLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.sexp")
	defer teardown()
	//
	root, err := Parse("(array 1 2)")
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	if len(root.Children()) != 2 {
		t.Fatalf("expected 2 children, got %s", root.String())
	}
	one := root.Children()[0]
	if one.Type() != "int" || one.Value() != int64(1) {
		t.Errorf("expected int leaf 1, got %s", one.(*TreeNode).String())
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.sexp")
	defer teardown()
	//
	for _, input := range []string{"", "(send", "(send nil))", "(:foo)", ": foo extra)"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("parsing \"%s\" should fail", input)
		}
	}
}

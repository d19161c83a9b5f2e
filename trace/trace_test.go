package trace

import (
	"testing"

	"github.com/npillmayer/treepat"
)

type stubNode struct {
	typ string
}

func (n *stubNode) Type() string             { return n.typ }
func (n *stubNode) Value() interface{}       { return nil }
func (n *stubNode) Children() []treepat.Node { return nil }
func (n *stubNode) Span() treepat.Span       { return treepat.Span{} }

func TestStatusTransitions(t *testing.T) {
	tr := New()
	if tr.StatusOf(0) != NotVisited {
		t.Errorf("fresh trace should report NotVisited, reports %s", tr.StatusOf(0))
	}
	if !tr.Enter(0, nil) {
		t.Errorf("Enter must always return true")
	}
	if tr.StatusOf(0) != Failed {
		t.Errorf("entered position should report failed, reports %s", tr.StatusOf(0))
	}
	tr.Success(0)
	if tr.StatusOf(0) != Matched {
		t.Errorf("succeeded position should report matched, reports %s", tr.StatusOf(0))
	}
	if tr.StatusOf(1) != NotVisited {
		t.Errorf("untouched position should report NotVisited")
	}
	if tr.Len() != 1 {
		t.Errorf("trace should hold 1 entry, holds %d", tr.Len())
	}
}

func TestFirstBindingWins(t *testing.T) {
	tr := New()
	n := &stubNode{typ: "send"}
	tr.Enter(0, n) // outer pattern position examines n first
	tr.Enter(1, n) // inner position examines the same node
	id, ok := tr.At(n)
	if !ok {
		t.Fatalf("node should be bound to a pattern position")
	}
	if id != 0 {
		t.Errorf("node should stay bound to the outermost position 0, is bound to %d", id)
	}
}

func TestUnboundNode(t *testing.T) {
	tr := New()
	if _, ok := tr.At(&stubNode{typ: "str"}); ok {
		t.Errorf("unexamined node must not resolve to a pattern position")
	}
}

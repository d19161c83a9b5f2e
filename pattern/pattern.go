package pattern

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"

	"github.com/npillmayer/treepat"
)

// Type tags of pattern-tree nodes, as produced by the parser. The compiler's
// registry dispatches on these.
const (
	TagSequence  = "sequence"  // (head …)
	TagType      = "type"      // bare identifier, matches a node-type tag
	TagSymbol    = "symbol"    // :sym
	TagWildcard  = "wildcard"  // _
	TagPredicate = "predicate" // name?
	TagCapture   = "capture"   // $…
	TagUnion     = "union"     // {…}
)

// Node is a node of a pattern tree. It carries a type tag, an optional text
// payload (the identifier for type, symbol and predicate constructs) and an
// ordered list of children. Span locates the construct in the pattern source.
//
// Nodes are immutable once parsed.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
	Span     treepat.Span
}

// String returns a re-rendering of the pattern in DSL syntax.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b bytes.Buffer
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *bytes.Buffer) {
	switch n.Tag {
	case TagSequence, TagUnion:
		open, close := "(", ")"
		if n.Tag == TagUnion {
			open, close = "{", "}"
		}
		b.WriteString(open)
		for i, ch := range n.Children {
			if i > 0 {
				b.WriteString(" ")
			}
			ch.write(b)
		}
		b.WriteString(close)
	case TagCapture:
		b.WriteString("$")
		n.Children[0].write(b)
	case TagWildcard:
		b.WriteString("_")
	case TagSymbol:
		b.WriteString(":" + n.Text)
	case TagPredicate:
		b.WriteString(n.Text + "?")
	default:
		b.WriteString(n.Text)
	}
}

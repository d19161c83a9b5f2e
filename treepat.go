package treepat

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// TokTypeStringer is a type to be provided by a scanner to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language, here most prominently the pattern DSL.
//
// An example would be a token for a symbol literal:
//
//    TokType = Symbol      // identifier for this kind of tokens
//    Lexeme  = ":foo"      // lexeme how it appeared in the input stream
//    Value   = "foo"       // payload without the colon
//    Span    = 10…14       // occured from position 10 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. Every node of an
// analyzed tree tracks which input positions it covers. A span denotes a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Analyzed trees ---------------------------------------------------

// Node is the interface for nodes of an analyzed tree, i.e. the concrete data
// a compiled pattern is matched against. Analyzed trees are produced by
// collaborating parsers (see package sexp for a simple one); this module only
// reads them.
//
// Implementations should use pointer receivers: matching and tracing rely on
// node values being comparable, as nodes are used as map keys.
type Node interface {
	Type() string         // node type tag, e.g. "send"
	Value() interface{}   // payload for leaf nodes, or nil
	Children() []Node     // ordered child nodes, possibly empty
	Span() Span           // character range in the analyzed source
}

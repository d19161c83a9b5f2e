/*
Package sexp produces analyzed trees from s-expression input.

Pattern matching in treepat runs against trees implementing treepat.Node.
Real embedders supply trees produced by their own parsers; for tests and the
debugging CLI this package parses a small s-expression form into such a tree,
with every node carrying its byte span over the input text:

    (send nil :foo)

is a "send" node with a "nil" node and a symbol node as children.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sexp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treepat"
	"github.com/npillmayer/treepat/scanner"
)

// tracer traces with key 'treepat.sexp'.
func tracer() tracing.Trace {
	return tracing.Select("treepat.sexp")
}

// TreeNode is a node of an analyzed tree produced from s-expression input.
type TreeNode struct {
	typ      string
	value    interface{}
	children []treepat.Node
	span     treepat.Span
}

var _ treepat.Node = (*TreeNode)(nil)

// Type is part of the treepat.Node interface.
func (n *TreeNode) Type() string {
	return n.typ
}

// Value is part of the treepat.Node interface.
func (n *TreeNode) Value() interface{} {
	return n.value
}

// Children is part of the treepat.Node interface.
func (n *TreeNode) Children() []treepat.Node {
	return n.children
}

// Span is part of the treepat.Node interface.
func (n *TreeNode) Span() treepat.Span {
	return n.span
}

func (n *TreeNode) String() string {
	if len(n.children) == 0 {
		if n.value != nil {
			return fmt.Sprintf("%s=%v", n.typ, n.value)
		}
		return n.typ
	}
	var b strings.Builder
	b.WriteString("(" + n.typ)
	for _, ch := range n.children {
		b.WriteString(" " + ch.(*TreeNode).String())
	}
	b.WriteString(")")
	return b.String()
}

// Parse parses s-expression input into an analyzed tree.
func Parse(input string) (*TreeNode, error) {
	t := scanner.GoTokenizer("sexp", strings.NewReader(input), scanner.SkipComments(true))
	var toks []treepat.Token
	for {
		tok := t.NextToken()
		if int(tok.TokType()) == scanner.EOF {
			break
		}
		toks = append(toks, tok)
	}
	p := &parser{toks: toks}
	n, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("trailing input after expression at %v", p.toks[p.pos].Span())
	}
	tracer().Debugf("parsed input %s", n.String())
	return n, nil
}

type parser struct {
	toks []treepat.Token
	pos  int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) next() (treepat.Token, error) {
	if p.atEnd() {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok, nil
}

func (p *parser) peekType() int {
	if p.atEnd() {
		return scanner.EOF
	}
	return int(p.toks[p.pos].TokType())
}

func (p *parser) parseNode() (*TreeNode, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch int(tok.TokType()) {
	case '(':
		return p.parseList(tok)
	case ':':
		ident, err := p.next()
		if err != nil || int(ident.TokType()) != scanner.Ident {
			return nil, fmt.Errorf("expected identifier after ':' at %v", tok.Span())
		}
		return &TreeNode{
			typ:   "symbol",
			value: ident.Lexeme(),
			span:  tok.Span().Extend(ident.Span()),
		}, nil
	case scanner.Int:
		v, err := strconv.ParseInt(tok.Lexeme(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed integer '%s' at %v", tok.Lexeme(), tok.Span())
		}
		return &TreeNode{typ: "int", value: v, span: tok.Span()}, nil
	case scanner.Ident:
		// bare identifiers are leaf nodes of that type, e.g. nil
		return &TreeNode{typ: tok.Lexeme(), span: tok.Span()}, nil
	}
	return nil, fmt.Errorf("unexpected token '%s' at %v", tok.Lexeme(), tok.Span())
}

// parseList parses the tail of a list node, '(' already consumed. The first
// element names the node type, the remaining elements are the children.
func (p *parser) parseList(open treepat.Token) (*TreeNode, error) {
	head, err := p.next()
	if err != nil || int(head.TokType()) != scanner.Ident {
		return nil, fmt.Errorf("expected node type after '(' at %v", open.Span())
	}
	node := &TreeNode{typ: head.Lexeme(), span: open.Span()}
	for p.peekType() != ')' {
		if p.atEnd() {
			return nil, fmt.Errorf("missing ')' for list at %v", open.Span())
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		node.children = append(node.children, child)
	}
	closeTok, _ := p.next()
	node.span = node.span.Extend(closeTok.Span())
	return node, nil
}

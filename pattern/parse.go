package pattern

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/treepat"
)

// The pattern DSL is a fixed regular-ish surface, small enough for a
// hand-written recursive descent parser:
//
//   Term      ::=  Sequence  |  Union  |  Capture  |  Leaf
//   Sequence  ::=  '(' Term+ ')'
//   Union     ::=  '{' Term+ '}'
//   Capture   ::=  '$' Term
//   Leaf      ::=  ident  |  symbol  |  predicate  |  '_'
//
// Parse parses pattern source into a pattern tree. The tree is fed to
// compile.Compiler; Parse itself performs no semantic checks beyond syntax.
func Parse(input string) (*Node, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("trailing input after pattern at %v", p.toks[p.pos].Span())
	}
	tracer().Debugf("parsed pattern %s", n.String())
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
		return nil, fmt.Errorf("unexpected end of pattern")
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok, nil
}

// peekType returns the token type of the upcoming token, or EOF (-1).
func (p *parser) peekType() int {
	if p.atEnd() {
		return -1
	}
	return int(p.toks[p.pos].TokType())
}

func (p *parser) parseTerm() (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch int(tok.TokType()) {
	case TokenID("("):
		return p.parseGroup(TagSequence, ")", tok)
	case TokenID("{"):
		return p.parseGroup(TagUnion, "}", tok)
	case TokenID("$"):
		sub, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &Node{
			Tag:      TagCapture,
			Children: []*Node{sub},
			Span:     tok.Span().Extend(sub.Span),
		}, nil
	case TokenID("_"):
		return &Node{Tag: TagWildcard, Span: tok.Span()}, nil
	case TokenID("SYMBOL"):
		return &Node{Tag: TagSymbol, Text: tok.Lexeme()[1:], Span: tok.Span()}, nil
	case TokenID("PRED"):
		text := tok.Lexeme()
		return &Node{Tag: TagPredicate, Text: text[:len(text)-1], Span: tok.Span()}, nil
	case TokenID("ID"):
		return &Node{Tag: TagType, Text: tok.Lexeme(), Span: tok.Span()}, nil
	}
	return nil, fmt.Errorf("unexpected token '%s' at %v", tok.Lexeme(), tok.Span())
}

// parseGroup parses the tail of a sequence or union, open already consumed.
func (p *parser) parseGroup(tag string, close string, open treepat.Token) (*Node, error) {
	group := &Node{Tag: tag, Span: open.Span()}
	for p.peekType() != TokenID(close) {
		sub, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		group.Children = append(group.Children, sub)
	}
	closeTok, _ := p.next() // cannot fail, peekType saw it
	if len(group.Children) == 0 {
		return nil, fmt.Errorf("empty %s at %v", tag, open.Span())
	}
	group.Span = group.Span.Extend(closeTok.Span())
	return group, nil
}

package compile

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/treepat"
	"github.com/npillmayer/treepat/pattern"
)

// CoreRegistry returns a registry for the standard construct catalogue.
// Specialized compilers derive from it with Registry.Extend.
func CoreRegistry() *Registry {
	r := NewRegistry()
	r.Register(pattern.TagSequence, compileSequence)
	r.Register(pattern.TagType, compileType)
	r.Register(pattern.TagSymbol, compileSymbol)
	r.Register(pattern.TagWildcard, compileWildcard)
	r.Register(pattern.TagPredicate, compilePredicate)
	r.Register(pattern.TagCapture, compileCapture)
	r.Register(pattern.TagUnion, compileUnion)
	return r
}

// A sequence (head t1 … tk) matches a node n if head matches n itself and
// t1 … tk match n's children pairwise. Arity is exact: k must equal the
// number of children.
//
// The head is compiled with a derived registry which rejects captures and
// predicates: head position constrains the node's type, not its children.
func compileSequence(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error) {
	headReg := c.reg.Extend()
	headReg.Register(pattern.TagCapture, headPosition)
	headReg.Register(pattern.TagPredicate, headPosition)
	head, err := c.fork(headReg).CompileNode(ctx, pat.Children[0])
	if err != nil {
		return nil, err
	}
	tail := make([]Fragment, 0, len(pat.Children)-1)
	for _, ch := range pat.Children[1:] {
		frag, err := c.CompileNode(ctx, ch)
		if err != nil {
			return nil, err
		}
		tail = append(tail, frag)
	}
	return func(m *Matching, n treepat.Node) bool {
		if n == nil || !head(m, n) {
			return false
		}
		children := n.Children()
		if len(children) != len(tail) {
			return false
		}
		for i, frag := range tail {
			if !frag(m, children[i]) {
				return false
			}
		}
		return true
	}, nil
}

func headPosition(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error) {
	return nil, fmt.Errorf("%s not allowed in head position at %v", pat.Tag, pat.Span)
}

// A type literal matches any node carrying that type tag.
func compileType(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error) {
	want := pat.Text
	return func(m *Matching, n treepat.Node) bool {
		return n != nil && n.Type() == want
	}, nil
}

// A symbol literal :sym matches a symbol node with payload "sym".
func compileSymbol(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error) {
	want := pat.Text
	return func(m *Matching, n treepat.Node) bool {
		if n == nil || n.Type() != "symbol" {
			return false
		}
		s, ok := n.Value().(string)
		return ok && s == want
	}, nil
}

// A wildcard matches any present node.
func compileWildcard(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error) {
	return func(m *Matching, n treepat.Node) bool {
		return n != nil
	}, nil
}

// The predicate catalogue. Predicates test a node without descending.
var predicates = map[string]func(n treepat.Node) bool{
	"nil": func(n treepat.Node) bool {
		return n == nil || n.Type() == "nil"
	},
}

func compilePredicate(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error) {
	pred, ok := predicates[pat.Text]
	if !ok {
		return nil, fmt.Errorf("unknown predicate %q? at %v", pat.Text, pat.Span)
	}
	return func(m *Matching, n treepat.Node) bool {
		return pred(n)
	}, nil
}

// A capture assigns its slot index at compile time, in pattern order, and
// fills the slot only after its sub-pattern has matched.
func compileCapture(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error) {
	slot := ctx.captures
	ctx.captures++
	sub, err := c.CompileNode(ctx, pat.Children[0])
	if err != nil {
		return nil, err
	}
	return func(m *Matching, n treepat.Node) bool {
		if !sub(m, n) {
			return false
		}
		m.Captures[slot] = n
		return true
	}, nil
}

// A union matches if any of its alternatives matches; alternatives are tried
// in pattern order.
func compileUnion(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error) {
	alts := make([]Fragment, 0, len(pat.Children))
	for _, ch := range pat.Children {
		frag, err := c.CompileNode(ctx, ch)
		if err != nil {
			return nil, err
		}
		alts = append(alts, frag)
	}
	return func(m *Matching, n treepat.Node) bool {
		for _, alt := range alts {
			if alt(m, n) {
				return true
			}
		}
		return false
	}, nil
}

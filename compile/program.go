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
	"github.com/npillmayer/treepat/trace"
)

// Named parameters of compiled programs.
const (
	ParamNode  = "node"  // the analyzed-tree node to match against
	ParamTrace = "trace" // a fresh *trace.Trace; debug programs only
)

// Args carries the named arguments of one program invocation.
type Args map[string]interface{}

// Result is the outcome of one program invocation. Captures is nil unless
// the match succeeded.
type Result struct {
	Matched  bool
	Captures []treepat.Node
}

// Program is a compiled matcher. Programs are read-only and safely shareable
// across concurrent invocations, as long as each invocation receives its own
// trace instance.
type Program struct {
	params   []string
	frag     Fragment
	captures int
	pat      *pattern.Node
}

// Params returns the declared named parameters the program must be invoked
// with: ParamNode, plus ParamTrace for debug-compiled programs.
func (p *Program) Params() []string {
	params := make([]string, len(p.params))
	copy(params, p.params)
	return params
}

// Pattern returns the pattern tree the program was compiled from.
func (p *Program) Pattern() *pattern.Node {
	return p.pat
}

// NumCaptures returns the number of capture slots of the program.
func (p *Program) NumCaptures() int {
	return p.captures
}

// Run invokes the program. Arguments must match the declared parameter set
// exactly; a missing, excess or mistyped argument is a contract violation and
// reported as an error, never silently ignored.
func (p *Program) Run(args Args) (Result, error) {
	for _, param := range p.params {
		if _, ok := args[param]; !ok {
			return Result{}, fmt.Errorf("missing argument %q, program requires %v", param, p.params)
		}
	}
	for name := range args {
		if !p.requires(name) {
			return Result{}, fmt.Errorf("unexpected argument %q, program requires %v", name, p.params)
		}
	}
	node, ok := args[ParamNode].(treepat.Node)
	if !ok && args[ParamNode] != nil {
		return Result{}, fmt.Errorf("argument %q is not an analyzed-tree node", ParamNode)
	}
	m := &Matching{Captures: make([]treepat.Node, p.captures)}
	if p.requires(ParamTrace) {
		tr, ok := args[ParamTrace].(*trace.Trace)
		if !ok || tr == nil {
			return Result{}, fmt.Errorf("argument %q is not a trace record", ParamTrace)
		}
		m.T = tr
	}
	matched := p.frag(m, node)
	tracer().Debugf("program run: matched=%v", matched)
	res := Result{Matched: matched}
	if matched {
		res.Captures = m.Captures
	}
	return res, nil
}

func (p *Program) requires(param string) bool {
	for _, name := range p.params {
		if name == param {
			return true
		}
	}
	return false
}

package compile

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/treepat"
	"github.com/npillmayer/treepat/pattern"
)

// NewDebugCompiler creates a compiler which produces programs with identical
// matching semantics as New's, additionally recording into a trace, for every
// compiled pattern position, whether it was entered and whether it matched.
// Debug programs require the extra argument "trace" (see Program.Run).
func NewDebugCompiler(opts ...Option) *Compiler {
	opts = append(opts, WithInstrumentation(NewInstrumenter()))
	return New(opts...)
}

// Instrumenter is the instrumentation overlay of a debug compiler. It assigns
// every pattern node a small integer identity the first time the node is
// compiled and wraps the handlers' fragments with trace calls. Handlers never
// see the overlay.
type Instrumenter struct {
	ids []*pattern.Node // identity -> pattern node, in encounter order
	of  map[*pattern.Node]int
}

// NewInstrumenter creates an empty instrumentation overlay.
func NewInstrumenter() *Instrumenter {
	return &Instrumenter{of: make(map[*pattern.Node]int)}
}

// visit assigns the next sequential identity to a pattern node at first
// encounter. Encounter order is the compiler's own pre-order traversal, which
// makes identities deterministic for a given pattern tree. Identity is keyed
// by object identity: structurally equal nodes at different positions get
// distinct identities.
func (ins *Instrumenter) visit(pat *pattern.Node) int {
	if id, ok := ins.of[pat]; ok {
		return id
	}
	id := len(ins.ids)
	ins.ids = append(ins.ids, pat)
	ins.of[pat] = id
	tracer().Debugf("pattern position %d = %s", id, pat.String())
	return id
}

// wrap surrounds a fragment with enter/success trace calls. The wrapping
// preserves short-circuit semantics: success is only recorded if the original
// fragment succeeded, and the composed result always equals the original
// fragment's result. Trace calls themselves never fail.
func (ins *Instrumenter) wrap(id int, frag Fragment) Fragment {
	return func(m *Matching, n treepat.Node) bool {
		if !(m.T.Enter(id, n) && frag(m, n)) {
			return false
		}
		m.T.Success(id)
		return true
	}
}

// Params returns the additional program parameters instrumentation requires.
func (ins *Instrumenter) Params() []string {
	return []string{ParamTrace}
}

// IDOf returns the identity assigned to a pattern node, if any. Read-only
// after compilation completes.
func (ins *Instrumenter) IDOf(pat *pattern.Node) (int, bool) {
	id, ok := ins.of[pat]
	return id, ok
}

// NodeAt returns the pattern node a given identity was assigned to.
func (ins *Instrumenter) NodeAt(id int) *pattern.Node {
	if id < 0 || id >= len(ins.ids) {
		return nil
	}
	return ins.ids[id]
}

// Count returns the number of identities assigned so far.
func (ins *Instrumenter) Count() int {
	return len(ins.ids)
}

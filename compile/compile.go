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
	"github.com/npillmayer/treepat/trace"
)

// Fragment is compiled matcher logic for one pattern construct: it tests an
// analyzed-tree node, filling capture slots on the way. n may be nil for
// absent children; fragments must handle that.
type Fragment func(m *Matching, n treepat.Node) bool

// Matching is the per-execution state threaded through fragments. One
// instance per program run; never shared across runs.
type Matching struct {
	Captures []treepat.Node // capture slots, indexed at compile time
	T        *trace.Trace   // non-nil for debug-compiled programs only
}

// Compiler compiles pattern trees to programs. A compiler is bound to a
// registry (its definition) and optionally to an instrumenter. Compilers are
// safe to reuse for subsequent, unrelated compilations; they keep no state
// across Compile calls.
type Compiler struct {
	reg   *Registry
	instr *Instrumenter
}

// Option configures a compiler.
type Option func(c *Compiler)

// WithRegistry binds a compiler to a registry definition.
func WithRegistry(r *Registry) Option {
	return func(c *Compiler) {
		c.reg = r
	}
}

// WithInstrumentation injects an instrumentation overlay into a compiler.
// Clients normally use NewDebugCompiler instead.
func WithInstrumentation(ins *Instrumenter) Option {
	return func(c *Compiler) {
		c.instr = ins
	}
}

// New creates a compiler. Without options it compiles the standard construct
// catalogue (CoreRegistry) without instrumentation.
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	if c.reg == nil {
		c.reg = CoreRegistry()
	}
	return c
}

// Instrumenter returns the compiler's instrumentation overlay, or nil for a
// plain compiler.
func (c *Compiler) Instrumenter() *Instrumenter {
	return c.instr
}

// fork returns a compiler dispatching through a different registry while
// sharing this compiler's instrumentation. Handlers use it to compile
// restricted positions (e.g. sequence heads).
func (c *Compiler) fork(reg *Registry) *Compiler {
	return &Compiler{reg: reg, instr: c.instr}
}

// --- Compilation context ---------------------------------------------------

// Context is the per-compilation session state: the pattern node currently
// being compiled, the capture slot counter and the negotiated parameter list
// of the resulting program. Lifetime is one top-level Compile invocation
// including all nested recursive compiles.
type Context struct {
	current  *pattern.Node
	captures int
	params   []string
}

// Current returns the pattern node currently being compiled. Error handling
// which inspects "what node were we compiling" relies on this being accurate
// even after a nested compile has failed.
func (ctx *Context) Current() *pattern.Node {
	return ctx.current
}

// --- Compilation -----------------------------------------------------------

// Compile compiles a pattern tree to a program, in a single top-down pass.
func (c *Compiler) Compile(pat *pattern.Node) (*Program, error) {
	ctx := &Context{params: []string{ParamNode}}
	if c.instr != nil {
		ctx.params = append(ctx.params, c.instr.Params()...)
	}
	tracer().Debugf("compiling pattern %s", pat.String())
	frag, err := c.CompileNode(ctx, pat)
	if err != nil {
		return nil, err
	}
	return &Program{
		params:   ctx.params,
		frag:     frag,
		captures: ctx.captures,
		pat:      pat,
	}, nil
}

// CompileNode dispatches one pattern node through the registry and returns
// the handler's fragment, instrumented if the compiler is a debug compiler.
// Handlers recurse through CompileNode for their children.
//
// The context's current node is set to pat for the duration of the dispatch
// and restored afterwards, also when the handler fails.
func (c *Compiler) CompileNode(ctx *Context, pat *pattern.Node) (Fragment, error) {
	prev := ctx.current
	ctx.current = pat
	defer func() { ctx.current = prev }()
	var id int
	if c.instr != nil {
		id = c.instr.visit(pat) // pre-order, before children are compiled
	}
	frag, err := c.reg.HandlerFor(pat.Tag)(c, ctx, pat)
	if err != nil {
		return nil, err
	}
	if c.instr != nil {
		frag = c.instr.wrap(id, frag)
	}
	return frag, nil
}

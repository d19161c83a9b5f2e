package compile

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/treepat/pattern"
)

// Handler is compiler logic for one pattern construct. A handler receives the
// compiler it is dispatched from (for recursive compilation of children), the
// compilation context and the pattern node to compile, and emits a matcher
// fragment.
type Handler func(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error)

// Registry maps pattern type tags to handlers. Registries belong to a
// compiler definition, not to a compiler instance, and are read-only once
// compilation starts.
type Registry struct {
	handlers map[string]Handler
	unknown  Handler
}

// NewRegistry creates an empty registry. Tags without a registered handler
// resolve to a distinguished unknown-construct handler, which fails the
// compilation naming the construct and its position.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.unknown = func(c *Compiler, ctx *Context, pat *pattern.Node) (Fragment, error) {
		return nil, fmt.Errorf("unknown pattern construct %q at %v (known constructs: %s)",
			pat.Tag, pat.Span, strings.Join(r.Tags(), " "))
	}
	return r
}

// Register sets the handler for a type tag, overwriting any previous one.
func (r *Registry) Register(tag string, h Handler) {
	if h == nil {
		tracer().Errorf("handler for %q may not be nil", tag)
		return
	}
	r.handlers[tag] = h
}

// Extend derives a new registry from r. The derived registry starts with a
// full, independent snapshot of r's mapping: registering handlers on either
// one afterwards never affects the other, nor any sibling derived from r.
func (r *Registry) Extend() *Registry {
	derived := NewRegistry()
	for tag, h := range r.handlers {
		derived.handlers[tag] = h
	}
	return derived
}

// HandlerFor resolves a type tag. Unregistered tags resolve to the
// unknown-construct handler.
func (r *Registry) HandlerFor(tag string) Handler {
	if h, ok := r.handlers[tag]; ok {
		return h
	}
	return r.unknown
}

// Tags returns the registered type tags in sorted order.
func (r *Registry) Tags() []string {
	set := treeset.NewWith(utils.StringComparator)
	for tag := range r.handlers {
		set.Add(tag)
	}
	tags := make([]string, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		tags = append(tags, it.Value().(string))
	}
	return tags
}

// Dump logs the registry contents. Only visible in debug mode.
func (r *Registry) Dump() {
	tracer().Debugf("--- Registry ---------------------------------------")
	for i, tag := range r.Tags() {
		tracer().Debugf("[%2d] %s", i, tag)
	}
	tracer().Debugf("----------------------------------------------------")
}

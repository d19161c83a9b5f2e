/*
Package viz maps trace records back onto analyzed source text.

Given the analyzed tree an instrumented matcher was run against, and the trace
record of that run, viz produces one display class per character of the
analyzed source. viz only classifies; mapping classes to colors (or other
display attributes) is left to the presentation layer (see cmd/tpdbg).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package viz

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treepat"
	"github.com/npillmayer/treepat/trace"
)

// tracer traces with key 'treepat.viz'.
func tracer() tracing.Trace {
	return tracing.Select("treepat.viz")
}

// Class is the display classification of one character of analyzed source.
type Class int8

const (
	NotVisitable Class = iota // no pattern position ever corresponds to this character
	NotVisited                // corresponding pattern position exists, but was never reached
	Failed                    // reached, did not match
	Matched                   // reached and matched
)

func (cl Class) String() string {
	switch cl {
	case NotVisited:
		return "not visited"
	case Failed:
		return "failed"
	case Matched:
		return "matched"
	}
	return "not visitable"
}

// Record pairs the artifacts of one instrumented matcher run: the analyzed
// tree the matcher was run against, the trace of the run, the run's outcome
// and the extent (in bytes) of the analyzed source text. Records serve
// rendering only; they are never consulted for match decisions.
type Record struct {
	Matched bool
	Root    treepat.Node
	Trace   *trace.Trace
	Extent  int
}

// Classify produces one Class per character of the analyzed source.
//
// Every character defaults to NotVisitable. Nodes of the analyzed tree are
// enumerated depth-first, children before their parent, each painting its
// span with its own classification; the last writer in enumeration order
// wins, so an enclosing node overrides its descendants on shared characters.
// A node without a resolvable trace entry classifies as NotVisitable, a node
// with a null span is skipped without blocking its siblings.
func (rec Record) Classify() []Class {
	classes := make([]Class, rec.Extent)
	rec.paint(rec.Root, classes)
	return classes
}

func (rec Record) paint(n treepat.Node, classes []Class) {
	if n == nil {
		return
	}
	for _, ch := range n.Children() {
		rec.paint(ch, classes)
	}
	span := n.Span()
	if span.IsNull() {
		return
	}
	cl := rec.classFor(n)
	tracer().Debugf("%s node %v %s", cl, n.Type(), span)
	for i := span.From(); i < span.To() && i < uint64(len(classes)); i++ {
		classes[i] = cl
	}
}

// classFor resolves an analyzed node's class through the trace: the node is
// looked up in the pattern-position bindings recorded at run time, then the
// position's visit status maps to a class by the fixed 4-way table.
func (rec Record) classFor(n treepat.Node) Class {
	id, ok := rec.Trace.At(n)
	if !ok {
		return NotVisitable
	}
	switch rec.Trace.StatusOf(id) {
	case trace.Matched:
		return Matched
	case trace.Failed:
		return Failed
	}
	return NotVisited
}

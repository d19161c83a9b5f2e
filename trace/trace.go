/*
Package trace provides per-run trace records for instrumented pattern
matchers.

A Trace is scoped to exactly one execution of a compiled matcher: create a
fresh instance before each run, consume it afterwards. Traces must not be
shared across concurrent executions; the compiled matcher itself is safely
shareable, the trace is not.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trace

import (
	"github.com/npillmayer/treepat"
)

// Status is the visit state of one pattern position during one run.
type Status int8

const (
	NotVisited Status = iota // never entered this run
	Failed                   // entered, but did not match
	Matched                  // entered and matched
)

func (st Status) String() string {
	switch st {
	case Failed:
		return "failed"
	case Matched:
		return "matched"
	}
	return "not visited"
}

// Trace records, keyed by pattern-node identity, which pattern positions were
// reached during one matcher execution and whether they matched. It
// additionally records which analyzed node was under examination when a
// position was entered; this is what later lets a visualizer correlate trace
// entries with the analyzed tree (see package viz).
type Trace struct {
	status   map[int]Status
	examined map[treepat.Node]int
}

// New creates a fresh, empty trace for one matcher execution.
func New() *Trace {
	return &Trace{
		status:   make(map[int]Status),
		examined: make(map[treepat.Node]int),
	}
}

// Enter marks the pattern position id as visited-but-not-yet-matched and
// records the analyzed node the matcher is examining. Enter never fails and
// always returns true, so it composes inside short-circuit conjunctions
// without altering their outcome.
//
// When several pattern positions examine the same analyzed node, the first
// (outermost) binding is kept: the position governing the node's overall
// outcome is the one that started examining it.
func (t *Trace) Enter(id int, at treepat.Node) bool {
	t.status[id] = Failed
	if at != nil {
		if _, ok := t.examined[at]; !ok {
			t.examined[at] = id
		}
	}
	return true
}

// Success marks the pattern position id as matched. Success only ever follows
// a prior Enter for the same id.
func (t *Trace) Success(id int) {
	t.status[id] = Matched
}

// StatusOf returns the visit state of a pattern position. Positions never
// entered report NotVisited; this is a defined state, not an error.
func (t *Trace) StatusOf(id int) Status {
	return t.status[id]
}

// At resolves an analyzed node to the identity of the pattern position that
// examined it, if any.
func (t *Trace) At(n treepat.Node) (int, bool) {
	id, ok := t.examined[n]
	return id, ok
}

// Len returns the number of pattern positions entered during the run.
func (t *Trace) Len() int {
	return len(t.status)
}

package compile

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treepat/pattern"
	"github.com/npillmayer/treepat/sexp"
	"github.com/npillmayer/treepat/trace"
)

func debugProgram(t *testing.T, patsrc string) (*Compiler, *Program) {
	t.Helper()
	pat, err := pattern.Parse(patsrc)
	if err != nil {
		t.Fatalf("cannot parse pattern \"%s\": %v", patsrc, err)
	}
	c := NewDebugCompiler()
	prog, err := c.Compile(pat)
	if err != nil {
		t.Fatalf("cannot compile pattern \"%s\": %v", patsrc, err)
	}
	return c, prog
}

func TestIdentityOrderDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.compile")
	defer teardown()
	//
	// two structurally identical pattern trees, compiled independently
	c1, _ := debugProgram(t, "(send {nil str} $_)")
	c2, _ := debugProgram(t, "(send {nil str} $_)")
	ins1, ins2 := c1.Instrumenter(), c2.Instrumenter()
	if ins1.Count() != ins2.Count() {
		t.Fatalf("identity counts differ: %d vs %d", ins1.Count(), ins2.Count())
	}
	for id := 0; id < ins1.Count(); id++ {
		if ins1.NodeAt(id).Tag != ins2.NodeAt(id).Tag {
			t.Errorf("identity %d assigned to %s vs %s",
				id, ins1.NodeAt(id).Tag, ins2.NodeAt(id).Tag)
		}
	}
}

func TestIdentityPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.compile")
	defer teardown()
	//
	c, _ := debugProgram(t, "(send nil? $_)")
	ins := c.Instrumenter()
	tags := []string{pattern.TagSequence, pattern.TagType, pattern.TagPredicate,
		pattern.TagCapture, pattern.TagWildcard}
	if ins.Count() != len(tags) {
		t.Fatalf("expected %d pattern positions, got %d", len(tags), ins.Count())
	}
	for id, tag := range tags {
		if ins.NodeAt(id).Tag != tag {
			t.Errorf("identity %d should be %s, is %s", id, tag, ins.NodeAt(id).Tag)
		}
	}
}

func TestDebugProgramRequiresTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.compile")
	defer teardown()
	//
	_, prog := debugProgram(t, "(send nil? :foo)")
	params := prog.Params()
	if len(params) != 2 || params[1] != ParamTrace {
		t.Fatalf("debug program should require [node trace], requires %v", params)
	}
	root, _ := sexp.Parse("(send nil :foo)")
	if _, err := prog.Run(Args{ParamNode: root}); err == nil {
		t.Errorf("debug program must reject an ordinary (non-tracing) call")
	}
	if _, err := prog.Run(Args{ParamNode: root, ParamTrace: "no trace"}); err == nil {
		t.Errorf("debug program must reject a mistyped trace argument")
	}
}

func TestInstrumentationTransparency(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.compile")
	defer teardown()
	//
	inputs := []string{"(send nil :foo)", "(send nil :bar)", "(csend nil :foo)", "(send)"}
	for _, input := range inputs {
		plain := matchOf(t, New(), "(send nil? $_)", input)
		_, prog := debugProgram(t, "(send nil? $_)")
		root, _ := sexp.Parse(input)
		debugged, err := prog.Run(Args{ParamNode: root, ParamTrace: trace.New()})
		if err != nil {
			t.Fatalf("cannot run debug program: %v", err)
		}
		if plain.Matched != debugged.Matched {
			t.Errorf("instrumentation changed outcome for \"%s\": %v vs %v",
				input, plain.Matched, debugged.Matched)
		}
		if len(plain.Captures) != len(debugged.Captures) {
			t.Errorf("instrumentation changed captures for \"%s\"", input)
		}
	}
}

func TestShortCircuitRecording(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.compile")
	defer teardown()
	//
	c, prog := debugProgram(t, "(send nil? :foo)")
	root, _ := sexp.Parse("(send nil :bar)")
	tr := trace.New()
	result, err := prog.Run(Args{ParamNode: root, ParamTrace: tr})
	if err != nil {
		t.Fatalf("cannot run debug program: %v", err)
	}
	if result.Matched {
		t.Fatalf("pattern should not match input")
	}
	ins := c.Instrumenter()
	rootPat := prog.Pattern()
	seqID, _ := ins.IDOf(rootPat)
	symID, _ := ins.IDOf(rootPat.Children[2])
	if tr.StatusOf(seqID) != trace.Failed {
		t.Errorf("failing sequence should be entered but not succeeded, is %s", tr.StatusOf(seqID))
	}
	if tr.StatusOf(symID) != trace.Failed {
		t.Errorf("failing symbol should be entered but not succeeded, is %s", tr.StatusOf(symID))
	}
	predID, _ := ins.IDOf(rootPat.Children[1])
	if tr.StatusOf(predID) != trace.Matched {
		t.Errorf("matching predicate should be recorded as matched, is %s", tr.StatusOf(predID))
	}
}

func TestTraceIsolationBetweenRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.compile")
	defer teardown()
	//
	c, prog := debugProgram(t, "(send nil? :foo)")
	ins := c.Instrumenter()
	symID, _ := ins.IDOf(prog.Pattern().Children[2])
	//
	// first run reaches the symbol position
	root1, _ := sexp.Parse("(send nil :foo)")
	tr1 := trace.New()
	if _, err := prog.Run(Args{ParamNode: root1, ParamTrace: tr1}); err != nil {
		t.Fatalf("cannot run debug program: %v", err)
	}
	if tr1.StatusOf(symID) != trace.Matched {
		t.Fatalf("first run should reach and match the symbol position")
	}
	//
	// second run fails at the head, so the symbol position stays unvisited
	root2, _ := sexp.Parse("(str)")
	tr2 := trace.New()
	if _, err := prog.Run(Args{ParamNode: root2, ParamTrace: tr2}); err != nil {
		t.Fatalf("cannot run debug program: %v", err)
	}
	if tr2.StatusOf(symID) != trace.NotVisited {
		t.Errorf("second trace leaked an entry from the first run: %s", tr2.StatusOf(symID))
	}
}

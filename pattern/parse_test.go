package pattern

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.pattern")
	defer teardown()
	//
	toks, err := Tokenize("(send nil? :foo)")
	if err != nil {
		t.Fatalf("tokenizing failed: %v", err)
	}
	lexemes := []string{"(", "send", "nil?", ":foo", ")"}
	if len(toks) != len(lexemes) {
		t.Fatalf("expected %d tokens, got %d", len(lexemes), len(toks))
	}
	for i, lex := range lexemes {
		if toks[i].Lexeme() != lex {
			t.Errorf("token %d should be '%s', is '%s'", i, lex, toks[i].Lexeme())
		}
	}
	if int(toks[2].TokType()) != TokenID("PRED") {
		t.Errorf("nil? should scan as predicate token")
	}
}

func TestTokenSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.pattern")
	defer teardown()
	//
	toks, err := Tokenize("{_ $x}")
	if err != nil {
		t.Fatalf("tokenizing failed: %v", err)
	}
	if toks[0].Span().From() != 0 || toks[0].Span().To() != 1 {
		t.Errorf("'{' should span (0…1), spans %v", toks[0].Span())
	}
	last := toks[len(toks)-1]
	if last.Span().To() != 6 {
		t.Errorf("'}' should end at 6, spans %v", last.Span())
	}
}

func TestParseSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.pattern")
	defer teardown()
	//
	pat, err := Parse("(send nil? :foo)")
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	if pat.Tag != TagSequence || len(pat.Children) != 3 {
		t.Fatalf("expected 3-element sequence, got %s", pat.String())
	}
	tags := []string{TagType, TagPredicate, TagSymbol}
	for i, tag := range tags {
		if pat.Children[i].Tag != tag {
			t.Errorf("child %d should be %s, is %s", i, tag, pat.Children[i].Tag)
		}
	}
	if pat.Children[2].Text != "foo" {
		t.Errorf("symbol payload should be foo, is %s", pat.Children[2].Text)
	}
	if pat.Span.From() != 0 || pat.Span.To() != 16 {
		t.Errorf("sequence should span the whole pattern, spans %v", pat.Span)
	}
}

func TestParseNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.pattern")
	defer teardown()
	//
	pat, err := Parse("(send {_ (const _ :Base)} $_)")
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	if pat.String() != "(send {_ (const _ :Base)} $_)" {
		t.Errorf("pattern does not round-trip, renders %s", pat.String())
	}
	union := pat.Children[1]
	if union.Tag != TagUnion || len(union.Children) != 2 {
		t.Errorf("expected 2-alternative union, got %s", union.String())
	}
	capture := pat.Children[2]
	if capture.Tag != TagCapture || capture.Children[0].Tag != TagWildcard {
		t.Errorf("expected capture of wildcard, got %s", capture.String())
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.pattern")
	defer teardown()
	//
	for _, input := range []string{"", "()", "(send", "(send _))", "$"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("parsing \"%s\" should fail", input)
		}
	}
}

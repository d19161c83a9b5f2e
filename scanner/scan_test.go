package scanner

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

func TestGoTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.scanner")
	defer teardown()
	//
	input := strings.NewReader("send :foo")
	tokenizer := GoTokenizer("test", input)
	tok := tokenizer.NextToken()
	if int(tok.TokType()) != Ident || tok.Lexeme() != "send" {
		t.Errorf("expected identifier 'send', got '%s'", tok.Lexeme())
	}
	if tok.Span().From() != 0 || tok.Span().To() != 4 {
		t.Errorf("'send' should span (0…4), spans %v", tok.Span())
	}
	tok = tokenizer.NextToken()
	if int(tok.TokType()) != ':' {
		t.Errorf("expected ':' token, got '%s'", tok.Lexeme())
	}
	tok = tokenizer.NextToken()
	if int(tok.TokType()) != Ident || tok.Lexeme() != "foo" {
		t.Errorf("expected identifier 'foo', got '%s'", tok.Lexeme())
	}
	if int(tokenizer.NextToken().TokType()) != EOF {
		t.Errorf("expected EOF after input")
	}
}

func TestLMAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treepat.scanner")
	defer teardown()
	//
	tokenIds := map[string]int{"ID": 1, "(": int('('), ")": int(')')}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`([a-z])+`), MakeToken("ID", 1))
		lexer.Add([]byte(`( |\t)+`), Skip)
	}
	adapter, err := NewLMAdapter(init, []string{"(", ")"}, nil, tokenIds)
	if err != nil {
		t.Fatalf("cannot create adapter: %v", err)
	}
	scan, err := adapter.Scanner("(foo)")
	if err != nil {
		t.Fatalf("cannot create scanner: %v", err)
	}
	lexemes := []string{"(", "foo", ")"}
	for _, lex := range lexemes {
		tok := scan.NextToken()
		if tok.Lexeme() != lex {
			t.Errorf("expected '%s', got '%s'", lex, tok.Lexeme())
		}
	}
	if int(scan.NextToken().TokType()) != EOF {
		t.Errorf("expected EOF after input")
	}
}

package pattern

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/treepat"
	"github.com/npillmayer/treepat/scanner"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", "{", "}", "$", "_"}

// The named tokens
var tokens = []string{"ID", "SYMBOL", "PRED"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = scanner.Ident
		tokenIds["SYMBOL"] = -9 // outside of the text/scanner token range
		tokenIds["PRED"] = -10
		for _, lit := range literals {
			r := lit[0]
			tokenIds[lit] = int(r)
		}
	})
}

// TokenID returns the token type for a token name. It panics for unknown token
// names, as these are programmer errors.
func TokenID(t string) int {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return id
}

// Lexer creates a new lexmachine lexer for the pattern DSL.
func Lexer() (*scanner.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`:([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken("SYMBOL"))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*\?`), makeToken("PRED"))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
		lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
	}
	adapter, err := scanner.NewLMAdapter(init, literals, nil, tokenIds)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return scanner.MakeToken(s, id)
}

// Tokenize scans a pattern source string and returns the tokens of the
// pattern DSL, without the trailing EOF token.
func Tokenize(input string) ([]treepat.Token, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, err
	}
	var toks []treepat.Token
	for {
		tok := scan.NextToken()
		if tok.TokType() == scanner.EOF {
			break
		}
		tracer().Debugf("pattern token %s %v", tok.Lexeme(), tok.Span())
		toks = append(toks, tok)
	}
	return toks, nil
}

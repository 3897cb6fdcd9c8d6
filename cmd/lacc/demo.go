package main

import (
	"github.com/haleyrc/lacc"
	"github.com/haleyrc/lacc/dfa"
	"github.com/haleyrc/lacc/grammar"
	"github.com/haleyrc/lacc/lr"
	"github.com/haleyrc/lacc/token"
)

// The demo lexer and grammar are the "wire the whole pipeline in one call"
// example carried over from original_source/'s Main/MainToken drivers: an
// arithmetic expression language with the usual four token classes plus
// whitespace, and its associated expr/term/factor grammar. Since this
// regex dialect has no escape syntax (spec's Non-goals rule out
// backslash escapes), the operator and grouping tokens are spelled as
// keywords ("add", "mul", "lp", "rp") rather than the characters
// +, *, (, ) themselves — those are the postfix normalizer's own
// operator alphabet and can't appear as literals.

// Keyword token ids are lower than tokID's so token priority (§4.4 step 5:
// lowest id wins) picks the keyword over the general identifier pattern
// whenever both accept the same lexeme, mirroring how a hand-written
// lexer's keyword table always shadows its identifier rule.
var (
	tokAdd    = token.Type{ID: 0, Name: "ADD"}
	tokMul    = token.Type{ID: 1, Name: "MUL"}
	tokLParen = token.Type{ID: 2, Name: "LPAREN"}
	tokRParen = token.Type{ID: 3, Name: "RPAREN"}
	tokWS     = token.Type{ID: 4, Name: "WS"}
	tokID     = token.Type{ID: 5, Name: "ID"}
)

func demoLexer() (*dfa.DFA, error) {
	return lacc.BuildLexer([]lacc.Pattern{
		{Regex: "add", Type: tokAdd},
		{Regex: "mul", Type: tokMul},
		{Regex: "lp", Type: tokLParen},
		{Regex: "rp", Type: tokRParen},
		{Regex: "(a|b|c|d|e|f|g|h|i|j)(a|b|c|d|e|f|g|h|i|j)*", Type: tokID},
		{Regex: " ", Type: tokWS},
	})
}

var (
	symExpr   = grammar.NewNonTerminal("expr")
	symTerm   = grammar.NewNonTerminal("term")
	symFactor = grammar.NewNonTerminal("factor")
	symAdd    = grammar.NewTerminal("ADD")
	symMul    = grammar.NewTerminal("MUL")
	symLParen = grammar.NewTerminal("LPAREN")
	symRParen = grammar.NewTerminal("RPAREN")
	symID     = grammar.NewTerminal("ID")
)

func demoParser() (*grammar.Grammar, *lr.Table, error) {
	return lacc.BuildParser(symExpr, []lacc.Rule{
		{LHS: symExpr, RHS: []grammar.Symbol{symExpr, symAdd, symTerm}},
		{LHS: symExpr, RHS: []grammar.Symbol{symTerm}},
		{LHS: symTerm, RHS: []grammar.Symbol{symTerm, symMul, symFactor}},
		{LHS: symTerm, RHS: []grammar.Symbol{symFactor}},
		{LHS: symFactor, RHS: []grammar.Symbol{symLParen, symExpr, symRParen}},
		{LHS: symFactor, RHS: []grammar.Symbol{symID}},
	})
}

// tokensToSymbols maps the lexical tokens produced by demoLexer to the
// grammar terminals demoParser's table expects, dropping whitespace tokens as
// it goes since the grammar has no production for them.
func tokensToSymbols(toks []token.Token) ([]grammar.Symbol, bool) {
	var out []grammar.Symbol
	for _, tok := range toks {
		if tok.IsError() {
			return nil, false
		}
		switch tok.Type.ID {
		case tokWS.ID:
			continue
		case tokID.ID:
			out = append(out, symID)
		case tokAdd.ID:
			out = append(out, symAdd)
		case tokMul.ID:
			out = append(out, symMul)
		case tokLParen.ID:
			out = append(out, symLParen)
		case tokRParen.ID:
			out = append(out, symRParen)
		}
	}
	out = append(out, grammar.EndOfInput)
	return out, true
}

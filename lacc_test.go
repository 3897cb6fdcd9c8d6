package lacc

import (
	"testing"

	"github.com/haleyrc/lacc/grammar"
	"github.com/haleyrc/lacc/token"
)

func TestBuildLexerTokenizesLongestMatch(t *testing.T) {
	ident := token.Type{ID: 1, Name: "IDENT"}
	ifTok := token.Type{ID: 0, Name: "IF"}
	ws := token.Type{ID: 2, Name: "WS"}

	d, err := BuildLexer([]Pattern{
		{Regex: "if", Type: ifTok},
		{Regex: "(a|b|c|d|e|f|g|h|i|y)(a|b|c|d|e|f|g|h|i|y)*", Type: ident},
		{Regex: " ", Type: ws},
	})
	if err != nil {
		t.Fatalf("BuildLexer: %v", err)
	}

	toks := d.Tokenize("if iffy")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].Type.Name != "IF" || toks[0].Lexeme != "if" {
		t.Errorf("token 0 = %v, want IF(\"if\")", toks[0])
	}
	if toks[1].Type.Name != "WS" {
		t.Errorf("token 1 = %v, want WS", toks[1])
	}
	if toks[2].Type.Name != "IDENT" || toks[2].Lexeme != "iffy" {
		t.Errorf("token 2 = %v, want IDENT(\"iffy\") by maximal munch", toks[2])
	}
}

func TestBuildLexerRejectsEmptyPatternSet(t *testing.T) {
	if _, err := BuildLexer(nil); err == nil {
		t.Fatal("expected an error for an empty pattern set")
	}
}

func TestBuildParserAcceptsArithmeticExpression(t *testing.T) {
	expr := grammar.NewNonTerminal("expr")
	term := grammar.NewNonTerminal("term")
	factor := grammar.NewNonTerminal("factor")
	add := grammar.NewTerminal("add")
	mul := grammar.NewTerminal("mul")
	lparen := grammar.NewTerminal("lparen")
	rparen := grammar.NewTerminal("rparen")
	id := grammar.NewTerminal("id")

	_, table, err := BuildParser(expr, []Rule{
		{LHS: expr, RHS: []grammar.Symbol{expr, add, term}},
		{LHS: expr, RHS: []grammar.Symbol{term}},
		{LHS: term, RHS: []grammar.Symbol{term, mul, factor}},
		{LHS: term, RHS: []grammar.Symbol{factor}},
		{LHS: factor, RHS: []grammar.Symbol{lparen, expr, rparen}},
		{LHS: factor, RHS: []grammar.Symbol{id}},
	})
	if err != nil {
		t.Fatalf("BuildParser: %v", err)
	}
	if len(table.ShiftReduceConflicts) != 0 || len(table.ReduceReduceConflicts) != 0 {
		t.Fatalf("expected no conflicts in the arithmetic grammar, got %+v / %+v", table.ShiftReduceConflicts, table.ReduceReduceConflicts)
	}

	tokens := []grammar.Symbol{id, add, id, mul, id, grammar.EndOfInput}
	ok, err := Parse(table, tokens, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ok {
		t.Error("expected id + id * id to be accepted")
	}
}

func TestBuildParserRejectsEmptyGrammar(t *testing.T) {
	if _, _, err := BuildParser(grammar.NewNonTerminal("expr"), nil); err == nil {
		t.Fatal("expected an error for a grammar with no productions")
	}
}

func TestFirstFollowOnSingleRuleGrammar(t *testing.T) {
	expr := grammar.NewNonTerminal("expr")
	id := grammar.NewTerminal("id")

	g, _, err := BuildParser(expr, []Rule{
		{LHS: expr, RHS: []grammar.Symbol{id}},
	})
	if err != nil {
		t.Fatalf("BuildParser: %v", err)
	}

	first, follow, err := FirstFollow(g)
	if err != nil {
		t.Fatalf("FirstFollow: %v", err)
	}
	if _, ok := first.Of(expr).Symbols[id]; !ok {
		t.Error("expected id in FIRST(expr)")
	}
	exprFollow, err := follow.Of(expr)
	if err != nil {
		t.Fatalf("follow.Of: %v", err)
	}
	if !exprFollow.EOF {
		t.Error("expected end-of-input in FOLLOW(expr)")
	}
}

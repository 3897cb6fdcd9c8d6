package dfa

import (
	"testing"

	"github.com/haleyrc/lacc/nfa"
	"github.com/haleyrc/lacc/token"
)

func buildLexerForTest(t *testing.T) *DFA {
	t.Helper()
	ws := token.Type{ID: 1, Name: "WS"}
	ident := token.Type{ID: 2, Name: "IDENT"}
	num := token.Type{ID: 3, Name: "NUM"}

	wsNFA, err := nfa.CompileTagged(" +", ws)
	if err != nil {
		t.Fatal(err)
	}
	identNFA, err := nfa.CompileTagged("(a|b|c)(a|b|c)*", ident)
	if err != nil {
		t.Fatal(err)
	}
	numNFA, err := nfa.CompileTagged("(0|1)(0|1)*", num)
	if err != nil {
		t.Fatal(err)
	}
	merged, err := nfa.Merge([]*nfa.NFA{wsNFA, identNFA, numNFA})
	if err != nil {
		t.Fatal(err)
	}

	alphabet := []rune("abc01 ")
	d := Determinize(merged, alphabet)
	return Minimize(d, alphabet)
}

func TestTokenizeMaximalMunch(t *testing.T) {
	d := buildLexerForTest(t)
	toks := d.Tokenize("abc 101")

	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].Type.Name != "IDENT" || toks[0].Lexeme != "abc" {
		t.Errorf("token 0 = %v, want IDENT(abc)", toks[0])
	}
	if toks[1].Type.Name != "WS" || toks[1].Lexeme != " " {
		t.Errorf("token 1 = %v, want WS( )", toks[1])
	}
	if toks[2].Type.Name != "NUM" || toks[2].Lexeme != "101" {
		t.Errorf("token 2 = %v, want NUM(101)", toks[2])
	}
}

func TestTokenizeEmitsSingleCharacterErrors(t *testing.T) {
	d := buildLexerForTest(t)
	toks := d.Tokenize("a!!b")

	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %v", len(toks), toks)
	}
	if !toks[1].IsError() || toks[1].Lexeme != "!" {
		t.Errorf("token 1 = %v, want a one-character ERROR", toks[1])
	}
	if !toks[2].IsError() || toks[2].Lexeme != "!" {
		t.Errorf("token 2 = %v, want a one-character ERROR", toks[2])
	}
}

func TestValidateWholeInput(t *testing.T) {
	d := buildLexerForTest(t)
	if _, ok := d.Validate("abc"); !ok {
		t.Error("expected \"abc\" to validate as a single token")
	}
	if _, ok := d.Validate("abc "); ok {
		t.Error("did not expect \"abc \" to validate as a single token")
	}
}

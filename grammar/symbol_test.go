package grammar

import "testing"

func TestSymbolEquality(t *testing.T) {
	a1 := NewTerminal("a")
	a2 := NewTerminal("a")
	b := NewTerminal("b")

	if a1 != a2 {
		t.Error("two terminals with the same name should compare equal")
	}
	if a1 == b {
		t.Error("terminals with different names should not compare equal")
	}
}

func TestSymbolKind(t *testing.T) {
	term := NewTerminal("id")
	nonTerm := NewNonTerminal("expr")

	if !term.IsTerminal() || term.IsNonTerminal() {
		t.Errorf("%v should be a terminal", term)
	}
	if !nonTerm.IsNonTerminal() || nonTerm.IsTerminal() {
		t.Errorf("%v should be a non-terminal", nonTerm)
	}
}

func TestStartOfDistinctFromUserSymbols(t *testing.T) {
	expr := NewNonTerminal("expr")
	aug := StartOf("expr")
	if aug == expr {
		t.Error("the augmenting start symbol must not collide with the user's start symbol")
	}
}

package grammar

import "testing"

func TestComputeFollowSets(t *testing.T) {
	g := arithGrammar(t)
	fst, err := ComputeFirstSets(g.Productions)
	if err != nil {
		t.Fatalf("ComputeFirstSets: %v", err)
	}
	flw, err := ComputeFollowSets(g.Productions, fst, g.Start)
	if err != nil {
		t.Fatalf("ComputeFollowSets: %v", err)
	}

	add := NewTerminal("add")
	mul := NewTerminal("mul")
	rparen := NewTerminal("rparen")

	exprFollow, err := flw.Of(NewNonTerminal("expr"))
	if err != nil {
		t.Fatal(err)
	}
	if !exprFollow.EOF {
		t.Error("FOLLOW(expr) should contain end-of-input")
	}
	if !containsSymbol(exprFollow.Symbols, add) || !containsSymbol(exprFollow.Symbols, rparen) {
		t.Errorf("FOLLOW(expr) = %v, want it to contain add and rparen", exprFollow.Symbols)
	}

	termFollow, err := flw.Of(NewNonTerminal("term"))
	if err != nil {
		t.Fatal(err)
	}
	if !containsSymbol(termFollow.Symbols, add) || !containsSymbol(termFollow.Symbols, mul) || !containsSymbol(termFollow.Symbols, rparen) {
		t.Errorf("FOLLOW(term) = %v, want it to contain add, mul, and rparen", termFollow.Symbols)
	}
	if !termFollow.EOF {
		t.Error("FOLLOW(term) should contain end-of-input, inherited from FOLLOW(expr)")
	}
}

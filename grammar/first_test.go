package grammar

import "testing"

func containsSymbol(set map[Symbol]struct{}, sym Symbol) bool {
	_, ok := set[sym]
	return ok
}

func TestComputeFirstSets(t *testing.T) {
	g := arithGrammar(t)
	fst, err := ComputeFirstSets(g.Productions)
	if err != nil {
		t.Fatalf("ComputeFirstSets: %v", err)
	}

	lparen := NewTerminal("lparen")
	id := NewTerminal("id")

	for _, nt := range []string{"expr", "term", "factor"} {
		e := fst.Of(NewNonTerminal(nt))
		if e == nil {
			t.Fatalf("no FIRST entry for %s", nt)
		}
		if !containsSymbol(e.Symbols, lparen) || !containsSymbol(e.Symbols, id) {
			t.Errorf("FIRST(%s) = %v, want it to contain lparen and id", nt, e.Symbols)
		}
		if e.Empty {
			t.Errorf("FIRST(%s) should not derive empty", nt)
		}
	}
}

func TestComputeFirstSetsWithEmptyProduction(t *testing.T) {
	s := NewNonTerminal("s")
	a := NewNonTerminal("a")
	x := NewTerminal("x")

	b := NewBuilder(s)
	b.AddProduction(s, []Symbol{a, x})
	b.AddProduction(a, []Symbol{x})
	b.AddProduction(a, nil)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	fst, err := ComputeFirstSets(g.Productions)
	if err != nil {
		t.Fatalf("ComputeFirstSets: %v", err)
	}

	aEntry := fst.Of(a)
	if !aEntry.Empty {
		t.Error("FIRST(a) should derive empty")
	}
	if !containsSymbol(aEntry.Symbols, x) {
		t.Error("FIRST(a) should contain x")
	}

	sEntry := fst.Of(s)
	if !containsSymbol(sEntry.Symbols, x) {
		t.Error("FIRST(s) should contain x, inherited through a's empty alternative")
	}
	if sEntry.Empty {
		t.Error("FIRST(s) should not derive empty: s always has a trailing x")
	}
}

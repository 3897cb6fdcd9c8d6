package grammar

import "testing"

// arithGrammar builds the classic left-recursive expression grammar used
// throughout the LALR test suite:
//
//	expr   -> expr add term | term
//	term   -> term mul factor | factor
//	factor -> lparen expr rparen | id
func arithGrammar(t *testing.T) *Grammar {
	t.Helper()

	expr := NewNonTerminal("expr")
	term := NewNonTerminal("term")
	factor := NewNonTerminal("factor")
	add := NewTerminal("add")
	mul := NewTerminal("mul")
	lparen := NewTerminal("lparen")
	rparen := NewTerminal("rparen")
	id := NewTerminal("id")

	b := NewBuilder(expr)
	b.AddProduction(expr, []Symbol{expr, add, term})
	b.AddProduction(expr, []Symbol{term})
	b.AddProduction(term, []Symbol{term, mul, factor})
	b.AddProduction(term, []Symbol{factor})
	b.AddProduction(factor, []Symbol{lparen, expr, rparen})
	b.AddProduction(factor, []Symbol{id})

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestBuildRejectsEmptyGrammar(t *testing.T) {
	b := NewBuilder(NewNonTerminal("expr"))
	if _, err := b.Build(); err == nil {
		t.Fatal("expected an error for a grammar with no productions")
	}
}

func TestBuildRejectsUnreachableProduction(t *testing.T) {
	expr := NewNonTerminal("expr")
	id := NewTerminal("id")
	unused := NewNonTerminal("unused")

	b := NewBuilder(expr)
	b.AddProduction(expr, []Symbol{id})
	b.AddProduction(unused, []Symbol{id})

	if _, err := b.Build(); err == nil {
		t.Fatal("expected an error for an unreachable non-terminal")
	}
}

func TestBuildRejectsDuplicateProduction(t *testing.T) {
	expr := NewNonTerminal("expr")
	id := NewTerminal("id")

	b := NewBuilder(expr)
	b.AddProduction(expr, []Symbol{id})
	b.AddProduction(expr, []Symbol{id})

	if _, err := b.Build(); err == nil {
		t.Fatal("expected an error for a duplicate production")
	}
}

func TestBuildAugmentsStart(t *testing.T) {
	g := arithGrammar(t)
	all := g.Productions.All()
	if all[0].LHS != g.AugStart {
		t.Fatalf("expected the first production to be the augmenting rule, got LHS %v", all[0].LHS)
	}
	if len(all[0].RHS) != 1 || all[0].RHS[0] != g.Start {
		t.Fatalf("expected the augmenting rule to be %v -> %v, got RHS %v", g.AugStart, g.Start, all[0].RHS)
	}
}

func TestProductionNumbersAreDeclarationOrder(t *testing.T) {
	g := arithGrammar(t)
	for i, p := range g.Productions.All() {
		if p.Num != i+1 {
			t.Errorf("production %d (%v) has Num %d, want %d", i, p, p.Num, i+1)
		}
	}
}

package lacc

import (
	"github.com/haleyrc/lacc/grammar"
	"github.com/haleyrc/lacc/lr"
	"github.com/haleyrc/lacc/runtime"
)

// Rule is one grammar production, the unit BuildParser assembles into a
// grammar.Grammar before running the LALR(1) pipeline.
type Rule struct {
	LHS grammar.Symbol
	RHS []grammar.Symbol
}

// BuildParser runs the full parser-generator pipeline over start and rules:
// build the grammar (rejecting empty, unreachable, or duplicate
// productions), compute FIRST sets, build the canonical LR(1) automaton,
// and merge it into an LALR(1) ACTION/GOTO table. Any shift/reduce or
// reduce/reduce conflicts encountered are resolved per the default policy
// (shift wins; the earlier-declared production wins) and returned alongside
// the table rather than as an error, since spec.md §7 treats conflicts as
// data, not a failure.
func BuildParser(start grammar.Symbol, rules []Rule) (*grammar.Grammar, *lr.Table, error) {
	b := grammar.NewBuilder(start)
	for _, r := range rules {
		b.AddProduction(r.LHS, r.RHS)
	}
	g, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	first, err := grammar.ComputeFirstSets(g.Productions)
	if err != nil {
		return nil, nil, err
	}

	automaton, err := lr.BuildLR1(g, first)
	if err != nil {
		return nil, nil, err
	}

	table, err := lr.BuildLALR(automaton)
	if err != nil {
		return nil, nil, err
	}

	return g, table, nil
}

// Parse runs table's shift/reduce engine over tokens, which must end with
// grammar.EndOfInput.
func Parse(table *lr.Table, tokens []grammar.Symbol, onReduce runtime.ReduceFunc) (bool, error) {
	return runtime.Run(table, tokens, onReduce)
}

// FirstFollow computes g's FIRST and FOLLOW sets, the firstFollow operation
// of the External Interfaces list.
func FirstFollow(g *grammar.Grammar) (*grammar.FirstSet, *grammar.FollowSet, error) {
	first, err := grammar.ComputeFirstSets(g.Productions)
	if err != nil {
		return nil, nil, err
	}
	follow, err := grammar.ComputeFollowSets(g.Productions, first, g.Start)
	if err != nil {
		return nil, nil, err
	}
	return first, follow, nil
}

// Package lr builds the canonical LR(1) automaton for a grammar, merges
// its states by LR(0) core into an LALR(1) automaton, and fills the
// resulting ACTION/GOTO tables, recording every shift/reduce and
// reduce/reduce conflict it resolves along the way (components 8 and 9 of
// the component table).
package lr

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/haleyrc/lacc/grammar"
)

// Item is a canonical LR(1) item: a production with a dot position and a
// single lookahead terminal. Item is a plain comparable struct — like
// grammar.Symbol, its equality is exactly what Go's == already gives a
// struct of comparable fields, so there's no need for the teacher's
// sha256-keyed item identifiers.
type Item struct {
	Prod      *grammar.Production
	Dot       int
	Lookahead grammar.Symbol
}

// DottedSymbol is the grammar symbol immediately to the right of the dot,
// or the zero Symbol if the dot is at the end of the production.
func (it Item) DottedSymbol() grammar.Symbol {
	if it.Dot >= len(it.Prod.RHS) {
		return grammar.Symbol{}
	}
	return it.Prod.RHS[it.Dot]
}

func (it Item) IsReducible() bool { return it.Dot == len(it.Prod.RHS) }

// Advance returns the item with the dot moved one position to the right.
func (it Item) Advance() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

func (it Item) String() string {
	var b []byte
	b = append(b, it.Prod.LHS.Name...)
	b = append(b, " ->"...)
	for i, sym := range it.Prod.RHS {
		if i == it.Dot {
			b = append(b, " ."...)
		}
		b = append(b, ' ')
		b = append(b, sym.Name...)
	}
	if it.Dot == len(it.Prod.RHS) {
		b = append(b, " ."...)
	}
	return fmt.Sprintf("%s, %s", b, it.Lookahead.Name)
}

// Core is an item stripped of its lookahead: two canonical LR(1) states
// have the same LR(0) core exactly when LALR(1) kernel merging combines
// them into one state.
type Core struct {
	Prod *grammar.Production
	Dot  int
}

func (it Item) Core() Core { return Core{Prod: it.Prod, Dot: it.Dot} }

// Kernel is the sorted, deduplicated set of items that seed a state:
// either the single initial item S' -> . S, $ or the items produced by
// moving the dot across a symbol from some other state. Two kernels
// describe the same canonical LR(1) state iff their item sets are equal.
type Kernel string

// kernelOf builds a Kernel key from items, which must already be
// deduplicated; the key is order-independent because kernelOf sorts the
// items' string forms before joining.
func kernelOf(items []Item) Kernel {
	strs := make([]string, len(items))
	for i, it := range items {
		strs[i] = it.String()
	}
	slices.Sort(strs)
	var b []byte
	for i, s := range strs {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, s...)
	}
	return Kernel(b)
}

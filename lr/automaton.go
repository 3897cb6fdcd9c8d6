package lr

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"golang.org/x/exp/slices"

	"github.com/haleyrc/lacc/grammar"
)

// StateID addresses a state of the canonical LR(1) collection.
type StateID int

// State is one canonical LR(1) automaton state: its item set (kernel plus
// closure) and its transition function over grammar symbols.
type State struct {
	ID     StateID
	Items  []Item
	Kernel []Item
	Next   map[grammar.Symbol]StateID
}

// Automaton is the canonical LR(1) collection built by BuildLR1: every
// state reachable from the item set for the augmented start production.
type Automaton struct {
	Start  StateID
	States []*State
}

func (a *Automaton) State(id StateID) *State { return a.States[id] }

// closure computes the closure of a kernel item set: for every item with
// the dot before a non-terminal A, add A -> . beta, b for every production
// A -> beta and every terminal b in FIRST(gamma lookahead), per the
// standard canonical-LR(1) closure operation.
func closure(items []Item, prods *grammar.ProductionSet, first *grammar.FirstSet) ([]Item, error) {
	seen := map[Item]struct{}{}
	var result []Item
	worklist := linkedlistqueue.New()
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		result = append(result, it)
		worklist.Enqueue(it)
	}

	for !worklist.Empty() {
		v, _ := worklist.Dequeue()
		it := v.(Item)
		sym := it.DottedSymbol()
		if sym == (grammar.Symbol{}) || sym.IsTerminal() {
			continue
		}

		lookaheads, err := lookaheadsFor(it, prods, first)
		if err != nil {
			return nil, err
		}

		for _, prod := range prods.FindByLHS(sym) {
			for la := range lookaheads {
				newItem := Item{Prod: prod, Dot: 0, Lookahead: la}
				if _, ok := seen[newItem]; ok {
					continue
				}
				seen[newItem] = struct{}{}
				result = append(result, newItem)
				worklist.Enqueue(newItem)
			}
		}
	}
	return result, nil
}

// lookaheadsFor computes the set of terminals that follow the dotted
// non-terminal of it within its own production, falling back to it's own
// lookahead when the remaining suffix can vanish.
func lookaheadsFor(it Item, prods *grammar.ProductionSet, first *grammar.FirstSet) (map[grammar.Symbol]struct{}, error) {
	entry, err := first.FindFrom(it.Prod, it.Dot+1)
	if err != nil {
		return nil, err
	}
	out := map[grammar.Symbol]struct{}{}
	for sym := range entry.Symbols {
		out[sym] = struct{}{}
	}
	if entry.Empty {
		out[it.Lookahead] = struct{}{}
	}
	return out, nil
}

// gotoState computes GOTO(items, sym): the kernel of the state reached by
// shifting sym from a state whose item set is items.
func gotoState(items []Item, sym grammar.Symbol) []Item {
	var moved []Item
	for _, it := range items {
		if it.DottedSymbol() == sym {
			moved = append(moved, it.Advance())
		}
	}
	return moved
}

// BuildLR1 constructs the canonical LR(1) collection for the grammar's
// augmented start production, with the initial lookahead set to
// grammar.EndOfInput.
func BuildLR1(g *grammar.Grammar, first *grammar.FirstSet) (*Automaton, error) {
	startProds := g.Productions.FindByLHS(g.AugStart)
	if len(startProds) != 1 {
		return nil, fmt.Errorf("lr: augmented start symbol must have exactly one production, found %d", len(startProds))
	}
	startItem := Item{Prod: startProds[0], Dot: 0, Lookahead: grammar.EndOfInput}

	a := &Automaton{}
	known := map[Kernel]*State{}

	newState := func(kernel []Item) (*State, error) {
		items, err := closure(kernel, g.Productions, first)
		if err != nil {
			return nil, err
		}
		s := &State{ID: StateID(len(a.States)), Items: items, Kernel: kernel}
		a.States = append(a.States, s)
		known[kernelOf(kernel)] = s
		return s, nil
	}

	start, err := newState([]Item{startItem})
	if err != nil {
		return nil, err
	}
	a.Start = start.ID

	worklist := linkedlistqueue.New()
	worklist.Enqueue(start)

	for !worklist.Empty() {
		v, _ := worklist.Dequeue()
		s := v.(*State)

		symSet := map[grammar.Symbol]struct{}{}
		for _, it := range s.Items {
			if sym := it.DottedSymbol(); sym != (grammar.Symbol{}) {
				symSet[sym] = struct{}{}
			}
		}
		var syms []grammar.Symbol
		for sym := range symSet {
			syms = append(syms, sym)
		}
		slices.SortFunc(syms, func(a, b grammar.Symbol) bool {
			if a.Kind != b.Kind {
				return a.Kind < b.Kind
			}
			return a.Name < b.Name
		})

		for _, sym := range syms {
			kernel := gotoState(s.Items, sym)
			key := kernelOf(kernel)
			target, exists := known[key]
			if !exists {
				target, err = newState(kernel)
				if err != nil {
					return nil, err
				}
				worklist.Enqueue(target)
			}
			if s.Next == nil {
				s.Next = map[grammar.Symbol]StateID{}
			}
			s.Next[sym] = target.ID
		}
	}

	return a, nil
}

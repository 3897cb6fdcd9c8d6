package grammar

import "fmt"

// FirstEntry is one non-terminal's FIRST set: the terminals that can begin
// a string it derives, plus whether it can derive the empty string.
type FirstEntry struct {
	Symbols map[Symbol]struct{}
	Empty   bool
}

func newFirstEntry() *FirstEntry {
	return &FirstEntry{Symbols: map[Symbol]struct{}{}}
}

func (e *FirstEntry) add(sym Symbol) bool {
	if _, ok := e.Symbols[sym]; ok {
		return false
	}
	e.Symbols[sym] = struct{}{}
	return true
}

func (e *FirstEntry) addEmpty() bool {
	if e.Empty {
		return false
	}
	e.Empty = true
	return true
}

func (e *FirstEntry) mergeExceptEmpty(target *FirstEntry) bool {
	if target == nil {
		return false
	}
	changed := false
	for sym := range target.Symbols {
		if e.add(sym) {
			changed = true
		}
	}
	return changed
}

// FirstSet maps each non-terminal to its FIRST entry.
type FirstSet struct {
	set map[Symbol]*FirstEntry
}

func newFirstSet(prods *ProductionSet) *FirstSet {
	fst := &FirstSet{set: map[Symbol]*FirstEntry{}}
	for _, prod := range prods.All() {
		if _, ok := fst.set[prod.LHS]; ok {
			continue
		}
		fst.set[prod.LHS] = newFirstEntry()
	}
	return fst
}

func (fst *FirstSet) Of(sym Symbol) *FirstEntry { return fst.set[sym] }

// FindFrom computes FIRST of the RHS suffix of prod starting at index
// head — the set of terminals that can appear right after the symbols
// already matched to the left of head, used by FOLLOW and by the LR
// closure operation to compute lookaheads for dotted items.
func (fst *FirstSet) FindFrom(prod *Production, head int) (*FirstEntry, error) {
	entry := newFirstEntry()
	if len(prod.RHS) <= head {
		entry.addEmpty()
		return entry, nil
	}
	for _, sym := range prod.RHS[head:] {
		if sym.IsTerminal() {
			entry.add(sym)
			return entry, nil
		}
		e := fst.Of(sym)
		if e == nil {
			return nil, fmt.Errorf("grammar: no FIRST entry for symbol %s", sym)
		}
		for s := range e.Symbols {
			entry.add(s)
		}
		if !e.Empty {
			return entry, nil
		}
	}
	entry.addEmpty()
	return entry, nil
}

// ComputeFirstSets runs the fixed-point iteration of §4.7: repeatedly
// applies the FIRST production rule to every production until no entry
// grows, then returns the closed sets.
func ComputeFirstSets(prods *ProductionSet) (*FirstSet, error) {
	fst := newFirstSet(prods)
	for {
		more := false
		for _, prod := range prods.All() {
			e := fst.Of(prod.LHS)
			changed, err := applyProductionToFirst(fst, e, prod)
			if err != nil {
				return nil, err
			}
			if changed {
				more = true
			}
		}
		if !more {
			break
		}
	}
	return fst, nil
}

func applyProductionToFirst(fst *FirstSet, acc *FirstEntry, prod *Production) (bool, error) {
	if prod.IsEmpty() {
		return acc.addEmpty(), nil
	}
	for _, sym := range prod.RHS {
		if sym.IsTerminal() {
			return acc.add(sym), nil
		}
		e := fst.Of(sym)
		if e == nil {
			return false, fmt.Errorf("grammar: no FIRST entry for symbol %s", sym)
		}
		changed := acc.mergeExceptEmpty(e)
		if !e.Empty {
			return changed, nil
		}
	}
	return acc.addEmpty(), nil
}

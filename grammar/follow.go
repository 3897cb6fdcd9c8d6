package grammar

import "fmt"

// FollowEntry is one non-terminal's FOLLOW set: the terminals that can
// appear immediately after it in some derivation, plus whether end-of-input
// can follow it directly.
type FollowEntry struct {
	Symbols map[Symbol]struct{}
	EOF     bool
}

func newFollowEntry() *FollowEntry {
	return &FollowEntry{Symbols: map[Symbol]struct{}{}}
}

func (e *FollowEntry) add(sym Symbol) bool {
	if _, ok := e.Symbols[sym]; ok {
		return false
	}
	e.Symbols[sym] = struct{}{}
	return true
}

func (e *FollowEntry) addEOF() bool {
	if e.EOF {
		return false
	}
	e.EOF = true
	return true
}

func (e *FollowEntry) merge(fst *FirstEntry, flw *FollowEntry) bool {
	changed := false
	if fst != nil {
		for sym := range fst.Symbols {
			if e.add(sym) {
				changed = true
			}
		}
	}
	if flw != nil {
		for sym := range flw.Symbols {
			if e.add(sym) {
				changed = true
			}
		}
		if flw.EOF && e.addEOF() {
			changed = true
		}
	}
	return changed
}

// FollowSet maps each non-terminal to its FOLLOW entry.
type FollowSet struct {
	set map[Symbol]*FollowEntry
}

func newFollowSet(prods *ProductionSet) *FollowSet {
	flw := &FollowSet{set: map[Symbol]*FollowEntry{}}
	for _, prod := range prods.All() {
		if _, ok := flw.set[prod.LHS]; ok {
			continue
		}
		flw.set[prod.LHS] = newFollowEntry()
	}
	return flw
}

func (flw *FollowSet) Of(sym Symbol) (*FollowEntry, error) {
	e, ok := flw.set[sym]
	if !ok {
		return nil, fmt.Errorf("grammar: no FOLLOW entry for symbol %s", sym)
	}
	return e, nil
}

// ComputeFollowSets runs the fixed-point iteration of §4.7 over prods,
// seeding start's FOLLOW with end-of-input per the standard construction.
func ComputeFollowSets(prods *ProductionSet, first *FirstSet, start Symbol) (*FollowSet, error) {
	flw := newFollowSet(prods)
	for {
		more := false
		e, err := flw.Of(start)
		if err != nil {
			return nil, err
		}
		if e.addEOF() {
			more = true
		}

		for _, prod := range prods.All() {
			for i, sym := range prod.RHS {
				if sym.IsTerminal() {
					continue
				}
				e, err := flw.Of(sym)
				if err != nil {
					return nil, err
				}
				fst, err := first.FindFrom(prod, i+1)
				if err != nil {
					return nil, err
				}
				if e.merge(fst, nil) {
					more = true
				}
				if fst.Empty {
					lhsFlw, err := flw.Of(prod.LHS)
					if err != nil {
						return nil, err
					}
					if e.merge(nil, lhsFlw) {
						more = true
					}
				}
			}
		}
		if !more {
			break
		}
	}
	return flw, nil
}

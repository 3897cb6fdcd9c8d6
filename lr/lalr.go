package lr

import (
	"golang.org/x/exp/slices"

	"github.com/haleyrc/lacc/grammar"
)

// mergedID groups canonical LR(1) states sharing an LR(0) core: the
// symbol-agnostic string built from the states' sorted Core values.
type mergedID string

func coreSetOf(items []Item) mergedID {
	cores := make([]string, 0, len(items))
	seen := map[Core]struct{}{}
	for _, it := range items {
		c := it.Core()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cores = append(cores, coreString(c))
	}
	slices.Sort(cores)
	var b []byte
	for i, c := range cores {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, c...)
	}
	return mergedID(b)
}

func coreString(c Core) string {
	it := Item{Prod: c.Prod, Dot: c.Dot}
	s := it.String()
	// Item.String appends ", <lookahead>"; strip it since Core has none.
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ',' {
			return s[:i]
		}
	}
	return s
}

// BuildLALR merges the canonical LR(1) collection's states by LR(0) core
// into an LALR(1) automaton and fills its ACTION/GOTO tables, applying the
// default conflict policy: shift wins over reduce, and among competing
// reduces the production declared earliest in the grammar wins.
func BuildLALR(a *Automaton) (*Table, error) {
	groupOf := map[StateID]mergedID{}
	groupItems := map[mergedID][]Item{}
	groupOrder := []mergedID{}
	for _, s := range a.States {
		id := coreSetOf(s.Items)
		groupOf[s.ID] = id
		if _, ok := groupItems[id]; !ok {
			groupOrder = append(groupOrder, id)
		}
		groupItems[id] = mergeLookaheads(groupItems[id], s.Items)
	}

	idFor := map[mergedID]StateID{}
	for i, id := range groupOrder {
		idFor[id] = StateID(i)
	}

	startID := idFor[groupOf[a.Start]]
	table := newTable(startID)

	// mergedNext[m][sym] = merged target state, derived from any one
	// canonical state in group m (all states sharing a core have
	// isomorphic transition functions on the shared symbols).
	mergedNext := make([]map[grammar.Symbol]StateID, len(groupOrder))
	for _, s := range a.States {
		m := idFor[groupOf[s.ID]]
		if mergedNext[m] == nil {
			mergedNext[m] = map[grammar.Symbol]StateID{}
		}
		for sym, target := range s.Next {
			mergedNext[m][sym] = idFor[groupOf[target]]
		}
	}

	for _, id := range groupOrder {
		state := idFor[id]
		items := groupItems[id]

		for sym, target := range mergedNext[state] {
			if sym.IsTerminal() {
				table.setAction(state, sym, Action{Kind: ActionShift, Target: target})
			} else {
				table.setGoto(state, sym, target)
			}
		}

		for _, it := range items {
			if !it.IsReducible() {
				continue
			}
			if isAugmentingProduction(it.Prod) && it.Lookahead == grammar.EndOfInput {
				table.setAction(state, grammar.EndOfInput, Action{Kind: ActionAccept})
				continue
			}
			applyReduce(table, state, it.Lookahead, it.Prod)
		}
	}

	return table, nil
}

// isAugmentingProduction reports whether prod is the S' -> S rule: its LHS
// name carries the "<start:" marker that grammar.StartOf produces.
func isAugmentingProduction(prod *grammar.Production) bool {
	name := prod.LHS.Name
	return len(name) > 7 && name[:7] == "<start:"
}

func mergeLookaheads(existing []Item, incoming []Item) []Item {
	byCore := map[Core]map[grammar.Symbol]*grammar.Production{}
	order := []Core{}
	add := func(it Item) {
		c := it.Core()
		if _, ok := byCore[c]; !ok {
			byCore[c] = map[grammar.Symbol]*grammar.Production{}
			order = append(order, c)
		}
		byCore[c][it.Lookahead] = it.Prod
	}
	for _, it := range existing {
		add(it)
	}
	for _, it := range incoming {
		add(it)
	}

	var result []Item
	for _, c := range order {
		for la, prod := range byCore[c] {
			result = append(result, Item{Prod: prod, Dot: c.Dot, Lookahead: la})
		}
	}
	return result
}

func applyReduce(table *Table, state StateID, sym grammar.Symbol, prod *grammar.Production) {
	existing := table.LookupAction(state, sym)
	switch existing.Kind {
	case ActionError:
		table.setAction(state, sym, Action{Kind: ActionReduce, Prod: prod})
	case ActionShift:
		table.ShiftReduceConflicts = append(table.ShiftReduceConflicts, ShiftReduceConflict{
			State:      state,
			Symbol:     sym,
			ShiftTo:    existing.Target,
			ReduceProd: prod,
			ResolvedBy: ResolvedByShiftPreference,
		})
		// Shift wins; the existing cell is left untouched.
	case ActionReduce:
		winner, loser := existing.Prod, prod
		if prod.Num < winner.Num {
			winner, loser = prod, existing.Prod
			table.setAction(state, sym, Action{Kind: ActionReduce, Prod: winner})
		}
		table.ReduceReduceConflicts = append(table.ReduceReduceConflicts, ReduceReduceConflict{
			State:      state,
			Symbol:     sym,
			Winner:     winner,
			Loser:      loser,
			ResolvedBy: ResolvedByProductionOrder,
		})
	case ActionAccept:
		// The accept action on end-of-input always wins; reducing there
		// as well would be redundant since the augmenting production has
		// no continuation.
	}
}

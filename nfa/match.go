package nfa

// Match reports whether s is accepted by n, walking the NFA directly rather
// than through a DFA. It exists so the round-trip property in spec.md §8
// (matches(buildNFA(r), s) == matches(minimize(determinize(buildNFA(r))), s))
// has an NFA-side oracle to compare a DFA-side simulation against.
func Match(n *NFA, s string) bool {
	current := EpsilonClosure(n, map[StateID]struct{}{n.Start: {}})
	for _, r := range s {
		next := map[StateID]struct{}{}
		for id := range current {
			for _, t := range n.States[id].Transitions {
				if !t.Epsilon && t.Label == r {
					next[t.Target] = struct{}{}
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		current = EpsilonClosure(n, next)
	}
	for id := range current {
		if n.States[id].Accepting {
			return true
		}
	}
	return false
}

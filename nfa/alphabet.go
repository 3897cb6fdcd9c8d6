package nfa

import "golang.org/x/exp/slices"

// Alphabet collects every rune labeling a non-epsilon transition in n,
// deduplicated and sorted, for callers (dfa.Determinize, the lacc façade)
// that need a stable enumeration order rather than an unordered set.
func Alphabet(n *NFA) []rune {
	seen := map[rune]struct{}{}
	for _, s := range n.States {
		for _, t := range s.Transitions {
			if t.Epsilon {
				continue
			}
			seen[t.Label] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

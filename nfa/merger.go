package nfa

import "fmt"

// Merge unions a non-empty list of tagged NFAs under a fresh start state
// with an epsilon transition to each input NFA's start, per spec.md §4.3.
// Each input NFA's end state keeps its own accepting flag and token tag.
// Merging a single NFA returns it unchanged.
func Merge(nfas []*NFA) (*NFA, error) {
	if len(nfas) == 0 {
		return nil, fmt.Errorf("nfa: Merge requires at least one NFA")
	}
	if len(nfas) == 1 {
		return nfas[0], nil
	}

	var states []*State
	starts := make([]StateID, len(nfas))
	for i, n := range nfas {
		offset := StateID(len(states))
		starts[i] = n.Start + offset
		for _, s := range n.States {
			ns := &State{
				ID:        s.ID + offset,
				Accepting: s.Accepting,
				Token:     s.Token,
				hasToken:  s.hasToken,
			}
			for _, t := range s.Transitions {
				t.Target += offset
				ns.Transitions = append(ns.Transitions, t)
			}
			states = append(states, ns)
		}
	}

	start := &State{ID: StateID(len(states))}
	for _, s := range starts {
		start.Transitions = append(start.Transitions, Transition{Epsilon: true, Target: s})
	}
	states = append(states, start)

	return &NFA{States: states, Start: start.ID}, nil
}

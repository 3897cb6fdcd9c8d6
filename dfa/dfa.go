// Package dfa turns tagged NFAs into deterministic finite automata via
// subset construction (component 4), minimizes them by table-filling
// (component 5), and simulates them over input text with maximal-munch
// tokenization (component 6).
package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/haleyrc/lacc/nfa"
	"github.com/haleyrc/lacc/token"
)

// StateID addresses a state in a DFA's state list.
type StateID int

// State is one DFA node: a transition function, whether it accepts, and
// (when accepting) the token type it accepts.
type State struct {
	ID   StateID
	Next map[rune]StateID

	// nfaStates is the NFA-state-set this DFA state represents; two DFA
	// states with equal nfaStates are the same state, per spec.md §3's
	// subset-construction memoization invariant.
	nfaStates map[nfa.StateID]struct{}

	Accepting bool
	Token     token.Type
	hasToken  bool
}

// DFA is a start state plus every state reachable from it.
type DFA struct {
	Start  StateID
	States []*State
}

// State returns the state addressed by id.
func (d *DFA) State(id StateID) *State {
	return d.States[id]
}

func canonicalKey(states map[nfa.StateID]struct{}) string {
	ids := make([]int, 0, len(states))
	for id := range states {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

func move(n *nfa.NFA, states map[nfa.StateID]struct{}, c rune) map[nfa.StateID]struct{} {
	out := map[nfa.StateID]struct{}{}
	for id := range states {
		for _, t := range n.States[id].Transitions {
			if !t.Epsilon && t.Label == c {
				out[t.Target] = struct{}{}
			}
		}
	}
	return out
}

// dominantToken implements the token-priority disambiguation rule of
// spec.md §4.4 step 5: among the token-bearing NFA states in a set, the one
// with the minimum token id wins.
func dominantToken(n *nfa.NFA, states map[nfa.StateID]struct{}) (accepting bool, tok token.Type, has bool) {
	best := -1
	for id := range states {
		st := n.States[id]
		if !st.Accepting {
			continue
		}
		accepting = true
		if !st.HasToken() {
			continue
		}
		if best == -1 || st.Token.ID < best {
			best = st.Token.ID
			tok = st.Token
			has = true
		}
	}
	return accepting, tok, has
}

// Determinize runs subset construction over n restricted to alphabet,
// tagging each accepting DFA state per the token-priority rule.
func Determinize(n *nfa.NFA, alphabet []rune) *DFA {
	d := &DFA{}
	known := map[string]*State{}

	newState := func(nfaStates map[nfa.StateID]struct{}) *State {
		s := &State{ID: StateID(len(d.States)), nfaStates: nfaStates}
		s.Accepting, s.Token, s.hasToken = dominantToken(n, nfaStates)
		d.States = append(d.States, s)
		known[canonicalKey(nfaStates)] = s
		return s
	}

	startSet := nfa.EpsilonClosure(n, map[nfa.StateID]struct{}{n.Start: {}})
	start := newState(startSet)
	d.Start = start.ID

	worklist := linkedlistqueue.New()
	worklist.Enqueue(start)

	for !worklist.Empty() {
		item, _ := worklist.Dequeue()
		s := item.(*State)

		for _, c := range alphabet {
			moved := move(n, s.nfaStates, c)
			if len(moved) == 0 {
				continue
			}
			closure := nfa.EpsilonClosure(n, moved)
			key := canonicalKey(closure)
			target, exists := known[key]
			if !exists {
				target = newState(closure)
				worklist.Enqueue(target)
			}
			if s.Next == nil {
				s.Next = map[rune]StateID{}
			}
			s.Next[c] = target.ID
		}
	}

	return d
}

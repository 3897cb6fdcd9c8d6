// Package nfa builds nondeterministic finite automata from postfix regular
// expressions via Thompson construction (component 2) and merges tagged
// NFAs under a common start state (component 3).
package nfa

import "github.com/haleyrc/lacc/token"

// StateID addresses a state within one NFA's arena. Ids are scoped to a
// single build rather than process-global, so concurrent builds never
// interact — per spec.md §5, the one conventional piece of mutable state
// (a monotonically increasing id source) lives on the Builder, not as a
// package-level counter.
type StateID int

// Transition is a single outgoing edge: either an epsilon move or a
// single-character move to Target.
type Transition struct {
	Label   rune
	Epsilon bool
	Target  StateID
}

// State is one automaton node: its outgoing transitions, whether it accepts,
// and — for accepting states produced by a tagged compile — the token type
// it accepts.
type State struct {
	ID          StateID
	Transitions []Transition
	Accepting   bool
	Token       token.Type
	hasToken    bool
}

// SetToken marks s as accepting for tokenType.
func (s *State) SetToken(tokenType token.Type) {
	s.Token = tokenType
	s.hasToken = true
	s.Accepting = true
}

// HasToken reports whether s carries a token tag (as opposed to being
// accepting only because it is an untagged NFA's end state).
func (s *State) HasToken() bool {
	return s.hasToken
}

// Fragment is the (start, end) pair Thompson construction threads through
// the postfix stack.
type Fragment struct {
	Start StateID
	End   StateID
}

// Builder is a build-scoped arena of states. The automaton graph is
// intrinsically cyclic once * and + are compiled (that's the whole point of
// a loop), so states are addressed by index into the arena rather than by
// pointer; the arena itself, not any individual state, owns the memory.
type Builder struct {
	states []*State
}

// NewBuilder returns an empty, build-scoped state arena.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) newState() *State {
	s := &State{ID: StateID(len(b.states))}
	b.states = append(b.states, s)
	return s
}

// State returns the state addressed by id.
func (b *Builder) State(id StateID) *State {
	return b.states[id]
}

func (b *Builder) addEpsilon(from, to StateID) {
	b.states[from].Transitions = append(b.states[from].Transitions, Transition{Epsilon: true, Target: to})
}

func (b *Builder) addTransition(from StateID, label rune, to StateID) {
	b.states[from].Transitions = append(b.states[from].Transitions, Transition{Label: label, Target: to})
}

// Build closes the arena over frag's start/end into an NFA.
func (b *Builder) Build(frag Fragment) *NFA {
	return &NFA{States: b.states, Start: frag.Start, End: frag.End}
}

// NFA is an owned arena of states plus the start of the whole automaton.
// End is meaningful only for a single-pattern fragment (spec.md §3's
// (start, end) pair); a merged NFA (see Merge) has many accepting ends and
// leaves End at its zero value.
type NFA struct {
	States []*State
	Start  StateID
	End    StateID
}

// EpsilonClosure returns the smallest superset of states closed under
// epsilon transitions — the ε-closure(T) primitive both Thompson-NFA
// matching and subset construction (spec.md §4.4) are built on.
func EpsilonClosure(n *NFA, states map[StateID]struct{}) map[StateID]struct{} {
	closure := make(map[StateID]struct{}, len(states))
	var worklist []StateID
	for id := range states {
		closure[id] = struct{}{}
		worklist = append(worklist, id)
	}
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, t := range n.States[id].Transitions {
			if !t.Epsilon {
				continue
			}
			if _, seen := closure[t.Target]; seen {
				continue
			}
			closure[t.Target] = struct{}{}
			worklist = append(worklist, t.Target)
		}
	}
	return closure
}

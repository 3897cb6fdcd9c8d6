package dfa

import (
	"golang.org/x/exp/slices"
)

// Minimize reduces d to an equivalent DFA with the fewest states, by the
// table-filling algorithm of spec.md §4.5. It must never merge two
// accepting states that carry different token types, so minimization never
// changes which pattern a string is reported to match.
func Minimize(d *DFA, alphabet []rune) *DFA {
	states := reachable(d)
	n := len(states)
	idx := make(map[StateID]int, n)
	for i, s := range states {
		idx[s.ID] = i
	}

	distinguishable := make([][]bool, n)
	for i := range distinguishable {
		distinguishable[i] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if states[i].Accepting != states[j].Accepting {
				distinguishable[i][j] = true
			} else if states[i].Accepting && states[i].Token.ID != states[j].Token.ID {
				distinguishable[i][j] = true
			}
		}
	}

	for {
		changed := false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if distinguishable[i][j] {
					continue
				}
				if pairSplits(states[i], states[j], alphabet, idx, distinguishable) {
					distinguishable[i][j] = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !distinguishable[i][j] {
				ri, rj := find(i), find(j)
				if ri != rj {
					parent[ri] = rj
				}
			}
		}
	}

	classStates := map[int][]*State{}
	for i, s := range states {
		r := find(i)
		classStates[r] = append(classStates[r], s)
	}

	var roots []int
	for r := range classStates {
		roots = append(roots, r)
	}
	slices.SortFunc(roots, func(a, b int) bool {
		return minID(classStates[a]) < minID(classStates[b])
	})

	rootToNewID := make(map[int]StateID, len(roots))
	for newID, r := range roots {
		rootToNewID[r] = StateID(newID)
	}

	minimized := &DFA{}
	for _, r := range roots {
		ns := &State{ID: rootToNewID[r]}
		for _, m := range classStates[r] {
			if m.Accepting {
				ns.Accepting = true
				ns.Token = m.Token
				ns.hasToken = m.hasToken
			}
		}
		minimized.States = append(minimized.States, ns)
	}
	for _, r := range roots {
		rep := classStates[r][0]
		if len(rep.Next) == 0 {
			continue
		}
		ns := minimized.States[rootToNewID[r]]
		ns.Next = map[rune]StateID{}
		for c, target := range rep.Next {
			ns.Next[c] = rootToNewID[find(idx[target])]
		}
	}
	minimized.Start = rootToNewID[find(idx[d.Start])]
	return minimized
}

// pairSplits reports whether states p and q must be marked distinguishable
// this round: some symbol leads one of them but not the other, or leads
// both to a pair already known to be distinguishable.
func pairSplits(p, q *State, alphabet []rune, idx map[StateID]int, distinguishable [][]bool) bool {
	for _, c := range alphabet {
		tp, okp := p.Next[c]
		tq, okq := q.Next[c]
		if okp != okq {
			return true
		}
		if !okp {
			continue
		}
		if tp == tq {
			continue
		}
		pi, pj := idx[tp], idx[tq]
		if pi > pj {
			pi, pj = pj, pi
		}
		if distinguishable[pi][pj] {
			return true
		}
	}
	return false
}

func minID(states []*State) StateID {
	min := states[0].ID
	for _, s := range states[1:] {
		if s.ID < min {
			min = s.ID
		}
	}
	return min
}

// reachable returns every state reachable from d.Start, in deterministic BFS
// order (transitions visited in ascending rune order).
func reachable(d *DFA) []*State {
	start := d.State(d.Start)
	visited := map[StateID]bool{start.ID: true}
	order := []*State{start}
	queue := []*State{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		chars := make([]rune, 0, len(s.Next))
		for c := range s.Next {
			chars = append(chars, c)
		}
		slices.Sort(chars)
		for _, c := range chars {
			t := s.Next[c]
			if visited[t] {
				continue
			}
			visited[t] = true
			ts := d.State(t)
			order = append(order, ts)
			queue = append(queue, ts)
		}
	}
	return order
}

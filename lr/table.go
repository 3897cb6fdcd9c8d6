package lr

import "github.com/haleyrc/lacc/grammar"

// ActionKind tags what an ACTION table cell tells the parsing engine to
// do on a given (state, terminal) pair.
type ActionKind int

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one ACTION table cell. For ActionShift, Target holds the state
// to shift to; for ActionReduce, Prod holds the production to reduce by.
type Action struct {
	Kind   ActionKind
	Target StateID
	Prod   *grammar.Production
}

// ResolvedBy records why a conflicting cell was resolved the way it was.
type ResolvedBy int

const (
	ResolvedByShiftPreference ResolvedBy = iota
	ResolvedByProductionOrder
)

// ShiftReduceConflict records a state/symbol cell where both a shift and a
// reduce were viable; the default policy prefers the shift.
type ShiftReduceConflict struct {
	State      StateID
	Symbol     grammar.Symbol
	ShiftTo    StateID
	ReduceProd *grammar.Production
	ResolvedBy ResolvedBy
}

// ReduceReduceConflict records a state/symbol cell where two different
// productions could both be reduced; the default policy keeps the one
// declared earliest in the grammar.
type ReduceReduceConflict struct {
	State      StateID
	Symbol     grammar.Symbol
	Winner     *grammar.Production
	Loser      *grammar.Production
	ResolvedBy ResolvedBy
}

// Table is the ACTION/GOTO table pair produced by BuildLALR, plus every
// conflict encountered while filling it.
type Table struct {
	Action map[StateID]map[grammar.Symbol]Action
	GoTo   map[StateID]map[grammar.Symbol]StateID
	Start  StateID

	ShiftReduceConflicts  []ShiftReduceConflict
	ReduceReduceConflicts []ReduceReduceConflict
}

func newTable(start StateID) *Table {
	return &Table{
		Action: map[StateID]map[grammar.Symbol]Action{},
		GoTo:   map[StateID]map[grammar.Symbol]StateID{},
		Start:  start,
	}
}

// LookupAction returns the ACTION cell for (state, sym), defaulting to
// ActionError when no cell was ever written.
func (t *Table) LookupAction(state StateID, sym grammar.Symbol) Action {
	if row, ok := t.Action[state]; ok {
		if a, ok := row[sym]; ok {
			return a
		}
	}
	return Action{Kind: ActionError}
}

// LookupGoto returns the GOTO target for (state, nonTerminal), and false
// if the cell is empty.
func (t *Table) LookupGoto(state StateID, sym grammar.Symbol) (StateID, bool) {
	row, ok := t.GoTo[state]
	if !ok {
		return 0, false
	}
	target, ok := row[sym]
	return target, ok
}

func (t *Table) setAction(state StateID, sym grammar.Symbol, a Action) {
	row, ok := t.Action[state]
	if !ok {
		row = map[grammar.Symbol]Action{}
		t.Action[state] = row
	}
	row[sym] = a
}

func (t *Table) setGoto(state StateID, sym grammar.Symbol, target StateID) {
	row, ok := t.GoTo[state]
	if !ok {
		row = map[grammar.Symbol]StateID{}
		t.GoTo[state] = row
	}
	row[sym] = target
}

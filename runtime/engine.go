// Package runtime drives an lr.Table over a token stream with the
// shift/reduce stack automaton of component 10: push states, pop them on
// reduction, and consult GOTO to find where a reduced non-terminal lands,
// reading the lr package's in-memory tables directly.
package runtime

import (
	"fmt"

	"github.com/haleyrc/lacc/grammar"
	"github.com/haleyrc/lacc/lr"
)

// ParseError reports that ACTION or GOTO had no entry for the state the
// engine was in, per §7's error taxonomy.
type ParseError struct {
	State  lr.StateID
	Symbol grammar.Symbol
	Pos    int
	IsGoto bool
}

func (e *ParseError) Error() string {
	if e.IsGoto {
		return fmt.Sprintf("runtime: no GOTO entry for state %d on %v", e.State, e.Symbol)
	}
	return fmt.Sprintf("runtime: no ACTION entry for state %d on %v at input position %d", e.State, e.Symbol, e.Pos)
}

// ReduceFunc is invoked once per reduction, after the engine has popped the
// production's RHS states but before it pushes the GOTO target; it receives
// the production being reduced by and the 0-based position of the lookahead
// that triggered the reduction. The shift/reduce engine itself carries no
// semantic-value stack — a caller that needs one drives it from here.
type ReduceFunc func(prod *grammar.Production, lookaheadPos int)

// Run executes the table-driven shift/reduce loop of §4.10 over tokens,
// which must end with grammar.EndOfInput. It returns true if the input was
// accepted, or a *ParseError describing the first lookup failure.
func Run(table *lr.Table, tokens []grammar.Symbol, onReduce ReduceFunc) (bool, error) {
	stack := []lr.StateID{table.Start}
	ip := 0

	for {
		if ip >= len(tokens) {
			return false, fmt.Errorf("runtime: token stream must end with grammar.EndOfInput")
		}
		state := stack[len(stack)-1]
		sym := tokens[ip]

		action := table.LookupAction(state, sym)
		switch action.Kind {
		case lr.ActionShift:
			stack = append(stack, action.Target)
			ip++
		case lr.ActionReduce:
			n := len(action.Prod.RHS)
			stack = stack[:len(stack)-n]
			back := stack[len(stack)-1]
			target, ok := table.LookupGoto(back, action.Prod.LHS)
			if !ok {
				return false, &ParseError{State: back, Symbol: action.Prod.LHS, Pos: ip, IsGoto: true}
			}
			if onReduce != nil {
				onReduce(action.Prod, ip)
			}
			stack = append(stack, target)
		case lr.ActionAccept:
			return true, nil
		case lr.ActionError:
			return false, &ParseError{State: state, Symbol: sym, Pos: ip}
		}
	}
}

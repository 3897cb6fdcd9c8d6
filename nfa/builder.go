package nfa

import (
	"fmt"

	"github.com/haleyrc/lacc/regex"
	"github.com/haleyrc/lacc/token"
)

// Compile runs Thompson construction over an already-postfixed pattern and
// returns an untagged NFA (its end state accepts but carries no token).
func Compile(postfix []rune) (*NFA, error) {
	b := NewBuilder()
	frag, err := compile(b, postfix)
	if err != nil {
		return nil, err
	}
	b.State(frag.End).Accepting = true
	return b.Build(frag), nil
}

// CompileTagged normalizes pattern to postfix, runs Thompson construction,
// and tags the resulting fragment's end state with tokenType, producing the
// TaggedNFA the External Interfaces list calls compilePattern.
func CompileTagged(pattern string, tokenType token.Type) (*NFA, error) {
	postfix, err := regex.ToPostfix(pattern)
	if err != nil {
		return nil, err
	}
	b := NewBuilder()
	frag, err := compile(b, postfix)
	if err != nil {
		return nil, err
	}
	b.State(frag.End).SetToken(tokenType)
	return b.Build(frag), nil
}

// compile reads postfix left to right, maintaining a stack of fragments, per
// spec.md §4.2.
func compile(b *Builder, postfix []rune) (Fragment, error) {
	var stack []Fragment
	pop := func() Fragment {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]
		return f
	}
	need := func(n int, op string) error {
		if len(stack) < n {
			return &regex.MalformedPatternError{Reason: fmt.Sprintf("operator %q needs %d operand(s) but the stack has %d", op, n, len(stack))}
		}
		return nil
	}

	for _, r := range postfix {
		switch r {
		case regex.ConcatOp:
			if err := need(2, "·"); err != nil {
				return Fragment{}, err
			}
			right := pop()
			left := pop()
			b.addEpsilon(left.End, right.Start)
			stack = append(stack, Fragment{Start: left.Start, End: right.End})

		case '|':
			if err := need(2, "|"); err != nil {
				return Fragment{}, err
			}
			right := pop()
			left := pop()
			s, e := b.newState(), b.newState()
			b.addEpsilon(s.ID, left.Start)
			b.addEpsilon(s.ID, right.Start)
			b.addEpsilon(left.End, e.ID)
			b.addEpsilon(right.End, e.ID)
			stack = append(stack, Fragment{Start: s.ID, End: e.ID})

		case '*':
			if err := need(1, "*"); err != nil {
				return Fragment{}, err
			}
			n := pop()
			s, e := b.newState(), b.newState()
			b.addEpsilon(s.ID, e.ID)
			b.addEpsilon(s.ID, n.Start)
			b.addEpsilon(n.End, n.Start)
			b.addEpsilon(n.End, e.ID)
			stack = append(stack, Fragment{Start: s.ID, End: e.ID})

		case '+':
			if err := need(1, "+"); err != nil {
				return Fragment{}, err
			}
			n := pop()
			s, e := b.newState(), b.newState()
			b.addEpsilon(s.ID, n.Start)
			b.addEpsilon(n.End, n.Start)
			b.addEpsilon(n.End, e.ID)
			stack = append(stack, Fragment{Start: s.ID, End: e.ID})

		case '?':
			if err := need(1, "?"); err != nil {
				return Fragment{}, err
			}
			n := pop()
			s, e := b.newState(), b.newState()
			b.addEpsilon(s.ID, e.ID)
			b.addEpsilon(s.ID, n.Start)
			b.addEpsilon(n.End, e.ID)
			stack = append(stack, Fragment{Start: s.ID, End: e.ID})

		default:
			s, e := b.newState(), b.newState()
			b.addTransition(s.ID, r, e.ID)
			stack = append(stack, Fragment{Start: s.ID, End: e.ID})
		}
	}

	if len(stack) != 1 {
		return Fragment{}, &regex.MalformedPatternError{Reason: fmt.Sprintf("postfix expression left %d fragments on the stack, want 1", len(stack))}
	}
	return stack[0], nil
}

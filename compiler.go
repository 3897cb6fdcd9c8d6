package lacc

import (
	"fmt"

	"github.com/haleyrc/lacc/dfa"
	"github.com/haleyrc/lacc/nfa"
	"github.com/haleyrc/lacc/token"
)

// Pattern pairs a regular expression with the token type its matches
// produce, the unit BuildLexer compiles and merges.
type Pattern struct {
	Regex string
	Type  token.Type
}

// CompilePattern normalizes pattern to postfix and runs Thompson
// construction over it, tagging the resulting fragment's end state with
// tokenType. It is the compilePattern operation of the External Interfaces
// list, exposed at the package root rather than only inside package nfa.
func CompilePattern(pattern string, tokenType token.Type) (*nfa.NFA, error) {
	return nfa.CompileTagged(pattern, tokenType)
}

// BuildLexer runs the full lexer-generator pipeline over patterns: compile
// each pattern to a tagged NFA, merge them under one start state,
// determinize over the alphabet observed across all patterns, and minimize
// the result. The returned DFA is ready for dfa.Tokenize/dfa.Validate.
func BuildLexer(patterns []Pattern) (*dfa.DFA, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("lacc: BuildLexer requires at least one pattern")
	}

	nfas := make([]*nfa.NFA, len(patterns))
	for i, p := range patterns {
		n, err := CompilePattern(p.Regex, p.Type)
		if err != nil {
			return nil, fmt.Errorf("lacc: compiling pattern %q: %w", p.Regex, err)
		}
		nfas[i] = n
	}

	merged, err := nfa.Merge(nfas)
	if err != nil {
		return nil, err
	}

	alphabet := nfa.Alphabet(merged)
	d := dfa.Determinize(merged, alphabet)
	return dfa.Minimize(d, alphabet), nil
}

// Package lacc is a thin façade over the lexer-generator and
// parser-generator pipelines: package regex (postfix normalization),
// package nfa (Thompson construction and merging), package dfa
// (determinization, minimization, and maximal-munch simulation), package
// grammar (productions and FIRST/FOLLOW), package lr (the canonical LR(1)
// automaton and its LALR(1) merge), and package runtime (the shift/reduce
// engine). Nothing here computes anything the subpackages don't already
// compute; it exists so a caller can wire the two whole pipelines — a
// pattern set to a lexer, a production set to a parser — with one call each,
// the way `original_source/`'s `Main`/`MainToken` drivers do end to end.
package lacc

// Package token holds the shared lexical model: token types and the
// lexical tokens the DFA simulator produces from them.
package token

import "fmt"

// Type is a lexical token kind. The Id doubles as a priority: when a DFA
// state is simultaneously accepting for several patterns, the lowest id
// wins. Equality is by id.
type Type struct {
	ID   int
	Name string
}

// Equal reports whether two types denote the same token kind.
func (t Type) Equal(o Type) bool {
	return t.ID == o.ID
}

func (t Type) String() string {
	return t.Name
}

// Error is the distinguished token type carried by lexical tokens that the
// simulator could not match against any pattern.
var Error = Type{ID: -1, Name: "ERROR"}

// Token pairs a matched lexeme with either a token type or Error.
type Token struct {
	Type   Type
	Lexeme string
}

// IsError reports whether tok is an ERROR token.
func (tok Token) IsError() bool {
	return tok.Type.ID == Error.ID
}

func (tok Token) String() string {
	return fmt.Sprintf("%s(%q)", tok.Type.Name, tok.Lexeme)
}

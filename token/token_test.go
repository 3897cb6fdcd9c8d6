package token

import "testing"

func TestTypeEqual(t *testing.T) {
	kw := Type{ID: 1, Name: "KEYWORD"}
	other := Type{ID: 1, Name: "renamed"}
	if !kw.Equal(other) {
		t.Fatalf("expected types with the same id to be equal")
	}
	num := Type{ID: 2, Name: "NUMBER"}
	if kw.Equal(num) {
		t.Fatalf("expected types with different ids to be unequal")
	}
}

func TestTokenIsError(t *testing.T) {
	tok := Token{Type: Error, Lexeme: "$"}
	if !tok.IsError() {
		t.Fatalf("expected an Error-typed token to report IsError")
	}
	ok := Token{Type: Type{ID: 3, Name: "IDENT"}, Lexeme: "x"}
	if ok.IsError() {
		t.Fatalf("did not expect a normal token to report IsError")
	}
}

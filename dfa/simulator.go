package dfa

import "github.com/haleyrc/lacc/token"

// MatchOne performs one maximal-munch step starting at byte offset i of
// input: it walks the DFA remembering the last accepting position and its
// token type, and stops when no transition exists for the current
// character. On success it returns the longest accepted lexeme and the
// offset to resume from. On failure — no accepting prefix at all — it
// returns a single ERROR token covering one character and advances by one,
// per the consistency rule of spec.md §4.6 (the implementation picks one
// character, not the longest unmatched run, so error boundaries never
// depend on what a later pattern happens to also fail to match).
func (d *DFA) MatchOne(input string, i int) (token.Token, int) {
	runes := []rune(input[i:])
	if len(runes) == 0 {
		return token.Token{}, i
	}

	state := d.Start
	lastAccept := -1
	var lastToken token.Type
	pos := 0
	for pos < len(runes) {
		s := d.State(state)
		next, ok := s.Next[runes[pos]]
		if !ok {
			break
		}
		state = next
		pos++
		if ns := d.State(state); ns.Accepting {
			lastAccept = pos
			lastToken = ns.Token
		}
	}

	if lastAccept > 0 {
		lexeme := string(runes[:lastAccept])
		return token.Token{Type: lastToken, Lexeme: lexeme}, i + len(lexeme)
	}

	lexeme := string(runes[:1])
	return token.Token{Type: token.Error, Lexeme: lexeme}, i + len(lexeme)
}

// Tokenize produces the full sequence of lexical tokens for input by
// repeated maximal munch until input is exhausted. It never skips
// whitespace implicitly; a caller that wants whitespace ignored includes an
// explicit WHITESPACE pattern in its pattern set and filters it out.
func (d *DFA) Tokenize(input string) []token.Token {
	var toks []token.Token
	i := 0
	for i < len(input) {
		tok, next := d.MatchOne(input, i)
		toks = append(toks, tok)
		i = next
	}
	return toks
}

// Validate runs the DFA from start to end of input and reports the token
// type of the final state if it's accepting.
func (d *DFA) Validate(input string) (token.Type, bool) {
	state := d.Start
	for _, r := range input {
		s := d.State(state)
		next, ok := s.Next[r]
		if !ok {
			return token.Type{}, false
		}
		state = next
	}
	s := d.State(state)
	if s.Accepting {
		return s.Token, true
	}
	return token.Type{}, false
}

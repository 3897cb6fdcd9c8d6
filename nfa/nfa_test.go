package nfa

import (
	"testing"

	"github.com/haleyrc/lacc/regex"
	"github.com/haleyrc/lacc/token"
)

func compileForTest(t *testing.T, pattern string) *NFA {
	t.Helper()
	postfix, err := regex.ToPostfix(pattern)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", pattern, err)
	}
	n, err := Compile(postfix)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return n
}

func TestCompileConcatAndAlternation(t *testing.T) {
	n := compileForTest(t, "a(b|c)*")
	cases := map[string]bool{
		"a":     true,
		"ab":    true,
		"abcbc": true,
		"b":     false,
		"":      false,
		"ac":    true,
	}
	for s, want := range cases {
		if got := Match(n, s); got != want {
			t.Errorf("Match(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestCompilePlusAndOptional(t *testing.T) {
	n := compileForTest(t, "a+b?")
	cases := map[string]bool{
		"a":   true,
		"aa":  true,
		"ab":  true,
		"aab": true,
		"":    false,
		"b":   false,
	}
	for s, want := range cases {
		if got := Match(n, s); got != want {
			t.Errorf("Match(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestMergePreservesTags(t *testing.T) {
	kw := token.Type{ID: 1, Name: "KEYWORD"}
	ident := token.Type{ID: 3, Name: "IDENT"}

	kwNFA, err := CompileTagged("if", kw)
	if err != nil {
		t.Fatal(err)
	}
	identNFA, err := CompileTagged("a+", ident)
	if err != nil {
		t.Fatal(err)
	}

	merged, err := Merge([]*NFA{kwNFA, identNFA})
	if err != nil {
		t.Fatal(err)
	}

	if !Match(merged, "if") {
		t.Errorf("expected merged NFA to accept %q", "if")
	}
	if !Match(merged, "aaa") {
		t.Errorf("expected merged NFA to accept %q", "aaa")
	}
	if Match(merged, "iffy") {
		t.Errorf("did not expect merged NFA to accept %q", "iffy")
	}

	tags := map[int]bool{}
	for _, s := range merged.States {
		if s.HasToken() {
			tags[s.Token.ID] = true
		}
	}
	if !tags[kw.ID] || !tags[ident.ID] {
		t.Errorf("expected merged NFA to keep both token tags, got ids %v", tags)
	}
}

func TestMergeSingleReturnsUnchanged(t *testing.T) {
	n := compileForTest(t, "a")
	merged, err := Merge([]*NFA{n})
	if err != nil {
		t.Fatal(err)
	}
	if merged != n {
		t.Errorf("expected Merge of a single NFA to return it unchanged")
	}
}

package grammar

import "testing"

// buildG1 mirrors the fixture grammar from the original GLL test suite used
// to exercise productive/reachable pruning: an unreachable nonterminal C and
// an unproductive nonterminal D hang off an otherwise fine grammar.
func buildG1(t *testing.T) *Grammar {
	t.Helper()
	b := NewBuilder("G1")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").T("b").End()
	b.LHS("A").Epsilon()
	b.LHS("B").N("C").End() // B is unreachable from S
	b.LHS("C").T("c").End()
	b.LHS("D").N("D").End() // D is unproductive (no terminating alternative)
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("buildG1: %v", err)
	}
	return g
}

func TestBuilderCollapsesDuplicateRules(t *testing.T) {
	b := NewBuilder("Dup")
	b.LHS("S").T("a").End()
	b.LHS("S").T("a").End() // identical RHS, must collapse
	b.LHS("S").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rs := g.RulesFor(NewNonterminal("S"))
	if rs.Size() != 2 {
		t.Fatalf("expected 2 distinct alternatives for S, got %d", rs.Size())
	}
}

func TestBuilderRequiresRules(t *testing.T) {
	b := NewBuilder("Empty")
	if _, err := b.Grammar(); err == nil {
		t.Fatalf("expected an error for a grammar with no rules")
	}
}

func TestBuilderStartSymbolIsFirstLHS(t *testing.T) {
	b := NewBuilder("G")
	b.LHS("S").N("A").End()
	b.LHS("A").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Start != NewNonterminal("S") {
		t.Fatalf("expected start symbol S, got %v", g.Start)
	}
}

// buildG3 mirrors the ambiguous grammar S := A C 'a' B | A B 'a' 'a' used as
// the canonical ambiguity fixture.
func buildG3(t *testing.T) *Grammar {
	t.Helper()
	b := NewBuilder("G3")
	b.LHS("S").N("A").N("C").T("a").N("B").End()
	b.LHS("S").N("A").N("B").T("a").T("a").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("C").T("c").End()
	b.LHS("C").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("buildG3: %v", err)
	}
	return g
}

// buildG4 mirrors the ambiguous expression grammar E := E '+' E | '1'.
func buildG4(t *testing.T) *Grammar {
	t.Helper()
	b := NewBuilder("G4")
	b.LHS("E").N("E").T("+").N("E").End()
	b.LHS("E").T("1").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("buildG4: %v", err)
	}
	return g
}

func TestFixtureGrammarsBuild(t *testing.T) {
	_ = buildG1(t)
	_ = buildG3(t)
	_ = buildG4(t)
}

func TestRuleString(t *testing.T) {
	b := NewBuilder("G")
	b.LHS("S").N("A").T("a").End()
	g, _ := b.Grammar()
	var got string
	g.RulesFor(NewNonterminal("S")).Each(func(r *Rule) { got = r.String() })
	want := `S := A "a"`
	if got != want {
		t.Fatalf("Rule.String() = %q, want %q", got, want)
	}
}

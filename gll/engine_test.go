package gll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/nkoval/gogll/grammar"
	"github.com/nkoval/gogll/predictor"
)

// buildS1 is the ambiguous fixture grammar from the algorithm's test suite:
//
//	S := A C 'a' B | A B 'a' 'a'
//	A := 'a' | ε
//	B := 'b' | ε
//	C := 'c' | ε
func buildS1(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder("S1")
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
		t.Fatalf("buildS1: %v", err)
	}
	return g
}

// buildS2 is the ambiguous expression grammar E := E '+' E | '1'.
func buildS2(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder("S2")
	b.LHS("E").N("E").T("+").N("E").End()
	b.LHS("E").T("1").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("buildS2: %v", err)
	}
	return g
}

func words(ss ...string) []grammar.Symbol {
	out := make([]grammar.Symbol, len(ss))
	for i, s := range ss {
		out[i] = grammar.NewTerminal(s)
	}
	return out
}

func TestAcceptS1Ambiguous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gogll")
	defer teardown()

	g := buildS1(t)
	pred, err := predictor.New(g)
	if err != nil {
		t.Fatalf("predictor.New: %v", err)
	}
	p := NewParser(pred)
	remaining := p.Parse(words("a", "b", "a", "a"), -1)
	if remaining != 0 {
		t.Fatalf("expected the worklist to drain, %d descriptors left", remaining)
	}
	if !p.Accept() {
		t.Fatalf("expected 'abaa' to be accepted")
	}
	// The grammar is ambiguous, but "abaa" itself has one derivation: only
	// S := A B 'a' 'a' matches (A='a', B='b'); S := A C 'a' B would need an
	// 'a' right after A C, and B covers at most one 'b'. So exactly one Alt
	// node for S spans the whole input, and it is for that alternative.
	altCount := 0
	for _, n := range p.BSR().Nodes() {
		if n.Kind == 0 /* AltKind */ && n.Rule.LHS == g.Start && n.Lext == 0 && n.Rext == 4 {
			altCount++
			if len(n.Rule.RHS) != 4 || n.Rule.RHS[1].Name != "B" {
				t.Errorf("expected the accepting Alt node to be for S := A B 'a' 'a', got %v", n)
			}
		}
	}
	if altCount != 1 {
		t.Errorf("expected exactly 1 accepting Alt node for 'abaa', got %d", altCount)
	}
}

func TestRejectS1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gogll")
	defer teardown()

	g := buildS1(t)
	pred, err := predictor.New(g)
	if err != nil {
		t.Fatalf("predictor.New: %v", err)
	}
	p := NewParser(pred)
	p.Parse(words("z"), -1)
	if p.Accept() {
		t.Fatalf("expected 'z' to be rejected")
	}
}

func TestAcceptS2Expression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gogll")
	defer teardown()

	g := buildS2(t)
	pred, err := predictor.New(g)
	if err != nil {
		t.Fatalf("predictor.New: %v", err)
	}
	p := NewParser(pred)
	p.Parse(words("1", "+", "1", "+", "1"), -1)
	if !p.Accept() {
		t.Fatalf("expected '1+1+1' to be accepted")
	}
	// "1+1+1" is ambiguous between left- and right-associating parses of
	// "E := E + E": the BSR must carry two distinct Alt nodes over the full
	// span (0,5), one per pivot (the '+' split point).
	pivots := map[int]bool{}
	for _, n := range p.BSR().Nodes() {
		if n.Kind == 0 /* AltKind */ && n.Rule.LHS == g.Start && n.Lext == 0 && n.Rext == 5 {
			pivots[n.Pivot] = true
		}
	}
	if len(pivots) < 2 {
		t.Errorf("expected Alt(E:=E+E, 0, _, 5) nodes at >= 2 distinct pivots, got %v", pivots)
	}
}

// TestAcceptS3LeftRecursion exercises the algorithm's signature capability:
// direct left recursion (S := S S) combined with a nullable alternative
// (S := ε) must still terminate, not loop forever re-exploring the same
// left-recursive call, and must accept.
func TestAcceptS3LeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gogll")
	defer teardown()

	b := grammar.NewBuilder("S3")
	b.LHS("S").N("S").N("S").End()
	b.LHS("S").T("a").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	pred, err := predictor.New(g)
	if err != nil {
		t.Fatalf("predictor.New: %v", err)
	}
	p := NewParser(pred)
	remaining := p.Parse(words("a", "a", "a"), -1)
	if remaining != 0 || p.WorkRemaining() != 0 {
		t.Fatalf("expected the worklist to drain on left-recursive input, %d left", remaining)
	}
	if !p.Accept() {
		t.Fatalf("expected 'aaa' to be accepted under S := S S | \"a\" | ε")
	}
}

// TestEmptyInputReducesEpsilonRule is S4: parsing the empty token list
// against a start symbol with only an epsilon rule must produce exactly
// the Alt(A := ε, 0, 0, 0) node, nothing else.
func TestEmptyInputReducesEpsilonRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gogll")
	defer teardown()

	b := grammar.NewBuilder("S4")
	b.LHS("A").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	pred, err := predictor.New(g)
	if err != nil {
		t.Fatalf("predictor.New: %v", err)
	}
	p := NewParser(pred)
	p.Parse(nil, -1)
	if !p.Accept() {
		t.Fatalf("expected the empty input to be accepted by A := ε")
	}
	found := false
	for _, n := range p.BSR().Nodes() {
		if n.Kind == 0 /* AltKind */ && n.Rule.LHS == g.Start && n.Lext == 0 && n.Pivot == 0 && n.Rext == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an Alt(A := ε, 0, 0, 0) node, got %v", p.BSR().Nodes())
	}
}

// TestTestSelectPrunesUnselectedAlternative is S5: parsing "x" against
// A := "x" | "y" must never even add a descriptor bound to the "y"
// alternative — testSelect prunes it in ntAdd before it reaches the
// worklist at all.
func TestTestSelectPrunesUnselectedAlternative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gogll")
	defer teardown()

	b := grammar.NewBuilder("S5")
	b.LHS("A").T("x").End()
	b.LHS("A").T("y").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var yRule *grammar.Rule
	g.RulesFor(grammar.NewNonterminal("A")).Each(func(r *grammar.Rule) {
		if len(r.RHS) == 1 && r.RHS[0].Name == "y" {
			yRule = r
		}
	})
	if yRule == nil {
		t.Fatalf("could not find the 'y' alternative in the built grammar")
	}

	pred, err := predictor.New(g)
	if err != nil {
		t.Fatalf("predictor.New: %v", err)
	}
	p := NewParser(pred)
	p.Parse(words("x"), -1)
	if !p.Accept() {
		t.Fatalf("expected 'x' to be accepted")
	}
	for _, v := range p.totalSet.Values() {
		d := v.(Descriptor)
		if d.Slot.Rule == yRule {
			t.Fatalf("descriptor bound to the pruned 'y' alternative was added: %v", d)
		}
	}
}

func TestBudgetedParseLeavesWorkPending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gogll")
	defer teardown()

	g := buildS2(t)
	pred, err := predictor.New(g)
	if err != nil {
		t.Fatalf("predictor.New: %v", err)
	}
	p := NewParser(pred)
	remaining := p.Parse(words("1", "+", "1", "+", "1"), 1)
	if remaining == 0 {
		t.Fatalf("expected a 1-step budget to leave work pending for this input")
	}
	leftover := p.ContinueParse(-1)
	if leftover != 0 {
		t.Fatalf("expected ContinueParse(-1) to drain the rest, %d left", leftover)
	}
	if !p.Accept() {
		t.Fatalf("expected the completed parse to accept")
	}
}

func TestSnapshotReflectsFinishedParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gogll")
	defer teardown()

	g := buildS2(t)
	pred, err := predictor.New(g)
	if err != nil {
		t.Fatalf("predictor.New: %v", err)
	}
	p := NewParser(pred)
	p.Parse(words("1"), -1)
	snap := p.Snapshot()
	if len(snap.WorkingSet) != 0 {
		t.Errorf("expected an empty working set after a full parse")
	}
	if len(snap.BSRSet) == 0 {
		t.Errorf("expected at least one BSR node for a successful parse")
	}
	if snap.Hash == "" {
		t.Errorf("expected a non-empty structural hash")
	}
}

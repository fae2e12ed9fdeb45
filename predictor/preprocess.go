package predictor

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/nkoval/gogll/closure"
	"github.com/nkoval/gogll/grammar"
)

// DegenerateGrammarError is returned by Preprocess/New when the grammar's
// start symbol has no rule surviving productive/reachable pruning, i.e. the
// language it denotes is empty.
type DegenerateGrammarError struct {
	Start grammar.Symbol
}

func (e *DegenerateGrammarError) Error() string {
	return fmt.Sprintf("predictor: start symbol %s has no productive, reachable rule", e.Start)
}

// productiveRule reports whether every nonterminal on r's RHS is already
// known productive (terminals are trivially fine; an empty RHS is
// vacuously productive).
func productiveRule(r *grammar.Rule, productive *hashset.Set) bool {
	for _, s := range r.RHS {
		if s.IsNonterminal() && !productive.Contains(s) {
			return false
		}
	}
	return true
}

func productiveStep(p *hashset.Set, g *grammar.Grammar) *hashset.Set {
	g.EachNonterminal(func(nt grammar.Symbol, rules *grammar.RuleSet) {
		if p.Contains(nt) {
			return
		}
		if rules.Any(func(r *grammar.Rule) bool { return productiveRule(r, p) }) {
			p.Add(nt)
		}
	})
	return p
}

var productiveClosure = closure.Increasing[*hashset.Set, *grammar.Grammar](productiveStep)

// Productive returns the set of nonterminals that derive at least one
// string of terminals (possibly the empty string).
func Productive(g *grammar.Grammar) *hashset.Set {
	return productiveClosure(hashset.New(), g)
}

func reachableStep(r *hashset.Set, g *grammar.Grammar) *hashset.Set {
	for _, v := range r.Values() {
		nt := v.(grammar.Symbol)
		rules := g.RulesFor(nt)
		if rules == nil {
			continue
		}
		rules.Each(func(rule *grammar.Rule) {
			for _, s := range rule.RHS {
				if s.IsNonterminal() {
					r.Add(s)
				}
			}
		})
	}
	return r
}

var reachableClosure = closure.Increasing[*hashset.Set, *grammar.Grammar](reachableStep)

// Reachable returns the set of nonterminals reachable from g.Start.
func Reachable(g *grammar.Grammar) *hashset.Set {
	s := hashset.New()
	s.Add(g.Start)
	return reachableClosure(s, g)
}

// Shrink returns a grammar containing only the nonterminals in keep, and
// only the rules of those nonterminals whose RHS nonterminals are all
// themselves in keep. Rule pointers are reused verbatim (shrinking never
// creates new *Rule values), so identity-based comparisons elsewhere in
// the module keep working across a Shrink.
func Shrink(g *grammar.Grammar, keep *hashset.Set) *grammar.Grammar {
	productions := map[grammar.Symbol]*grammar.RuleSet{}
	g.EachNonterminal(func(nt grammar.Symbol, rules *grammar.RuleSet) {
		if !keep.Contains(nt) {
			return
		}
		kept := grammar.NewRuleSet()
		rules.Each(func(r *grammar.Rule) {
			for _, s := range r.RHS {
				if s.IsNonterminal() && !keep.Contains(s) {
					return
				}
			}
			kept.Add(r)
		})
		if kept.Size() > 0 {
			productions[nt] = kept
		}
	})
	return &grammar.Grammar{Start: g.Start, Productions: productions}
}

// Preprocess prunes g to its productive, reachable core: first the
// unproductive nonterminals are removed, then (on the resulting grammar)
// the unreachable ones. It returns the pruned grammar, not the original —
// applying both prunings is the point of calling this instead of Productive
// and Reachable directly.
func Preprocess(g *grammar.Grammar) (*grammar.Grammar, error) {
	p := Productive(g)
	g1 := Shrink(g, p)
	r := Reachable(g1)
	g2 := Shrink(g1, r)
	if g2.RulesFor(g2.Start) == nil || g2.RulesFor(g2.Start).Size() == 0 {
		return nil, &DegenerateGrammarError{Start: g.Start}
	}
	return g2, nil
}

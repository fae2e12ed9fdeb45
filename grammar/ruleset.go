package grammar

import "github.com/emirpasic/gods/sets/hashset"

// RuleSet is the set of alternative right-hand sides for one nonterminal.
// It is backed by a gods hashset so that adding an already-interned *Rule
// twice is a no-op, giving the set semantics the original grammar model
// describes ("ruleDict: dict[NonTerm, set[tuple[Symbol,...]]]").
type RuleSet struct {
	rules *hashset.Set
}

func NewRuleSet() *RuleSet { return &RuleSet{rules: hashset.New()} }

func (rs *RuleSet) Add(r *Rule) { rs.rules.Add(r) }

func (rs *RuleSet) Size() int { return rs.rules.Size() }

// Each calls f once per rule, in no particular order.
func (rs *RuleSet) Each(f func(*Rule)) {
	for _, v := range rs.rules.Values() {
		f(v.(*Rule))
	}
}

// Any reports whether pred holds for at least one rule in the set.
func (rs *RuleSet) Any(pred func(*Rule) bool) bool {
	for _, v := range rs.rules.Values() {
		if pred(v.(*Rule)) {
			return true
		}
	}
	return false
}

// Rules returns a snapshot slice of the contained rules.
func (rs *RuleSet) Rules() []*Rule {
	vs := rs.rules.Values()
	out := make([]*Rule, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.(*Rule))
	}
	return out
}

package grammar

// Grammar is a context-free grammar: a start symbol plus, for every
// nonterminal that has at least one alternative, the RuleSet of its
// alternatives.
type Grammar struct {
	Start       Symbol
	Productions map[Symbol]*RuleSet
}

// RulesFor returns the RuleSet for nt, or nil if nt has no rules in this
// grammar (e.g. it was pruned away by preprocessing, or was never defined).
func (g *Grammar) RulesFor(nt Symbol) *RuleSet {
	return g.Productions[nt]
}

// EachNonterminal calls f once per nonterminal defined in the grammar.
func (g *Grammar) EachNonterminal(f func(Symbol, *RuleSet)) {
	for nt, rs := range g.Productions {
		f(nt, rs)
	}
}

// Dump logs every rule of the grammar at debug level, grouped by
// nonterminal. Intended for interactive debugging, not as a pretty-printer.
func (g *Grammar) Dump() {
	tracer().Debugf("grammar: start = %s", g.Start)
	g.EachNonterminal(func(nt Symbol, rs *RuleSet) {
		rs.Each(func(r *Rule) {
			tracer().Debugf("  %s", r)
		})
	})
}

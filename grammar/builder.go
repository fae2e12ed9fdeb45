package grammar

import "fmt"

// Builder assembles a Grammar fluently, one rule at a time:
//
//	b := grammar.NewBuilder("Expressions")
//	b.LHS("Sum").N("Sum").T("+").N("Product").End()
//	b.LHS("Sum").N("Product").End()
//	b.LHS("Product").N("Factor").End()
//	b.LHS("Factor").T("(").N("Sum").T(")").End()
//	b.LHS("Factor").T("number").End()
//	g, err := b.Grammar()
//
// The first LHS() call fixes the grammar's start symbol. Rules with
// identical LHS and RHS are collapsed (set semantics), matching how the
// grammar model treats a nonterminal's alternatives as a set of right-hand
// sides rather than a list.
type Builder struct {
	name        string
	start       Symbol
	hasStart    bool
	productions map[Symbol]*RuleSet
	bySig       map[string]*Rule
	serial      int

	lhs    Symbol
	lhsSet bool
	rhs    []Symbol
}

func NewBuilder(name string) *Builder {
	return &Builder{
		name:        name,
		productions: map[Symbol]*RuleSet{},
		bySig:       map[string]*Rule{},
	}
}

// LHS starts a new rule for nonterminal name.
func (b *Builder) LHS(name string) *Builder {
	b.lhs = NewNonterminal(name)
	b.lhsSet = true
	b.rhs = nil
	if !b.hasStart {
		b.start = b.lhs
		b.hasStart = true
	}
	return b
}

// N appends a nonterminal to the rule under construction.
func (b *Builder) N(name string) *Builder {
	if !b.lhsSet {
		panic("grammar: Builder.N called before LHS")
	}
	b.rhs = append(b.rhs, NewNonterminal(name))
	return b
}

// T appends a terminal to the rule under construction.
func (b *Builder) T(name string) *Builder {
	if !b.lhsSet {
		panic("grammar: Builder.T called before LHS")
	}
	b.rhs = append(b.rhs, NewTerminal(name))
	return b
}

// End closes the rule under construction, whatever symbols N/T accumulated
// (possibly none, which is equivalent to calling Epsilon).
func (b *Builder) End() *Builder {
	if !b.lhsSet {
		panic("grammar: Builder.End called before LHS")
	}
	b.addRule(b.rhs)
	b.lhsSet = false
	return b
}

// Epsilon closes the rule under construction as an explicit empty-RHS
// alternative.
func (b *Builder) Epsilon() *Builder {
	if !b.lhsSet {
		panic("grammar: Builder.Epsilon called before LHS")
	}
	b.addRule(nil)
	b.lhsSet = false
	return b
}

func (b *Builder) addRule(rhs []Symbol) {
	key := rhsKey(b.lhs, rhs)
	if _, ok := b.bySig[key]; ok {
		return
	}
	r := &Rule{Serial: b.serial, LHS: b.lhs, RHS: append([]Symbol(nil), rhs...)}
	b.serial++
	b.bySig[key] = r
	rs, ok := b.productions[b.lhs]
	if !ok {
		rs = NewRuleSet()
		b.productions[b.lhs] = rs
	}
	rs.Add(r)
}

// Grammar finalizes the builder into a Grammar. It fails if no rules were
// ever added, or if the start symbol ended up without any alternative.
func (b *Builder) Grammar() (*Grammar, error) {
	if !b.hasStart {
		return nil, fmt.Errorf("grammar: %s: no rules defined", b.name)
	}
	if _, ok := b.productions[b.start]; !ok {
		return nil, fmt.Errorf("grammar: %s: start symbol %s has no rules", b.name, b.start)
	}
	return &Grammar{Start: b.start, Productions: b.productions}, nil
}

package grammar

import "strings"

// Rule is a single production LHS -> RHS. Rules are interned by Builder
// (two rules with an identical LHS and RHS share the same *Rule), which
// lets gll.Slot and the other GLL records key off *Rule directly instead
// of a deep-compared symbol slice.
type Rule struct {
	Serial int
	LHS    Symbol
	RHS    []Symbol
}

// Len is the number of symbols on the right-hand side (0 for an epsilon
// rule).
func (r *Rule) Len() int { return len(r.RHS) }

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.LHS.Name)
	b.WriteString(" :=")
	if len(r.RHS) == 0 {
		b.WriteString(" ε")
		return b.String()
	}
	for _, s := range r.RHS {
		b.WriteByte(' ')
		b.WriteString(s.String())
	}
	return b.String()
}

func rhsKey(lhs Symbol, rhs []Symbol) string {
	var b strings.Builder
	b.WriteString(symbolKey(lhs))
	b.WriteByte('|')
	for _, s := range rhs {
		b.WriteString(symbolKey(s))
		b.WriteByte(',')
	}
	return b.String()
}

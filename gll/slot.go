package gll

import (
	"strings"

	"github.com/nkoval/gogll/grammar"
)

// Slot (a "grammar slot") is a rule paired with a cursor position between
// two of its RHS symbols: Rule := RHS[0] ... RHS[Index-1] . RHS[Index] ...
// Because Rule is an interned *grammar.Rule, Slot is a small comparable
// struct and can be used directly as a map key or set element.
type Slot struct {
	Rule  *grammar.Rule
	Index int
}

// StartSlot returns the slot for r with the cursor at position 0.
func StartSlot(r *grammar.Rule) Slot { return Slot{Rule: r, Index: 0} }

// Len is the slot's rule's RHS length.
func (s Slot) Len() int { return len(s.Rule.RHS) }

// Predecessor is the nonterminal symbol immediately before the cursor. It
// panics if Index is 0 or if that symbol is not a nonterminal — callers
// must only invoke it on slots reached via a nonterminal call.
func (s Slot) Predecessor() grammar.Symbol {
	if s.Index == 0 {
		panic("gll: Slot.Predecessor called at index 0")
	}
	sym := s.Rule.RHS[s.Index-1]
	if !sym.IsNonterminal() {
		panic("gll: Slot.Predecessor: preceding symbol is not a nonterminal")
	}
	return sym
}

// Prefix is the symbols before the cursor.
func (s Slot) Prefix() []grammar.Symbol { return s.Rule.RHS[:s.Index] }

// Suffix is the symbols at and after the cursor.
func (s Slot) Suffix() []grammar.Symbol { return s.Rule.RHS[s.Index:] }

// Advance returns the slot with the cursor moved by k positions. It fails
// if the result would fall outside [0, Len()].
func (s Slot) Advance(k int) (Slot, bool) {
	idx := s.Index + k
	if idx < 0 || idx > len(s.Rule.RHS) {
		return Slot{}, false
	}
	return Slot{Rule: s.Rule, Index: idx}, true
}

func (s Slot) String() string {
	var b strings.Builder
	b.WriteString(s.Rule.LHS.Name)
	b.WriteString(" :=")
	if len(s.Rule.RHS) == 0 {
		b.WriteString(" .")
		return b.String()
	}
	for i, sym := range s.Rule.RHS {
		if i == s.Index {
			b.WriteString(" .")
		}
		b.WriteByte(' ')
		b.WriteString(sym.String())
	}
	if s.Index == len(s.Rule.RHS) {
		b.WriteString(" .")
	}
	return b.String()
}

package predictor

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/nkoval/gogll/grammar"
)

// Predictor wraps a preprocessed Grammar together with its nullable/FIRST/
// FOLLOW tables and answers the one question the GLL engine actually needs:
// given a lookahead terminal, a nonterminal and a remaining right-hand-side
// word, could this alternative possibly be the one being derived.
type Predictor struct {
	Grammar *grammar.Grammar
	End     grammar.Symbol

	nullable *hashset.Set
	first    firstMap
	follow   followMap
}

// Option configures a Predictor at construction time.
type Option func(*options)

type options struct {
	end grammar.Symbol
}

// WithEndSymbol overrides the default end-of-input terminal (named "$").
func WithEndSymbol(name string) Option {
	return func(o *options) { o.end = grammar.NewTerminal(name) }
}

// New preprocesses g (see Preprocess) and builds the nullable/FIRST/FOLLOW
// tables over the pruned grammar. It fails with a *DegenerateGrammarError
// if the start symbol does not survive pruning.
func New(g *grammar.Grammar, opts ...Option) (*Predictor, error) {
	o := options{end: grammar.NewTerminal("$")}
	for _, opt := range opts {
		opt(&o)
	}
	pruned, err := Preprocess(g)
	if err != nil {
		return nil, err
	}
	p := &Predictor{Grammar: pruned, End: o.end}
	p.nullable = Nullable(pruned)
	p.first = BuildFirst(pruned)
	p.follow = BuildFollow(pruned, p.first, o.end)
	tracer().Infof("predictor built: start=%s, %d nonterminal(s)", pruned.Start, len(pruned.Productions))
	return p, nil
}

// DerivesEpsilon reports whether s (a nonterminal) can derive the empty
// string. Terminals and the epsilon symbol itself are never nullable.
func (p *Predictor) DerivesEpsilon(s grammar.Symbol) bool {
	if !s.IsNonterminal() {
		return false
	}
	return p.nullable.Contains(s)
}

// First returns FIRST(s) for nonterminal s, or nil if s has no known FIRST
// set (e.g. it was pruned away).
func (p *Predictor) First(s grammar.Symbol) *hashset.Set { return p.first[s] }

// Follow returns FOLLOW(s) for nonterminal s, or nil if unknown.
func (p *Predictor) Follow(s grammar.Symbol) *hashset.Set { return p.follow[s] }

// TestSelect reports whether, with t as the lookahead terminal and N the
// nonterminal whose alternative is under consideration, word (the
// alternative's remaining right-hand side) should be selected: either t is
// in FIRST(word), or word is nullable and t is in FOLLOW(N).
//
// This is a predictive pruning test only; it is sound to skip it entirely
// (the engine would just explore, and later discard, more dead ends).
func (p *Predictor) TestSelect(t grammar.Symbol, nt grammar.Symbol, word []grammar.Symbol) bool {
	wf := firstOfWord(p.first, word)
	if wf.Contains(t) {
		return true
	}
	if wf.Contains(grammar.EpsilonSymbol) {
		if flw := p.follow[nt]; flw != nil && flw.Contains(t) {
			return true
		}
	}
	return false
}

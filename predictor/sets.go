package predictor

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/nkoval/gogll/closure"
	"github.com/nkoval/gogll/grammar"
)

func nullableStep(n *hashset.Set, g *grammar.Grammar) *hashset.Set {
	g.EachNonterminal(func(nt grammar.Symbol, rules *grammar.RuleSet) {
		if n.Contains(nt) {
			return
		}
		if rules.Any(func(r *grammar.Rule) bool {
			for _, s := range r.RHS {
				if !n.Contains(s) {
					return false
				}
			}
			return true // vacuously true for an epsilon rule
		}) {
			n.Add(nt)
		}
	})
	return n
}

var nullableClosure = closure.Increasing[*hashset.Set, *grammar.Grammar](nullableStep)

// Nullable returns the set of nonterminals that can derive the empty
// string.
func Nullable(g *grammar.Grammar) *hashset.Set {
	return nullableClosure(hashset.New(), g)
}

// firstMap maps every nonterminal seen so far to its (possibly still
// growing) FIRST set. A terminal's FIRST set is itself, computed on the
// fly by firstOfWord, so firstMap only ever holds nonterminal entries.
type firstMap map[grammar.Symbol]*hashset.Set

// Size sums every contained set's size, not just the number of keys: FIRST
// sets grow in place across iterations even once every nonterminal has an
// (initially empty) entry, so counting keys alone would let the fixed
// point loop stop one or more iterations too early.
func (m firstMap) Size() int {
	total := 0
	for _, s := range m {
		total += s.Size()
	}
	return total
}

func (m firstMap) get(s grammar.Symbol) *hashset.Set {
	set, ok := m[s]
	if !ok {
		return nil
	}
	return set
}

// firstOfWord computes FIRST(word) given the current (possibly partial)
// firstMap: scan left to right, a terminal is added and stops the scan,
// a nonterminal contributes its non-epsilon members and, if it is
// not (yet known) nullable, also stops the scan. If every symbol in word
// is nullable, EpsilonSymbol is added to the result.
func firstOfWord(fm firstMap, word []grammar.Symbol) *hashset.Set {
	result := hashset.New()
	for _, sym := range word {
		if sym.IsTerminal() {
			result.Add(sym)
			return result
		}
		fs := fm.get(sym)
		hasEpsilon := fs != nil && fs.Contains(grammar.EpsilonSymbol)
		if fs != nil {
			for _, v := range fs.Values() {
				if v != grammar.EpsilonSymbol {
					result.Add(v)
				}
			}
		}
		if !hasEpsilon {
			return result
		}
	}
	result.Add(grammar.EpsilonSymbol)
	return result
}

func buildFirstStep(fm firstMap, g *grammar.Grammar) firstMap {
	g.EachNonterminal(func(nt grammar.Symbol, rules *grammar.RuleSet) {
		if fm[nt] == nil {
			fm[nt] = hashset.New()
		}
		rules.Each(func(r *grammar.Rule) {
			f := firstOfWord(fm, r.RHS)
			for _, v := range f.Values() {
				fm[nt].Add(v)
			}
		})
	})
	return fm
}

var buildFirstClosure = closure.Increasing[firstMap, *grammar.Grammar](buildFirstStep)

// BuildFirst computes FIRST(N) for every nonterminal N of g.
func BuildFirst(g *grammar.Grammar) firstMap {
	return buildFirstClosure(firstMap{}, g)
}

// followMap maps every nonterminal to its (possibly still growing) FOLLOW
// set.
type followMap map[grammar.Symbol]*hashset.Set

func (m followMap) Size() int {
	total := 0
	for _, s := range m {
		total += s.Size()
	}
	return total
}

type followCtx struct {
	g     *grammar.Grammar
	first firstMap
}

// buildFollowStep computes, for every nonterminal occurrence curr inside a
// rule's RHS, FOLLOW(curr) += FIRST(rest) - {epsilon}, where rest is
// *everything* after curr in that RHS (not just the immediately adjacent
// symbol): if rest is nullable (including the case where curr is
// rule-final, so rest is empty), FOLLOW(curr) also inherits FOLLOW(nt).
// Looking only at the next symbol, as the literal source does, misses
// propagating FIRST of what comes after a nullable symbol that directly
// follows curr (e.g. "X := ... curr B C" with B nullable: FOLLOW(curr) must
// still pick up FIRST(C)); scanning the whole suffix via firstOfWord
// handles both the adjacent-terminal and the rule-final cases uniformly.
func buildFollowStep(flw followMap, ctx followCtx) followMap {
	ctx.g.EachNonterminal(func(nt grammar.Symbol, rules *grammar.RuleSet) {
		rules.Each(func(r *grammar.Rule) {
			rhs := r.RHS
			for i, curr := range rhs {
				if curr.IsTerminal() {
					continue
				}
				if flw[curr] == nil {
					flw[curr] = hashset.New()
				}
				restFirst := firstOfWord(ctx.first, rhs[i+1:])
				hasEpsilon := restFirst.Contains(grammar.EpsilonSymbol)
				for _, v := range restFirst.Values() {
					if v != grammar.EpsilonSymbol {
						flw[curr].Add(v)
					}
				}
				if hasEpsilon && flw[nt] != nil {
					for _, v := range flw[nt].Values() {
						flw[curr].Add(v)
					}
				}
			}
		})
	})
	return flw
}

var buildFollowClosure = closure.Increasing[followMap, followCtx](buildFollowStep)

// BuildFollow computes FOLLOW(N) for every nonterminal N of g, seeding the
// start symbol's FOLLOW set with end (the end-of-input marker).
func BuildFollow(g *grammar.Grammar, fm firstMap, end grammar.Symbol) followMap {
	flw := followMap{}
	flw[g.Start] = hashset.New()
	flw[g.Start].Add(end)
	return buildFollowClosure(flw, followCtx{g: g, first: fm})
}

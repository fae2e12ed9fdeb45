package bsr

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/nkoval/gogll/grammar"
)

// Set is a flat, deduplicated collection of BSR nodes — the whole shared
// packed forest a parse produces. Unlike an SPPF, it carries no explicit
// sharing graph (parent/child edges): deduplication is simply set
// membership on comparable Node values, since a GLL parse never needs to
// distinguish two occurrences of structurally identical nodes.
type Set struct {
	nodes *hashset.Set
}

func NewSet() *Set { return &Set{nodes: hashset.New()} }

func (s *Set) Add(n Node) { s.nodes.Add(n) }

func (s *Set) Contains(n Node) bool { return s.nodes.Contains(n) }

func (s *Set) Size() int { return s.nodes.Size() }

// Each calls f once per node, in no particular order.
func (s *Set) Each(f func(Node)) {
	for _, v := range s.nodes.Values() {
		f(v.(Node))
	}
}

// Nodes returns a snapshot slice of the contained nodes.
func (s *Set) Nodes() []Node {
	vs := s.nodes.Values()
	out := make([]Node, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.(Node))
	}
	return out
}

// Accept reports whether the set contains an Alt node for start's rule
// spanning the whole input, i.e. Alt(rule, 0, _, n) with rule.LHS == start.
func (s *Set) Accept(start grammar.Symbol, n int) bool {
	accepted := false
	s.Each(func(node Node) {
		if node.Kind == AltKind && node.Rule.LHS == start && node.Lext == 0 && node.Rext == n {
			accepted = true
		}
	})
	return accepted
}

// Package bsr implements the Binary Subtree Representation, the flat,
// deduplicated shared packed forest a GLL parse produces: rather than one
// parse tree, a set of labelled nodes from which every derivation of the
// input can be read off.
package bsr

import (
	"fmt"

	"github.com/nkoval/gogll"
	"github.com/nkoval/gogll/grammar"
)

// Kind distinguishes a BSR node's two shapes.
type Kind uint8

const (
	// AltKind nodes label a complete alternative: Rule's whole RHS spans
	// [Lext, Rext) with split point Pivot.
	AltKind Kind = iota
	// PackedKind nodes label a partial alternative (a prefix of more than
	// one symbol): Rule's first PrefixLen RHS symbols span [Lext, Rext)
	// with split point Pivot.
	PackedKind
)

// Node is a single BSR node. It deliberately stores the rule and a prefix
// length rather than a literal symbol-slice prefix: a []grammar.Symbol
// field would make Node uncomparable (slices can't be map/set keys), while
// (Rule, PrefixLen) carries the same information — the prefix is always
// recoverable as Rule.RHS[:PrefixLen] — and keeps Node a plain comparable
// struct, directly usable as a gods/hashset element.
type Node struct {
	Kind      Kind
	Rule      *grammar.Rule
	PrefixLen int // only meaningful for PackedKind
	Lext      int
	Pivot     int
	Rext      int
}

// Alt builds an AltKind node for rule's complete RHS.
func Alt(rule *grammar.Rule, lext, pivot, rext int) Node {
	return Node{Kind: AltKind, Rule: rule, Lext: lext, Pivot: pivot, Rext: rext}
}

// Packed builds a PackedKind node for the first prefixLen symbols of
// rule's RHS.
func Packed(rule *grammar.Rule, prefixLen, lext, pivot, rext int) Node {
	return Node{Kind: PackedKind, Rule: rule, PrefixLen: prefixLen, Lext: lext, Pivot: pivot, Rext: rext}
}

// Prefix returns the symbols this node labels for a PackedKind node, or nil
// for an AltKind node (whose label is simply Rule's full RHS).
func (n Node) Prefix() []grammar.Symbol {
	if n.Kind != PackedKind {
		return nil
	}
	return n.Rule.RHS[:n.PrefixLen]
}

// Span returns the node's [Lext, Rext) input range as a gogll.Span, the
// module's common currency for input ranges (shared with higher-level
// tooling built on top of this package).
func (n Node) Span() gogll.Span { return gogll.Span{n.Lext, n.Rext} }

func (n Node) String() string {
	switch n.Kind {
	case AltKind:
		return fmt.Sprintf("Alt(%s, %d, %s)", n.Rule, n.Pivot, n.Span())
	case PackedKind:
		return fmt.Sprintf("Packed(%v, %d, %s)", n.Prefix(), n.Pivot, n.Span())
	default:
		return "bsr.Node(?)"
	}
}

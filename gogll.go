// Package gogll is a Generalised LL (GLL) context-free grammar recognizer
// and parser. It builds a grammar with package grammar, preprocesses and
// analyzes it with package predictor, and runs the worklist-driven GLL
// engine in package gll, producing a Binary Subtree Representation (see
// package bsr) rather than a single parse tree — the input may be
// ambiguous, and the BSR is a flat, shared forest every derivation can be
// read back out of.
package gogll

import "fmt"

// Span captures an input token range [From, To): for every terminal and
// nonterminal span a BSR node records, a Span gives the same information
// in a form convenient for debug printing and for embedding into
// higher-level tooling built on top of this module.
type Span [2]int

// From is the start of the span.
func (s Span) From() int { return s[0] }

// To is the position just behind the span's end.
func (s Span) To() int { return s[1] }

// Len is the span's length.
func (s Span) Len() int { return s[1] - s[0] }

// IsNull reports whether the span is the zero value.
func (s Span) IsNull() bool { return s == Span{} }

// Extend widens s to also cover other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Package grammar models context-free grammars as value-typed, comparable
// Go structs: Symbol, Rule and Grammar. Rules are interned as *Rule so that
// Slot, Descriptor and the other GLL bookkeeping records built on top
// of them (see package gll) stay naturally comparable and usable as map/set
// keys, without resorting to structural hashing.
package grammar

import "fmt"

// Kind tags a Symbol as a terminal, a nonterminal, or the distinguished
// epsilon symbol.
type Kind uint8

const (
	Terminal Kind = iota
	Nonterminal
	Epsilon
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "Terminal"
	case Nonterminal:
		return "Nonterminal"
	case Epsilon:
		return "Epsilon"
	default:
		return "Kind(?)"
	}
}

// Symbol is a single grammar vocabulary symbol. Two symbols are equal iff
// their Kind and Name match, which makes Symbol directly usable as a map
// key and as an element of a gods set.
type Symbol struct {
	Kind Kind
	Name string
}

// NewTerminal returns the terminal symbol named name.
func NewTerminal(name string) Symbol { return Symbol{Kind: Terminal, Name: name} }

// NewNonterminal returns the nonterminal symbol named name.
func NewNonterminal(name string) Symbol { return Symbol{Kind: Nonterminal, Name: name} }

// EpsilonSymbol is the distinguished empty-string symbol, used as a member
// of FIRST sets to record nullability. It never appears inside a rule's
// RHS: an epsilon rule is a rule with an empty RHS.
var EpsilonSymbol = Symbol{Kind: Epsilon, Name: "eps"}

func (s Symbol) IsTerminal() bool    { return s.Kind == Terminal }
func (s Symbol) IsNonterminal() bool { return s.Kind == Nonterminal }
func (s Symbol) IsEpsilon() bool     { return s.Kind == Epsilon }

func (s Symbol) String() string {
	switch s.Kind {
	case Terminal:
		return fmt.Sprintf("%q", s.Name)
	case Epsilon:
		return "ε"
	default:
		return s.Name
	}
}

func symbolKey(s Symbol) string {
	return fmt.Sprintf("%d:%s", s.Kind, s.Name)
}

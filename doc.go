/*
Package gogll is a Generalised LL (GLL) parsing toolbox.

It recognizes and parses arbitrary (including ambiguous and left-recursive)
context-free grammars, producing a Binary Subtree Representation (BSR)
rather than a single parse tree. Package structure is as follows:

■ grammar: value-typed Symbol/Rule/Grammar model plus a fluent Builder.

■ closure: a reusable monotone fixed-point combinator.

■ predictor: grammar preprocessing (productive/reachable pruning) and the
nullable/FIRST/FOLLOW tables used to predictively prune dead alternatives.

■ gll: the worklist-driven GLL engine itself.

■ bsr: the Binary Subtree Representation, the flat shared packed forest a
GLL parse produces.

The base package contains a small Span type for describing input ranges,
used by package bsr.
*/
package gogll

// Package closure provides a reusable monotone fixed-point operator:
// repeatedly apply a step function to a domain value until its size stops
// growing (Increasing) or stops shrinking (Decreasing). The grammar
// analyses in package predictor (productive, reachable, nullable, FIRST,
// FOLLOW) are all instances of Increasing over different domains.
package closure

// Domain is any intermediate state an analysis iterates over. Size must
// reflect the analysis's true information content, not merely the number
// of top-level keys: for a map-of-sets domain (such as FIRST, which maps
// each nonterminal to a growing set of terminals), Size has to sum the
// sizes of every value, or the loop can stop as soon as the key set
// stabilizes even though individual sets are still growing.
type Domain interface {
	Size() int
}

// Step computes the next approximation of d given a read-only context
// (typically the grammar being analyzed). Step must be monotone: for
// Increasing closures it must never remove anything already present.
type Step[D Domain, C any] func(d D, ctx C) D

// Increasing iterates step until the domain's Size stops growing. This is
// the variant used by every grammar analysis.
func Increasing[D Domain, C any](step Step[D, C]) func(D, C) D {
	return func(d D, ctx C) D {
		size, newSize := -1, d.Size()
		for size < newSize {
			size = newSize
			d = step(d, ctx)
			newSize = d.Size()
		}
		return d
	}
}

// Decreasing iterates step until the domain's Size stops shrinking.
// Provided for symmetry with Increasing; no analysis in this module
// currently needs a decreasing (start-large, prune-down) fixed point.
func Decreasing[D Domain, C any](step Step[D, C]) func(D, C) D {
	return func(d D, ctx C) D {
		size, newSize := d.Size()+1, d.Size()
		for newSize < size {
			size = newSize
			d = step(d, ctx)
			newSize = d.Size()
		}
		return d
	}
}

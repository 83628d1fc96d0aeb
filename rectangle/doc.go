// Package rectangle enumerates and scores the prime rectangles of a
// kernel-cube matrix (kmatrix.Matrix): maximal all-ones submatrices
// from which a multi-cube algebraic extraction can be derived.
//
// Enumeration is a depth-first search over column subsets in
// canonical order, closing each candidate rectangle's column set
// before it is emitted, bounded by a configurable cap
// (rectangle.Option, a functional-options convention matching the
// rest of this module). Profit is computed directly from an algebraic
// identity, not by counting before/after.
package rectangle

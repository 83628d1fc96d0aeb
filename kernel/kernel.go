package kernel

import (
	"sort"

	"github.com/katalvlaran/boolfactor/literal"
)

// Pair is one kernel/co-kernel pair: Kernel is the cube-free quotient
// and Cokernel is one cube d such that Cokernel * Kernel's cubes,
// divided back out of F, reproduce Kernel.
type Pair struct {
	Cokernel literal.Cube
	Kernel   literal.Expr
}

// Kernels returns every kernel of f, each paired with one
// deterministically-chosen co-kernel, deduplicated by kernel value.
// The total order over literals is the lexicographic order on literal
// identifiers; enumeration order is by that order at every recursion
// level, so the result — and which co-kernel is reported for a given
// kernel — is fully deterministic.
//
// Complexity: bounded by the number of distinct literals in f in
// recursion depth; this follows the classical Brayton-McMullen kernel
// construction.
func Kernels(f literal.Expr) []Pair {
	return dedupe(kernelsRec(f))
}

// kernelsRec recursively decomposes one expression into kernel/co-kernel
// pairs, without deduplication (the caller dedupes the full result once).
func kernelsRec(f literal.Expr) []Pair {
	var out []Pair
	if len(f) < 2 {
		return out
	}

	for _, l := range repeatedLiterals(f) {
		cl := intersectionOfCubesContaining(f, l)
		q := literal.DivideByCube(f, cl)
		if hasEarlierRepeat(q, l) {
			continue // duplication-avoidance rule: another literal path already covers this kernel
		}
		for _, sub := range kernelsRec(q) {
			combined := make(literal.Cube, 0, len(cl)+len(sub.Cokernel))
			combined = append(combined, cl...)
			combined = append(combined, sub.Cokernel...)
			out = append(out, Pair{Cokernel: literal.NewCube(combined...), Kernel: sub.Kernel})
		}
	}

	if literal.IsCubeFree(f) {
		out = append(out, Pair{Cokernel: literal.NewCube(), Kernel: f.Clone()})
	}

	return out
}

// repeatedLiterals returns, in lexicographic order, every literal that
// appears in at least two cubes of e.
func repeatedLiterals(e literal.Expr) []literal.Literal {
	counts := make(map[literal.Literal]int)
	for _, c := range e {
		for _, l := range c {
			counts[l]++
		}
	}
	out := make([]literal.Literal, 0, len(counts))
	for l, n := range counts {
		if n >= 2 {
			out = append(out, l)
		}
	}
	sort.Strings(out)

	return out
}

// intersectionOfCubesContaining returns the intersection of every cube
// of e that contains l, as a single cube (always containing at least l
// itself).
func intersectionOfCubesContaining(e literal.Expr, l literal.Literal) literal.Cube {
	counts := make(map[literal.Literal]int)
	n := 0
	for _, c := range e {
		if !containsLiteral(c, l) {
			continue
		}
		n++
		for _, lit := range c {
			counts[lit]++
		}
	}
	out := make(literal.Cube, 0, len(counts))
	for lit, cnt := range counts {
		if cnt == n {
			out = append(out, lit)
		}
	}

	return literal.NewCube(out...)
}

// hasEarlierRepeat reports whether some literal lexicographically
// earlier than l appears in two or more cubes of q. This is the
// classical skip rule that makes each kernel discovered by exactly one
// literal path.
func hasEarlierRepeat(q literal.Expr, l literal.Literal) bool {
	for _, earlier := range repeatedLiterals(q) {
		if earlier < l {
			return true
		}
	}

	return false
}

func containsLiteral(c literal.Cube, l literal.Literal) bool {
	for _, lit := range c {
		if lit == l {
			return true
		}
	}

	return false
}

// dedupe collapses pairs with equal Kernel value, keeping the first
// occurrence — the co-kernel discovered first in canonical traversal
// order.
func dedupe(pairs []Pair) []Pair {
	seen := make(map[string]struct{}, len(pairs))
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		key := p.Kernel.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	return out
}

package literal

import (
	"sort"
	"strings"
)

// Literal is an opaque, positive (non-negated) Boolean variable name.
// Literals carry no polarity; identity is by string equality.
type Literal = string

// Cube is an unordered set of distinct literals, interpreted as their
// logical AND. The empty Cube denotes the constant 1. Cube is kept in
// canonical form: a sorted, deduplicated slice. Construct one with
// NewCube rather than a literal composite, or Canonical invariants
// below will not hold.
type Cube []Literal

// Expr is an unordered set of distinct Cubes, interpreted as their
// logical OR. The empty Expr denotes the constant 0. Expr is kept in
// canonical form: Cubes sorted by Cube.Less, deduplicated by value.
// Construct one with NewExpr.
type Expr []Cube

// NewCube builds a canonical Cube from a (possibly unsorted, possibly
// duplicate-containing) set of literal names.
func NewCube(lits ...Literal) Cube {
	if len(lits) == 0 {
		return Cube{}
	}
	seen := make(map[Literal]struct{}, len(lits))
	out := make(Cube, 0, len(lits))
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// NewExpr builds a canonical Expr from a set of Cubes, deduplicating
// cubes by value and sorting them by Cube.Less. Each input Cube is
// itself canonicalized first, so callers may pass raw literal sets.
func NewExpr(cubes ...Cube) Expr {
	if len(cubes) == 0 {
		return Expr{}
	}
	seen := make(map[string]struct{}, len(cubes))
	out := make(Expr, 0, len(cubes))
	for _, c := range cubes {
		cc := NewCube(c...)
		key := cc.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Key returns a stable string encoding of the Cube suitable for use as
// a map key. Two Cubes with the same literal set produce the same Key
// regardless of construction order.
func (c Cube) Key() string {
	return strings.Join(c, ",")
}

// Key returns a stable string encoding of the Expr suitable for use as
// a map key.
func (e Expr) Key() string {
	parts := make([]string, len(e))
	for i, c := range e {
		parts[i] = c.Key()
	}

	return strings.Join(parts, "|")
}

// Less defines the canonical total order on Cubes: shorter cubes sort
// first; cubes of equal size sort lexicographically by their sorted
// literal tuple. This order is load-bearing: Expr canonicalization,
// kernel/co-kernel determinism, and column ordering in kmatrix all
// derive from it.
func (c Cube) Less(other Cube) bool {
	if len(c) != len(other) {
		return len(c) < len(other)
	}
	for i := range c {
		if c[i] != other[i] {
			return c[i] < other[i]
		}
	}

	return false
}

// Equal reports whether two Cubes denote the same literal set.
func (c Cube) Equal(other Cube) bool {
	return c.Key() == other.Key()
}

// Equal reports whether two Exprs denote the same set of cubes.
func (e Expr) Equal(other Expr) bool {
	return e.Key() == other.Key()
}

// Clone returns an independent copy of the Cube.
func (c Cube) Clone() Cube {
	out := make(Cube, len(c))
	copy(out, c)

	return out
}

// Clone returns an independent copy of the Expr, with each Cube cloned.
func (e Expr) Clone() Expr {
	out := make(Expr, len(e))
	for i, c := range e {
		out[i] = c.Clone()
	}

	return out
}

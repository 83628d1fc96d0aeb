package literal

import "sort"

// ContainsCube reports whether c appears in e (set membership, by
// Cube value equality).
//
// Complexity: O(|e|) cube comparisons, each O(|c|).
func ContainsCube(e Expr, c Cube) bool {
	key := c.Key()
	for _, ec := range e {
		if ec.Key() == key {
			return true
		}
	}

	return false
}

// subsetOf reports whether a's literals are all present in b.
func subsetOf(a, b Cube) bool {
	if len(a) > len(b) {
		return false
	}
	bset := make(map[Literal]struct{}, len(b))
	for _, l := range b {
		bset[l] = struct{}{}
	}
	for _, l := range a {
		if _, ok := bset[l]; !ok {
			return false
		}
	}

	return true
}

// CommonLiterals returns the intersection of literals across every
// cube of e: the set of literals that appear in all cubes. The empty
// Expr yields the empty Cube.
//
// Complexity: O(|e| * k) where k is the average cube size.
func CommonLiterals(e Expr) Cube {
	if len(e) == 0 {
		return Cube{}
	}
	counts := make(map[Literal]int)
	for _, c := range e {
		for _, l := range c {
			counts[l]++
		}
	}
	out := make(Cube, 0, len(counts))
	for l, n := range counts {
		if n == len(e) {
			out = append(out, l)
		}
	}

	return NewCube(out...)
}

// IsCubeFree reports whether e has at least two cubes and no literal
// shared by all of them. A single-cube expression is never cube-free.
func IsCubeFree(e Expr) bool {
	return len(e) >= 2 && len(CommonLiterals(e)) == 0
}

// DivideByCube computes the algebraic quotient e / d: the set of
// cube-residuals of cubes in e that are divisible by d (i.e. contain
// every literal of d). If d is empty, e is returned unchanged. The
// result is always canonical.
//
// Complexity: O(|e| * k).
func DivideByCube(e Expr, d Cube) Expr {
	if len(d) == 0 {
		return e.Clone()
	}
	var out []Cube
	for _, c := range e {
		if subsetOf(d, c) {
			out = append(out, CubeMinus(c, d))
		}
	}

	return NewExpr(out...)
}

// CubeMinus returns c with every literal of d removed, regardless of
// whether d is a subset of c.
func CubeMinus(c, d Cube) Cube {
	dset := make(map[Literal]struct{}, len(d))
	for _, l := range d {
		dset[l] = struct{}{}
	}
	out := make(Cube, 0, len(c))
	for _, l := range c {
		if _, ok := dset[l]; !ok {
			out = append(out, l)
		}
	}

	return out
}

// MultiplyCube computes d * e: the union of d with each cube of e,
// deduplicated.
//
// Complexity: O(|e| * k).
func MultiplyCube(d Cube, e Expr) Expr {
	out := make([]Cube, len(e))
	for i, c := range e {
		merged := make(Cube, 0, len(d)+len(c))
		merged = append(merged, d...)
		merged = append(merged, c...)
		out[i] = merged
	}

	return NewExpr(out...)
}

// Remainder returns the cubes of e that are NOT divisible by d, i.e.
// the part of e untouched by dividing out d. Together with
// MultiplyCube(d, DivideByCube(e, d)), it reconstructs e as a disjoint
// union of cubes (spec invariant, §4.A).
func Remainder(e Expr, d Cube) Expr {
	if len(d) == 0 {
		return NewExpr()
	}
	var out []Cube
	for _, c := range e {
		if !subsetOf(d, c) {
			out = append(out, c)
		}
	}

	return NewExpr(out...)
}

// LiteralCount sums the size of every cube in e: the total literal
// count of the expression, counting each occurrence once.
func LiteralCount(e Expr) int {
	n := 0
	for _, c := range e {
		n += len(c)
	}

	return n
}

// Literals returns the sorted, deduplicated set of literals appearing
// anywhere in e.
func Literals(e Expr) []Literal {
	seen := make(map[Literal]struct{})
	for _, c := range e {
		for _, l := range c {
			seen[l] = struct{}{}
		}
	}
	out := make([]Literal, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// Expand substitutes defs into e recursively: every literal of e that
// names a key of defs is replaced by that definition's body
// (multiplied into the cube it appeared in), and the process repeats
// until no literal in the result names a definition. defs must be
// acyclic; Expand does not guard against infinite recursion, matching
// Network's acyclicity invariant.
func Expand(e Expr, defs map[Literal]Expr) Expr {
	var out []Cube
	for _, c := range e {
		out = append(out, expandCube(c, defs)...)
	}

	return NewExpr(out...)
}

// expandCube expands a single cube against defs, returning the set of
// cubes obtained by substituting every defined literal in c.
func expandCube(c Cube, defs map[Literal]Expr) []Cube {
	frontier := Expr{Cube{}}
	for _, l := range c {
		body, isDef := defs[l]
		if !isDef {
			frontier = MultiplyCube(Cube{l}, frontier)
			continue
		}
		expandedBody := Expand(body, defs)
		next := make([]Cube, 0, len(frontier)*len(expandedBody))
		for _, prefix := range frontier {
			for _, bc := range expandedBody {
				merged := make(Cube, 0, len(prefix)+len(bc))
				merged = append(merged, prefix...)
				merged = append(merged, bc...)
				next = append(next, merged)
			}
		}
		frontier = NewExpr(next...)
	}

	return frontier
}

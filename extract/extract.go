package extract

import (
	"fmt"

	"github.com/katalvlaran/boolfactor/kernel"
	"github.com/katalvlaran/boolfactor/kmatrix"
	"github.com/katalvlaran/boolfactor/literal"
	"github.com/katalvlaran/boolfactor/rectangle"
)

// ApplyRectangle performs a rectangle extraction: for every row
// (co-kernel) in rect, it removes the cubes the rectangle predicts
// and replaces them with a single cube pairing the co-kernel with the
// fresh name. It returns the rewritten expression and the new
// definition's body (the rectangle's column cubes, as a cube-free
// expression). name must not already appear as a literal in f.
//
// If some predicted cube is absent from f, ApplyRectangle returns
// ErrRectangleNotRealized wrapping the offending co-kernel and cube —
// an internal-consistency failure that should never occur when rect
// was produced by rectangle.Enumerate against the same matrix that
// produced f's kernels.
func ApplyRectangle(f literal.Expr, m *kmatrix.Matrix, rect rectangle.Rectangle, name literal.Literal) (newF, newDef literal.Expr, err error) {
	cols := make([]literal.Cube, len(rect.Cols))
	for i, col := range rect.Cols {
		cols[i] = m.Cols[col]
	}
	newDef = literal.NewExpr(cols...)

	present := make(map[string]struct{}, len(f))
	for _, c := range f {
		present[c.Key()] = struct{}{}
	}

	toRemove := make(map[string]struct{})
	toAdd := make([]literal.Cube, 0, len(rect.Rows))
	for _, row := range rect.Rows {
		d := m.Rows[row]
		for _, k := range newDef {
			merged := literal.NewCube(append(append(literal.Cube{}, d...), k...)...)
			key := merged.Key()
			if _, ok := present[key]; !ok {
				return nil, nil, fmt.Errorf("%w: co-kernel %v, cube %v", ErrRectangleNotRealized, d, merged)
			}
			toRemove[key] = struct{}{}
		}
		toAdd = append(toAdd, literal.NewCube(append(append(literal.Cube{}, d...), name)...))
	}

	kept := make([]literal.Cube, 0, len(f))
	for _, c := range f {
		if _, rm := toRemove[c.Key()]; rm {
			continue
		}
		kept = append(kept, c)
	}
	kept = append(kept, toAdd...)

	return literal.NewExpr(kept...), newDef, nil
}

// singleRowCandidate is one kernel pair's proposed whole-row promotion.
type singleRowCandidate struct {
	pair   kernel.Pair
	profit int
}

// ExtractSingleRow handles the pattern where a kernel/co-kernel pair's
// cubes are invisible to the rectangle method because only one matrix
// row participates. It promotes the best such row directly, whether
// or not other rows share some of its columns, using the same merge
// mechanics as ApplyRectangle applied to a single row: every cube
// `cokernel ∪ k` for `k` in the kernel collapses into the single cube
// `cokernel ∪ {name}`, and `defs[name]` becomes the kernel itself.
//
// Profit is `(n-1)*|cokernel| - 1`, where n is the number of cubes in
// the kernel: n-1 of the n original `cokernel`-sized contributions
// are eliminated by the merge, at the cost of the one name literal
// added to the merged cube.
// See DESIGN.md for the full derivation, including why a naive
// per-literal profit formula undercounts this case and is never
// positive when the shared cube has a single literal — the common
// case in practice.
func ExtractSingleRow(f literal.Expr, name literal.Literal) (newF, newDef literal.Expr, profit int, found bool) {
	pairs := kernel.Kernels(f)
	best, ok := bestSingleRowCandidate(pairs)
	if !ok {
		return nil, nil, 0, false
	}

	m := kmatrix.Build([]kernel.Pair{best.pair})
	cols := make([]int, m.NumCols())
	for i := range cols {
		cols[i] = i
	}
	rect := rectangle.Rectangle{Rows: []int{0}, Cols: cols}

	newF, newDef, err := ApplyRectangle(f, m, rect, name)
	if err != nil {
		// A kernel pair always satisfies ApplyRectangle's
		// precondition by construction (every k in Kernel divides
		// cokernel ∪ k out of f); a failure here would signal a bug
		// upstream in kernel.Kernels, not a recoverable condition.
		return nil, nil, 0, false
	}

	return newF, newDef, best.profit, true
}

// bestSingleRowCandidate scans every kernel pair of f with a non-empty
// co-kernel and selects the most profitable whole-row promotion,
// breaking ties by largest co-kernel, then largest kernel, then
// lexicographically smallest co-kernel.
func bestSingleRowCandidate(pairs []kernel.Pair) (singleRowCandidate, bool) {
	var (
		best  singleRowCandidate
		found bool
	)

	for _, p := range pairs {
		if len(p.Cokernel) == 0 || len(p.Kernel) < 2 {
			continue
		}
		profit := (len(p.Kernel)-1)*len(p.Cokernel) - 1
		if profit < 1 {
			continue
		}
		cand := singleRowCandidate{pair: p, profit: profit}
		if !found || betterSingleRow(cand, best) {
			best, found = cand, true
		}
	}

	return best, found
}

// betterSingleRow reports whether a ranks ahead of b under the
// tie-break order of ExtractSingleRow's doc comment.
func betterSingleRow(a, b singleRowCandidate) bool {
	if a.profit != b.profit {
		return a.profit > b.profit
	}
	if len(a.pair.Cokernel) != len(b.pair.Cokernel) {
		return len(a.pair.Cokernel) > len(b.pair.Cokernel)
	}
	if len(a.pair.Kernel) != len(b.pair.Kernel) {
		return len(a.pair.Kernel) > len(b.pair.Kernel)
	}

	return a.pair.Cokernel.Less(b.pair.Cokernel)
}

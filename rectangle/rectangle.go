package rectangle

import (
	"sort"

	"github.com/katalvlaran/boolfactor/kmatrix"
)

// Rectangle is an all-ones submatrix of a kmatrix.Matrix, identified
// by its row and column index sets. Both are kept sorted ascending.
type Rectangle struct {
	Rows []int
	Cols []int
}

// Result is the outcome of one Enumerate call: the rectangles found
// (excluding trivial single-row/single-column ones), and whether the
// configured cap cut enumeration short before every column subset was
// explored.
type Result struct {
	Rectangles []Rectangle
	Capped     bool
}

// Enumerate performs a depth-first search over column subsets:
// starting from each column, it intersects row-sets as columns are
// added, emitting the column-closure of every distinct row-set
// reached. Single-row and single-column rectangles are excluded — the
// extractor's single-row path (package extract) handles that case.
//
// The search is bounded by Option (default DefaultMaxRectangles); when
// the bound is hit, Result.Capped is true and the caller proceeds with
// whatever rectangles were already found.
func Enumerate(m *kmatrix.Matrix, opts ...Option) Result {
	cfg := newConfig(opts...)
	if m.NumCols() == 0 || m.NumRows() == 0 {
		return Result{}
	}

	limit := cfg.maxRectangles
	// Traversal nodes that close to an already-seen or trivial
	// rectangle still cost work; budget them generously above the
	// emission cap so pathological matrices still terminate promptly.
	callBudget := limit
	if callBudget <= 0 {
		callBudget = DefaultMaxRectangles
	}
	callBudget *= 4

	var (
		results []Rectangle
		visited = make(map[string]struct{})
		capped  bool
		calls   int
	)

	var dfs func(rowSet []int, startAfter int)
	dfs = func(rowSet []int, startAfter int) {
		if capped {
			return
		}
		calls++
		if calls > callBudget {
			capped = true

			return
		}

		closedCols := closureColumns(m, rowSet)
		key := rectKey(rowSet, closedCols)
		if _, seen := visited[key]; !seen {
			visited[key] = struct{}{}
			if len(rowSet) >= 2 && len(closedCols) >= 2 {
				if limit > 0 && len(results) >= limit {
					capped = true

					return
				}
				results = append(results, Rectangle{
					Rows: append([]int(nil), rowSet...),
					Cols: closedCols,
				})
			}
		}

		for j := startAfter + 1; j < m.NumCols(); j++ {
			if containsSorted(closedCols, j) {
				continue
			}
			newRows := intersectSorted(rowSet, m.RowsOf(j))
			if len(newRows) == 0 {
				continue
			}
			dfs(newRows, j)
		}
	}

	for j := 0; j < m.NumCols() && !capped; j++ {
		dfs(m.RowsOf(j), j)
	}

	return Result{Rectangles: results, Capped: capped}
}

// Profit computes the literal-count reduction an extraction of rect
// would achieve, per the algebraic identity:
//
//	profit = L_C*(|R|-1) - |R|
//
// where L_C is the total literal count of rect's column cubes. The
// identity counts each row's co-kernel once on both sides, so the row
// (co-kernel) literal cost cancels out and does not appear here. A
// count of literals before/after an actual extraction also credits the
// co-kernel copies the merge removes, so it can exceed this value by
// (|C|-1) times the rows' total co-kernel literal count.
func Profit(m *kmatrix.Matrix, rect Rectangle) int {
	lc := 0
	for _, col := range rect.Cols {
		lc += m.ColLiteralCount(col)
	}
	r := len(rect.Rows)

	return lc*(r-1) - r
}

// Best selects the most profitable rectangle among those Enumerate
// finds, applying a deterministic tie-break: larger
// |R|*|C|, then larger |R|, then lexicographically smallest row
// tuple, then lexicographically smallest column tuple. It returns
// false if no rectangle has profit >= 1.
func Best(m *kmatrix.Matrix, opts ...Option) (rect Rectangle, found bool, capped bool) {
	res := Enumerate(m, opts...)
	best, ok := BestOf(m, res.Rectangles)

	return best, ok, res.Capped
}

// BestOf applies the same selection rule as Best to an already
// computed rectangle list, letting callers reuse one Enumerate call
// for multiple purposes (e.g. logging all candidates before picking).
func BestOf(m *kmatrix.Matrix, candidates []Rectangle) (Rectangle, bool) {
	var (
		best      Rectangle
		bestSet   bool
		bestScore int
	)
	for _, r := range candidates {
		score := Profit(m, r)
		if score < 1 {
			continue
		}
		if !bestSet || better(m, r, score, best, bestScore) {
			best, bestScore, bestSet = r, score, true
		}
	}

	return best, bestSet
}

// Rank returns candidates with profit >= 1, sorted best-first under
// the same tie-break order as Best. The driver uses this to retry the
// next-best candidate when the top one fails to realize — a failed
// realization is a recoverable skip to the next candidate.
func Rank(m *kmatrix.Matrix, candidates []Rectangle) []Rectangle {
	type scored struct {
		rect  Rectangle
		score int
	}
	profitable := make([]scored, 0, len(candidates))
	for _, r := range candidates {
		if p := Profit(m, r); p >= 1 {
			profitable = append(profitable, scored{r, p})
		}
	}
	sort.Slice(profitable, func(i, j int) bool {
		return better(m, profitable[i].rect, profitable[i].score, profitable[j].rect, profitable[j].score)
	})
	out := make([]Rectangle, len(profitable))
	for i, s := range profitable {
		out[i] = s.rect
	}

	return out
}

// better reports whether candidate (with precomputed score) ranks
// ahead of incumbent under the tie-break order documented on Best.
func better(m *kmatrix.Matrix, cand Rectangle, candScore int, incumbent Rectangle, incScore int) bool {
	if candScore != incScore {
		return candScore > incScore
	}
	candArea, incArea := len(cand.Rows)*len(cand.Cols), len(incumbent.Rows)*len(incumbent.Cols)
	if candArea != incArea {
		return candArea > incArea
	}
	if len(cand.Rows) != len(incumbent.Rows) {
		return len(cand.Rows) > len(incumbent.Rows)
	}
	if c := lexLess(cand.Rows, incumbent.Rows); c != 0 {
		return c < 0
	}

	return lexLess(cand.Cols, incumbent.Cols) < 0
}

// lexLess compares two sorted int slices lexicographically, returning
// a negative number if a < b, positive if a > b, zero if equal.
func lexLess(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}

	return len(a) - len(b)
}

// closureColumns returns every column whose row-set is a superset of
// rowSet, sorted ascending — the closure step of rectangle enumeration.
func closureColumns(m *kmatrix.Matrix, rowSet []int) []int {
	var out []int
	for j := 0; j < m.NumCols(); j++ {
		if supersetSorted(m.RowsOf(j), rowSet) {
			out = append(out, j)
		}
	}

	return out
}

// rectKey returns a stable key for deduplicating rectangles reached
// via different DFS start points that converge on the same closure.
func rectKey(rows, cols []int) string {
	return intsKey(rows) + "/" + intsKey(cols)
}

func intsKey(xs []int) string {
	b := make([]byte, 0, len(xs)*5)
	for i, x := range xs {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, x)
	}

	return string(b)
}

func appendInt(b []byte, x int) []byte {
	if x == 0 {
		return append(b, '0')
	}
	neg := x < 0
	if neg {
		x = -x
	}
	start := len(b)
	for x > 0 {
		b = append(b, byte('0'+x%10))
		x /= 10
	}
	if neg {
		b = append(b, '-')
	}
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}

// intersectSorted returns the sorted intersection of two sorted int
// slices.
func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return out
}

// supersetSorted reports whether big contains every element of small
// (both sorted ascending).
func supersetSorted(big, small []int) bool {
	i := 0
	for _, v := range small {
		for i < len(big) && big[i] < v {
			i++
		}
		if i >= len(big) || big[i] != v {
			return false
		}
	}

	return true
}

// containsSorted reports whether v is present in the sorted slice xs.
func containsSorted(xs []int, v int) bool {
	i := sort.SearchInts(xs, v)

	return i < len(xs) && xs[i] == v
}

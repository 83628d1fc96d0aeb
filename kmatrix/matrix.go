package kmatrix

import (
	"sort"

	"github.com/katalvlaran/boolfactor/kernel"
	"github.com/katalvlaran/boolfactor/literal"
)

// cell identifies one (row, column) entry.
type cell struct {
	row, col int
}

// Matrix is the kernel-cube matrix: rows are co-kernels,
// columns are individual cubes drawn from the kernels, and an entry is
// set when the kernel produced by a row's co-kernel contains that
// column's cube. Matrix is built once by Build and never mutated.
type Matrix struct {
	Rows []literal.Cube // co-kernels, in first-seen order
	Cols []literal.Cube // kernel cubes, in first-seen order

	rowIndex map[string]int
	colIndex map[string]int
	entries  map[cell]struct{}

	// rowsOf/colsOf cache, per column/row, the set of indices it is
	// set against — used heavily by the rectangle enumerator.
	rowsOfCol [][]int
	colsOfRow [][]int
}

// Build constructs the kernel-cube matrix from a set of kernel/co-kernel
// pairs (typically kernel.Kernels(f)). Rows and columns are
// deduplicated by value; first occurrence wins the assigned index.
//
// Complexity: O(Σ |Kernel_i|) entries inserted, each O(1) amortized.
func Build(pairs []kernel.Pair) *Matrix {
	m := &Matrix{
		rowIndex: make(map[string]int),
		colIndex: make(map[string]int),
		entries:  make(map[cell]struct{}),
	}
	for _, p := range pairs {
		r := m.internRow(p.Cokernel)
		for _, c := range p.Kernel {
			col := m.internCol(c)
			m.entries[cell{r, col}] = struct{}{}
		}
	}
	m.buildIndexCaches()

	return m
}

func (m *Matrix) internRow(c literal.Cube) int {
	key := c.Key()
	if idx, ok := m.rowIndex[key]; ok {
		return idx
	}
	idx := len(m.Rows)
	m.Rows = append(m.Rows, c.Clone())
	m.rowIndex[key] = idx

	return idx
}

func (m *Matrix) internCol(c literal.Cube) int {
	key := c.Key()
	if idx, ok := m.colIndex[key]; ok {
		return idx
	}
	idx := len(m.Cols)
	m.Cols = append(m.Cols, c.Clone())
	m.colIndex[key] = idx

	return idx
}

func (m *Matrix) buildIndexCaches() {
	m.rowsOfCol = make([][]int, len(m.Cols))
	m.colsOfRow = make([][]int, len(m.Rows))
	for c := range m.entries {
		m.rowsOfCol[c.col] = append(m.rowsOfCol[c.col], c.row)
		m.colsOfRow[c.row] = append(m.colsOfRow[c.row], c.col)
	}
	for i := range m.rowsOfCol {
		sort.Ints(m.rowsOfCol[i])
	}
	for i := range m.colsOfRow {
		sort.Ints(m.colsOfRow[i])
	}
}

// NumRows returns the number of distinct co-kernels.
func (m *Matrix) NumRows() int { return len(m.Rows) }

// NumCols returns the number of distinct kernel cubes.
func (m *Matrix) NumCols() int { return len(m.Cols) }

// At reports whether the entry at (row, col) is set.
func (m *Matrix) At(row, col int) bool {
	_, ok := m.entries[cell{row, col}]

	return ok
}

// RowsOf returns the (sorted) row indices set against column col.
func (m *Matrix) RowsOf(col int) []int {
	return m.rowsOfCol[col]
}

// ColsOf returns the (sorted) column indices set against row row.
func (m *Matrix) ColsOf(row int) []int {
	return m.colsOfRow[row]
}

// ColLiteralCount returns the literal count of the cube labeling
// column col.
func (m *Matrix) ColLiteralCount(col int) int {
	return len(m.Cols[col])
}

// RowLiteralCount returns the literal count of the co-kernel labeling
// row row.
func (m *Matrix) RowLiteralCount(row int) int {
	return len(m.Rows[row])
}

package kmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolfactor/kernel"
	"github.com/katalvlaran/boolfactor/kmatrix"
	"github.com/katalvlaran/boolfactor/literal"
)

func TestBuild_EmptyPairsYieldsEmptyMatrix(t *testing.T) {
	t.Parallel()

	m := kmatrix.Build(nil)
	assert.Equal(t, 0, m.NumRows())
	assert.Equal(t, 0, m.NumCols())
}

func TestBuild_RowsAndColsDedupedByValue(t *testing.T) {
	t.Parallel()

	pairs := []kernel.Pair{
		{
			Cokernel: literal.NewCube("a"),
			Kernel:   literal.NewExpr(literal.NewCube("b"), literal.NewCube("c")),
		},
		{
			// same co-kernel as above, different kernel
			Cokernel: literal.NewCube("a"),
			Kernel:   literal.NewExpr(literal.NewCube("d")),
		},
		{
			Cokernel: literal.NewCube("e"),
			Kernel:   literal.NewExpr(literal.NewCube("b")), // shares column "b" with row 0
		},
	}
	m := kmatrix.Build(pairs)

	require.Equal(t, 2, m.NumRows())
	require.Equal(t, 3, m.NumCols())

	// Row for co-kernel "a" must be set against columns "b","c","d".
	var rowA int
	for i, r := range m.Rows {
		if r.Equal(literal.NewCube("a")) {
			rowA = i
		}
	}
	cols := m.ColsOf(rowA)
	assert.Len(t, cols, 3)
}

func TestBuild_EntrySetExactlyWhereKernelContainsCube(t *testing.T) {
	t.Parallel()

	pairs := []kernel.Pair{
		{Cokernel: literal.NewCube("a"), Kernel: literal.NewExpr(literal.NewCube("b"), literal.NewCube("c"))},
	}
	m := kmatrix.Build(pairs)
	require.Equal(t, 1, m.NumRows())
	require.Equal(t, 2, m.NumCols())
	assert.True(t, m.At(0, 0))
	assert.True(t, m.At(0, 1))
}

func TestColLiteralCount(t *testing.T) {
	t.Parallel()

	pairs := []kernel.Pair{
		{Cokernel: literal.NewCube("a"), Kernel: literal.NewExpr(literal.NewCube("b", "c"))},
	}
	m := kmatrix.Build(pairs)
	assert.Equal(t, 2, m.ColLiteralCount(0))
	assert.Equal(t, 1, m.RowLiteralCount(0))
}

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolfactor/kernel"
	"github.com/katalvlaran/boolfactor/literal"
)

func mkExpr(cubes ...[]string) literal.Expr {
	cc := make([]literal.Cube, len(cubes))
	for i, c := range cubes {
		cc[i] = literal.NewCube(c...)
	}

	return literal.NewExpr(cc...)
}

func TestKernels_TooFewCubesYieldsNone(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kernel.Kernels(mkExpr()))
	assert.Empty(t, kernel.Kernels(mkExpr([]string{"a"})))
}

// TestKernels_SimpleFactorable checks that ab + ac + ad has kernel
// {b,c,d} with co-kernel {a}, and (since the whole expression is not
// itself cube-free, "a" being common) that is its only kernel.
func TestKernels_SimpleFactorable(t *testing.T) {
	t.Parallel()

	f := mkExpr([]string{"a", "b"}, []string{"a", "c"}, []string{"a", "d"})
	pairs := kernel.Kernels(f)

	require.Len(t, pairs, 1)
	assert.True(t, pairs[0].Cokernel.Equal(literal.NewCube("a")))
	assert.True(t, pairs[0].Kernel.Equal(mkExpr([]string{"b"}, []string{"c"}, []string{"d"})))
}

// TestKernels_CubeFreeExpressionIsItsOwnKernel checks that an
// expression with no literal shared by every cube is one of its own
// kernels, with the empty co-kernel.
func TestKernels_CubeFreeExpressionIsItsOwnKernel(t *testing.T) {
	t.Parallel()

	f := mkExpr([]string{"a", "b"}, []string{"c", "d"})
	pairs := kernel.Kernels(f)

	found := false
	for _, p := range pairs {
		if len(p.Cokernel) == 0 && p.Kernel.Equal(f) {
			found = true
		}
	}
	assert.True(t, found, "cube-free expression should appear as its own kernel with empty co-kernel")
}

func TestKernels_NoDuplicateKernelValues(t *testing.T) {
	t.Parallel()

	// ab + ac + bd + cd has two kernels sharing structure ({a,d} and
	// {b,c}) reachable via multiple literal paths.
	f := mkExpr([]string{"a", "b"}, []string{"a", "c"}, []string{"b", "d"}, []string{"c", "d"})
	pairs := kernel.Kernels(f)

	seen := make(map[string]bool)
	for _, p := range pairs {
		key := p.Kernel.Key()
		assert.False(t, seen[key], "duplicate kernel %v", p.Kernel)
		seen[key] = true
	}
	assert.NotEmpty(t, pairs)
}

func TestKernels_EveryKernelIsCubeFree(t *testing.T) {
	t.Parallel()

	inputs := []literal.Expr{
		mkExpr([]string{"a", "b"}, []string{"a", "c"}, []string{"a", "d"}),
		mkExpr([]string{"h"}, []string{"b", "f", "g"}, []string{"d", "f", "a"}, []string{"d", "f", "b"},
			[]string{"d", "f", "c"}, []string{"e", "f", "a"}, []string{"e", "f", "b"}, []string{"e", "f", "c"},
			[]string{"d", "g"}, []string{"g", "e"}),
		mkExpr([]string{"a", "b"}, []string{"a", "c"}, []string{"b", "d"}, []string{"c", "d"}),
	}
	for _, f := range inputs {
		for _, p := range kernel.Kernels(f) {
			assert.True(t, literal.IsCubeFree(p.Kernel), "kernel %v of %v must be cube-free", p.Kernel, f)
		}
	}
}

// TestKernels_QuotientReproducesKernel checks that dividing f by each
// reported co-kernel actually yields an expression containing the
// kernel's cubes (the defining relation K = F / d).
func TestKernels_QuotientReproducesKernel(t *testing.T) {
	t.Parallel()

	f := mkExpr([]string{"a", "b"}, []string{"a", "c"}, []string{"a", "d"})
	for _, p := range kernel.Kernels(f) {
		q := literal.DivideByCube(f, p.Cokernel)
		for _, c := range p.Kernel {
			assert.True(t, literal.ContainsCube(q, c))
		}
	}
}

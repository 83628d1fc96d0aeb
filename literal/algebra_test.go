package literal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolfactor/literal"
)

func expr(cubes ...[]string) literal.Expr {
	cc := make([]literal.Cube, len(cubes))
	for i, c := range cubes {
		cc[i] = literal.NewCube(c...)
	}

	return literal.NewExpr(cc...)
}

func TestCommonLiterals(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		e    literal.Expr
		want literal.Cube
	}{
		{"empty", expr(), literal.NewCube()},
		{"single cube", expr([]string{"a", "b"}), literal.NewCube("a", "b")},
		{"shared literal", expr([]string{"a", "b"}, []string{"a", "c"}), literal.NewCube("a")},
		{"no shared literal", expr([]string{"a"}, []string{"b"}), literal.NewCube()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tc.want.Equal(literal.CommonLiterals(tc.e)))
		})
	}
}

func TestIsCubeFree(t *testing.T) {
	t.Parallel()

	assert.False(t, literal.IsCubeFree(expr([]string{"a", "b"})), "single cube is never cube-free")
	assert.False(t, literal.IsCubeFree(expr([]string{"a"}, []string{"a", "b"})), "shared literal a")
	assert.True(t, literal.IsCubeFree(expr([]string{"a"}, []string{"b"})))
	assert.True(t, literal.IsCubeFree(expr([]string{"b", "c"}, []string{"a"})))
}

func TestDivideByCube(t *testing.T) {
	t.Parallel()

	f := expr([]string{"a", "b"}, []string{"a", "c"}, []string{"d"})
	got := literal.DivideByCube(f, literal.NewCube("a"))
	want := expr([]string{"b"}, []string{"c"})
	assert.True(t, want.Equal(got))
}

func TestDivideByCube_EmptyDivisorIsIdentity(t *testing.T) {
	t.Parallel()

	f := expr([]string{"a", "b"}, []string{"c"})
	got := literal.DivideByCube(f, literal.NewCube())
	assert.True(t, f.Equal(got))
}

func TestMultiplyCube(t *testing.T) {
	t.Parallel()

	got := literal.MultiplyCube(literal.NewCube("a"), expr([]string{"b"}, []string{"c"}))
	want := expr([]string{"a", "b"}, []string{"a", "c"})
	assert.True(t, want.Equal(got))
}

func TestMultiplyCube_DedupsResultingCubes(t *testing.T) {
	t.Parallel()

	// a*(b + ab) = ab + ab -> {ab}
	got := literal.MultiplyCube(literal.NewCube("a"), expr([]string{"b"}, []string{"a", "b"}))
	assert.Len(t, got, 1)
}

func TestRemainder(t *testing.T) {
	t.Parallel()

	f := expr([]string{"a", "b"}, []string{"a", "c"}, []string{"d"})
	got := literal.Remainder(f, literal.NewCube("a"))
	want := expr([]string{"d"})
	assert.True(t, want.Equal(got))
}

func TestLiteralCount(t *testing.T) {
	t.Parallel()

	f := expr([]string{"a", "b"}, []string{"a"}, []string{})
	assert.Equal(t, 3, literal.LiteralCount(f))
}

// TestDivisionReconstructsExpression checks the algebraic invariant:
// expr = multiply(d, divide(expr, d)) U remainder(expr, d), as a
// disjoint union of cubes.
func TestDivisionReconstructsExpression(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		f := randomExpr(rng, 5, 6)
		d := randomCube(rng, 3)

		quotientPart := literal.MultiplyCube(d, literal.DivideByCube(f, d))
		rest := literal.Remainder(f, d)
		reconstructed := literal.NewExpr(append(append([]literal.Cube{}, quotientPart...), rest...)...)

		require.True(t, f.Equal(reconstructed), "trial %d: f=%v d=%v reconstructed=%v", trial, f, d, reconstructed)
	}
}

func TestExpand_SubstitutesDefinitionsRecursively(t *testing.T) {
	t.Parallel()

	// F = a*t1, t1 = b + c  =>  expanded F = ab + ac
	f := expr([]string{"a", "t1"})
	defs := map[literal.Literal]literal.Expr{
		"t1": expr([]string{"b"}, []string{"c"}),
	}
	got := literal.Expand(f, defs)
	want := expr([]string{"a", "b"}, []string{"a", "c"})
	assert.True(t, want.Equal(got))
}

func TestExpand_NestedDefinitions(t *testing.T) {
	t.Parallel()

	// F = t1, t1 = a*t2, t2 = d + e  => expanded F = ad + ae
	f := expr([]string{"t1"})
	defs := map[literal.Literal]literal.Expr{
		"t1": expr([]string{"a", "t2"}),
		"t2": expr([]string{"d"}, []string{"e"}),
	}
	got := literal.Expand(f, defs)
	want := expr([]string{"a", "d"}, []string{"a", "e"})
	assert.True(t, want.Equal(got))
}

func randomCube(rng *rand.Rand, alphabet int) literal.Cube {
	letters := "abcdef"[:alphabet]
	n := rng.Intn(3)
	lits := make([]literal.Literal, 0, n)
	for i := 0; i < n; i++ {
		lits = append(lits, string(letters[rng.Intn(len(letters))]))
	}

	return literal.NewCube(lits...)
}

func randomExpr(rng *rand.Rand, alphabet, maxCubes int) literal.Expr {
	n := 1 + rng.Intn(maxCubes)
	cubes := make([]literal.Cube, 0, n)
	for i := 0; i < n; i++ {
		cubes = append(cubes, randomCube(rng, alphabet))
	}

	return literal.NewExpr(cubes...)
}

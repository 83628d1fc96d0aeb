package literal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/boolfactor/literal"
)

func TestNewCube_CanonicalizesAndDedups(t *testing.T) {
	t.Parallel()

	c := literal.NewCube("b", "a", "b", "c")
	assert.Equal(t, literal.Cube{"a", "b", "c"}, c)
}

func TestNewCube_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, literal.Cube{}, literal.NewCube())
}

func TestNewExpr_DedupsCubesByValue(t *testing.T) {
	t.Parallel()

	e := literal.NewExpr(
		literal.NewCube("a", "b"),
		literal.NewCube("b", "a"), // same cube, different construction order
		literal.NewCube("c"),
	)
	assert.Len(t, e, 2)
	assert.True(t, literal.ContainsCube(e, literal.NewCube("a", "b")))
	assert.True(t, literal.ContainsCube(e, literal.NewCube("c")))
}

func TestCube_Less_ShorterSortsFirst(t *testing.T) {
	t.Parallel()

	short := literal.NewCube("z")
	long := literal.NewCube("a", "b")
	assert.True(t, short.Less(long))
	assert.False(t, long.Less(short))
}

func TestCube_Less_TiesBreakLexicographically(t *testing.T) {
	t.Parallel()

	ab := literal.NewCube("a", "b")
	ac := literal.NewCube("a", "c")
	assert.True(t, ab.Less(ac))
}

func TestExpr_KeyIsOrderIndependent(t *testing.T) {
	t.Parallel()

	e1 := literal.NewExpr(literal.NewCube("a"), literal.NewCube("b", "c"))
	e2 := literal.NewExpr(literal.NewCube("c", "b"), literal.NewCube("a"))
	assert.Equal(t, e1.Key(), e2.Key())
	assert.True(t, e1.Equal(e2))
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	c := literal.NewCube("a", "b")
	clone := c.Clone()
	clone[0] = "z"
	assert.Equal(t, literal.Cube{"a", "b"}, c)
}

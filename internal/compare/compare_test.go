package compare

import (
	"testing"

	"github.com/DjordjeVuckovic/code-comparator/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestCompare_Partitions(t *testing.T) {
	a := token.NewSet("A1", "B2", "C3", "D4")
	b := token.NewSet("C3", "D4", "E5")

	res := Compare(a, b)

	assert.Equal(t, []string{"C3", "D4"}, res.Matches)
	assert.Equal(t, []string{"A1", "B2"}, res.OnlyInFirst)
	assert.Equal(t, []string{"E5"}, res.OnlyInSecond)

	c := res.Counts()
	assert.Equal(t, a.Len(), c.Matches+c.OnlyInFirst)
	assert.Equal(t, b.Len(), c.Matches+c.OnlyInSecond)

	union := token.NewSet()
	for _, group := range [][]string{res.Matches, res.OnlyInFirst, res.OnlyInSecond} {
		for _, tok := range group {
			assert.False(t, union.Contains(tok), "token %q appears in more than one group", tok)
			union.Add(tok)
		}
	}
	assert.Equal(t, 5, union.Len())
}

func TestCompare_Symmetry(t *testing.T) {
	a := token.NewSet("x", "y", "z")
	b := token.NewSet("y", "w")

	ab := Compare(a, b)
	ba := Compare(b, a)

	assert.Equal(t, ab.Matches, ba.Matches)
	assert.Equal(t, ab.OnlyInFirst, ba.OnlyInSecond)
	assert.Equal(t, ab.OnlyInSecond, ba.OnlyInFirst)
	assert.Equal(t, ba, ab.Swap())
}

func TestCompare_SelfComparison(t *testing.T) {
	a := token.NewSet("b", "a", "c")

	res := Compare(a, a)

	assert.Equal(t, []string{"a", "b", "c"}, res.Matches)
	assert.Empty(t, res.OnlyInFirst)
	assert.Empty(t, res.OnlyInSecond)
	assert.True(t, res.Identical())
}

func TestCompare_EmptySecond(t *testing.T) {
	a := token.NewSet("b", "a")

	res := Compare(a, token.NewSet())

	assert.Empty(t, res.Matches)
	assert.Equal(t, []string{"a", "b"}, res.OnlyInFirst)
	assert.Empty(t, res.OnlyInSecond)
	assert.NotNil(t, res.OnlyInSecond)
}

func TestCompare_BothEmpty(t *testing.T) {
	res := Compare(token.NewSet(), token.NewSet())

	assert.Equal(t, Counts{}, res.Counts())
	assert.True(t, res.Identical())
}

func TestCompare_Disjoint(t *testing.T) {
	res := Compare(token.NewSet("a"), token.NewSet("b"))

	assert.Empty(t, res.Matches)
	assert.Equal(t, []string{"a"}, res.OnlyInFirst)
	assert.Equal(t, []string{"b"}, res.OnlyInSecond)
	assert.False(t, res.Identical())
}

func TestCompare_DoesNotMutateInputs(t *testing.T) {
	a := token.NewSet("a", "b")
	b := token.NewSet("b", "c")

	_ = Compare(a, b)

	assert.Equal(t, token.NewSet("a", "b"), a)
	assert.Equal(t, token.NewSet("b", "c"), b)
}

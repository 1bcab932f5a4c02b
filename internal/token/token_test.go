package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_SortedIsAscending(t *testing.T) {
	s := NewSet("b", "a", "C", "a")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"C", "a", "b"}, s.Sorted())
}

func TestSet_SortedEmpty(t *testing.T) {
	assert.Empty(t, NewSet().Sorted())
}

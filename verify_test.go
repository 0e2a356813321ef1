package ordsort_test

import (
	"cmp"
	"testing"

	"github.com/lanrat/ordsort"
	"github.com/stretchr/testify/assert"
)

func TestIsSorted(t *testing.T) {
	assert.True(t, ordsort.IsSorted([]int{}, cmp.Compare[int]))
	assert.True(t, ordsort.IsSorted([]int{1}, cmp.Compare[int]))
	assert.True(t, ordsort.IsSorted([]int{1, 1, 2, 3}, cmp.Compare[int]))
	assert.False(t, ordsort.IsSorted([]int{1, 3, 2}, cmp.Compare[int]))
	assert.True(t, ordsort.IsSorted([]int{3, 2, 2}, ordsort.Reverse[int](cmp.Compare[int])))
}

func TestSameElements(t *testing.T) {
	assert.True(t, ordsort.SameElements([]string{}, []string{}))
	assert.True(t, ordsort.SameElements([]string{"a", "b", "a"}, []string{"a", "a", "b"}))
	assert.False(t, ordsort.SameElements([]string{"a", "b", "a"}, []string{"a", "b", "b"}))
	assert.False(t, ordsort.SameElements([]string{"a"}, []string{"a", "a"}))
}

package seq

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(n int) bool { return n%2 == 0 }

func Test_Of(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(Of(1, 2, 3)))
	assert.Empty(t, slices.Collect(Of[int]()))
}

func Test_Empty(t *testing.T) {
	assert.Empty(t, slices.Collect(Empty[string]()))
}

func Test_Filter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, slices.Collect(Filter(isEven, Of(1, 2, 3, 4, 5))))
}

func Test_Remove(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(Remove(isEven, Of(1, 2, 3, 4, 5))))
}

func Test_Take(t *testing.T) {
	assert.Equal(t, []int{1, 2}, slices.Collect(Take(2, Of(1, 2, 3))))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(Take(9, Of(1, 2, 3))))
	assert.Empty(t, slices.Collect(Take(0, Of(1, 2, 3))))
	assert.Empty(t, slices.Collect(Take(-1, Of(1, 2, 3))))
}

func Test_TakeWhile(t *testing.T) {
	small := func(n int) bool { return n < 3 }
	assert.Equal(t, []int{1, 2}, slices.Collect(TakeWhile(small, Of(1, 2, 3, 1))))
}

func Test_Drop(t *testing.T) {
	assert.Equal(t, []int{3}, slices.Collect(Drop(2, Of(1, 2, 3))))
	assert.Empty(t, slices.Collect(Drop(9, Of(1, 2, 3))))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(Drop(0, Of(1, 2, 3))))
}

func Test_DropWhile(t *testing.T) {
	small := func(n int) bool { return n < 3 }
	// once pred fails, later small elements pass through
	assert.Equal(t, []int{3, 1}, slices.Collect(DropWhile(small, Of(1, 2, 3, 1))))
}

func Test_Unique(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(Unique(Of(1, 2, 1, 3, 2))))
}

func Test_UniqueBy(t *testing.T) {
	result := slices.Collect(UniqueBy(strings.ToLower, Of("Go", "GO", "rust", "go")))
	assert.Equal(t, []string{"Go", "rust"}, result)
}

func Test_Dedupe(t *testing.T) {
	assert.Equal(t, []int{1, 2, 1}, slices.Collect(Dedupe(Of(1, 1, 2, 2, 2, 1))))
}

func Test_First(t *testing.T) {
	v, ok := First(Of(7, 8))
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = First(Empty[int]())
	assert.False(t, ok)
}

func Test_Enumerate(t *testing.T) {
	var indexes []int
	var values []string
	for i, v := range Enumerate(Of("a", "b", "c")) {
		indexes = append(indexes, i)
		values = append(values, v)
	}
	assert.Equal(t, []int{0, 1, 2}, indexes)
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func Test_Restartable(t *testing.T) {
	s := Filter(isEven, Of(1, 2, 3, 4))
	assert.Equal(t, slices.Collect(s), slices.Collect(s))
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 1, "c": 2, "a": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeys(m))
}

func TestMinMaxAbs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(2, 5))
	assert.Equal(5, Max(2, 5))
	assert.Equal(3, Abs(-3))
	assert.Equal(int8(4), Abs(int8(4)))
}

func TestSpan(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Span[int]())
	assert.Equal(0, Span(7))
	assert.Equal(5, Span(3, 8, 5))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]int{1, 2, 3}))
}

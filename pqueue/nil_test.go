package pqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		nilPtr   *job
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		nilAny   any
		boxedNil any = nilPtr
		nilErr   error
	)

	assert.True(t, isNil(nilPtr))
	assert.True(t, isNil(nilMap))
	assert.True(t, isNil(nilSlice))
	assert.True(t, isNil(nilFunc))
	assert.True(t, isNil(nilChan))
	assert.True(t, isNil(nilAny))
	assert.True(t, isNil(boxedNil), "interface holding a nil pointer")
	assert.True(t, isNil(nilErr))

	assert.False(t, isNil(0))
	assert.False(t, isNil(""))
	assert.False(t, isNil([]int{}))
	assert.False(t, isNil(newJob("a")))
	assert.False(t, isNil[any](3))
	assert.False(t, isNil(struct{}{}))
}

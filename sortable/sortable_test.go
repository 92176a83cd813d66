package sortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1, Compare(Int(5), Int(3)))
		assert.Equal(t, -1, Compare(Int(3), Int(5)))
		assert.Equal(t, 0, Compare(Int(7), Int(7)))
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1, Compare(String("b"), String("a")))
		assert.Equal(t, -1, Compare(String("a"), String("b")))
		assert.Equal(t, 0, Compare(String("a"), String("a")))
	})
}

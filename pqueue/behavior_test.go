package pqueue

import (
	"testing"

	"github.com/amp-labs/amp-pq/date"
	"github.com/amp-labs/amp-pq/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReversed(t *testing.T) {
	t.Parallel()

	q, err := New(ValueBehaviors[string, int]().Reversed())
	require.NoError(t, err)

	require.NoError(t, q.Insert("A", 5))
	require.NoError(t, q.Insert("B", 3))
	require.NoError(t, q.Insert("C", 5))
	require.NoError(t, q.Insert("D", 3))

	assert.Equal(t, []string{"B", "D", "A", "C"}, elements(q))

	var empty Behaviors[string, int]
	assert.Nil(t, empty.Reversed().ComparePriorities)
}

func TestSortableCompare(t *testing.T) {
	t.Parallel()

	q, err := New(Behaviors[sortable.String, date.Date]{
		CopyElement:       ValueCopy[sortable.String],
		FreeElement:       NoFree[sortable.String],
		EqualElements:     ComparableEquals[sortable.String],
		CopyPriority:      date.Copy,
		FreePriority:      NoFree[date.Date],
		ComparePriorities: SortableCompare[date.Date],
	})
	require.NoError(t, err)

	require.NoError(t, q.Insert("renew passport", date.MustNew(1, 3, 2027)))
	require.NoError(t, q.Insert("file taxes", date.MustNew(15, 4, 2026)))
	require.NoError(t, q.Insert("dentist", date.MustNew(2, 3, 2027)))

	assert.Equal(t, []sortable.String{"dentist", "renew passport", "file taxes"}, elements(q))
	assert.True(t, q.Contains("dentist"))
}

func TestNaturalCompare(t *testing.T) {
	t.Parallel()

	assert.Positive(t, NaturalCompare("job10", "job9"))
	assert.Negative(t, NaturalCompare("job2", "job10"))
	assert.Zero(t, NaturalCompare("job7", "job7"))

	q, err := New(Behaviors[int, string]{
		CopyElement:       ValueCopy[int],
		FreeElement:       NoFree[int],
		EqualElements:     Equal[int],
		CopyPriority:      ValueCopy[string],
		FreePriority:      NoFree[string],
		ComparePriorities: NaturalCompare,
	})
	require.NoError(t, err)

	require.NoError(t, q.Insert(1, "v1.2"))
	require.NoError(t, q.Insert(2, "v1.10"))
	require.NoError(t, q.Insert(3, "v1.9"))

	assert.Equal(t, []int{2, 3, 1}, elements(q))
}

func TestNaturalCompareIsTotal(t *testing.T) {
	t.Parallel()

	b := Behaviors[string, string]{
		CopyElement:       ValueCopy[string],
		FreeElement:       NoFree[string],
		EqualElements:     Equal[string],
		CopyPriority:      ValueCopy[string],
		FreePriority:      NoFree[string],
		ComparePriorities: NaturalCompare,
	}

	t.Run("equal priorities keep insertion order", func(t *testing.T) {
		t.Parallel()

		q, err := New(b)
		require.NoError(t, err)

		require.NoError(t, q.Insert("A", "job5"))
		require.NoError(t, q.Insert("B", "job3"))
		require.NoError(t, q.Insert("C", "job5"))

		assert.Equal(t, []string{"A", "C", "B"}, elements(q))
	})

	t.Run("change priority finds the old priority", func(t *testing.T) {
		t.Parallel()

		q, err := New(b)
		require.NoError(t, err)

		require.NoError(t, q.Insert("A", "job5"))
		require.NoError(t, q.Insert("B", "job3"))

		require.NoError(t, q.ChangePriority("A", "job5", "job1"))

		assert.Equal(t, []string{"B", "A"}, elements(q))
		assert.Equal(t, []string{"job3", "job1"}, priorities(q))
	})

	t.Run("antisymmetric", func(t *testing.T) {
		t.Parallel()

		for _, pair := range [][2]string{{"a", "a"}, {"job2", "job10"}, {"x1y2", "x1y10"}, {"", "a"}} {
			assert.Equal(t, -NaturalCompare(pair[1], pair[0]), NaturalCompare(pair[0], pair[1]), pair)
		}
	})
}

func TestValueBehaviorsRankLargerFirst(t *testing.T) {
	t.Parallel()

	b := ValueBehaviors[string, float64]()

	assert.Positive(t, b.ComparePriorities(2.5, 1))
	assert.Zero(t, b.ComparePriorities(1, 1))
	assert.Negative(t, b.ComparePriorities(-1, 0))
}

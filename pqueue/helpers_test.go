package pqueue

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

var errCopy = errors.New("copy refused") //nolint:err113

// job is a pointer element so that nil checks and ownership are observable.
type job struct {
	id    uuid.UUID
	name  string
	freed bool
}

func newJob(name string) *job {
	return &job{id: uuid.New(), name: name}
}

// tracker hands out behaviors for *job elements and int priorities and
// records every copy and free.
type tracker struct {
	elementCopies  int
	elementFrees   int
	priorityCopies int
	priorityFrees  int

	failElement  func(*job) bool
	failPriority func(int) bool
	nilElement   bool
}

func (tr *tracker) behaviors() Behaviors[*job, int] {
	return Behaviors[*job, int]{
		CopyElement: func(j *job) (*job, error) {
			if tr.failElement != nil && tr.failElement(j) {
				return nil, errCopy
			}

			if tr.nilElement {
				return nil, nil
			}

			tr.elementCopies++
			c := &job{id: j.id, name: j.name}

			return c, nil
		},
		FreeElement: func(j *job) {
			tr.elementFrees++
			j.freed = true
		},
		EqualElements: func(a, b *job) bool {
			return a.id == b.id
		},
		CopyPriority: func(p int) (int, error) {
			if tr.failPriority != nil && tr.failPriority(p) {
				return 0, errCopy
			}

			tr.priorityCopies++

			return p, nil
		},
		FreePriority: func(int) {
			tr.priorityFrees++
		},
		ComparePriorities: OrderedCompare[int],
	}
}

func (tr *tracker) liveElements() int {
	return tr.elementCopies - tr.elementFrees
}

func (tr *tracker) livePriorities() int {
	return tr.priorityCopies - tr.priorityFrees
}

func newTracked(t *testing.T, opts ...Option) (*Queue[*job, int], *tracker) {
	t.Helper()

	tr := &tracker{}

	q, err := New(tr.behaviors(), append([]Option{WithLogger(slogt.New(t))}, opts...)...)
	require.NoError(t, err)
	require.NotNil(t, q)

	return q, tr
}

func newInts(t *testing.T) *Queue[string, int] {
	t.Helper()

	q, err := New(ValueBehaviors[string, int](), WithLogger(slogt.New(t)))
	require.NoError(t, err)

	return q
}

// names walks the queue with the cursor protocol.
func names(q *Queue[*job, int]) []string {
	var out []string

	for j, ok := q.GetFirst(); ok; j, ok = q.GetNext() {
		out = append(out, j.name)
	}

	return out
}

func elements[E, P any](q *Queue[E, P]) []E {
	var out []E

	for e, ok := q.GetFirst(); ok; e, ok = q.GetNext() {
		out = append(out, e)
	}

	return out
}

func priorities[E, P any](q *Queue[E, P]) []P {
	var out []P

	for _, p := range q.All() {
		out = append(out, p)
	}

	return out
}

package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stnet/pqueue"
)

// drain pops every entry and returns the values in pop order.
func drain(q *pqueue.Queue[int]) []int {
	var out []int
	for {
		v, _, ok := q.PopMin()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestQueue_Empty(t *testing.T) {
	q := pqueue.New[int](0)
	_, _, ok := q.PopMin()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_AscendingPriority(t *testing.T) {
	q := pqueue.New[int](0)
	q.Insert(1, 30)
	q.Insert(2, -10)
	q.Insert(3, 0)
	q.Insert(4, 7)

	assert.Equal(t, []int{2, 3, 4, 1}, drain(q))
}

func TestQueue_TiesPopInInsertionOrder(t *testing.T) {
	q := pqueue.New[int](0)
	for v := 10; v > 0; v-- {
		q.Insert(v, 5)
	}

	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, drain(q))
}

func TestQueue_DuplicatesLowestFirst(t *testing.T) {
	// The same value inserted twice: the improved (lower) priority pops first,
	// the stale one is still returned afterwards for the caller to discard.
	q := pqueue.New[int](0)
	q.Insert(7, 4)
	q.Insert(8, 2)
	q.Insert(7, -1)
	require.Equal(t, 3, q.Len())

	v, p, ok := q.PopMin()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, int64(-1), p)

	v, p, _ = q.PopMin()
	assert.Equal(t, 8, v)
	assert.Equal(t, int64(2), p)

	v, p, _ = q.PopMin()
	assert.Equal(t, 7, v)
	assert.Equal(t, int64(4), p)
}

func TestQueue_ResetRestartsOrdering(t *testing.T) {
	q := pqueue.New[int](0)
	q.Insert(1, 0)
	q.Insert(2, 0)
	q.Reset()
	assert.Equal(t, 0, q.Len())

	q.Insert(3, 0)
	q.Insert(4, 0)
	assert.Equal(t, []int{3, 4}, drain(q))
}

func BenchmarkQueue_InsertPop(b *testing.B) {
	q := pqueue.New[int](1 << 14)
	for i := 0; i < b.N; i++ {
		q.Reset()
		for j := 0; j < 1024; j++ {
			q.Insert(j, int64((j*7919)%1024))
		}
		for q.Len() > 0 {
			q.PopMin()
		}
	}
}

package pqueue

import "github.com/tidwall/btree"

// entry is one queued element. seq makes every entry unique and breaks ties
// between equal priorities by insertion order.
type entry[T any] struct {
	priority int64
	seq      uint64
	value    T
}

// entryLess orders entries by priority, then by insertion sequence.
func entryLess[T any](a, b entry[T]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

// Queue is a min-priority queue tolerating duplicate entries for the same value.
type Queue[T any] struct {
	tree *btree.BTreeG[entry[T]]
	seq  uint64
}

// New returns an empty Queue. hint is accepted for symmetry with the graph
// capacity option and only tunes the B-tree degree for large workloads.
func New[T any](hint int) *Queue[T] {
	opts := btree.Options{NoLocks: true}
	if hint > 4096 {
		opts.Degree = 64
	}

	return &Queue[T]{tree: btree.NewBTreeGOptions[entry[T]](entryLess[T], opts)}
}

// Reset empties the queue. The sequence counter restarts so that a run's
// tie-breaking never depends on earlier runs.
func (q *Queue[T]) Reset() {
	q.tree.Clear()
	q.seq = 0
}

// Insert queues v with the given priority. Inserting a value that is already
// queued adds a second entry; the lower priority pops first.
func (q *Queue[T]) Insert(v T, priority int64) {
	q.seq++
	q.tree.Set(entry[T]{priority: priority, seq: q.seq, value: v})
}

// PopMin removes and returns the entry with the smallest priority.
// ok is false when the queue is empty.
func (q *Queue[T]) PopMin() (v T, priority int64, ok bool) {
	e, ok := q.tree.PopMin()
	if !ok {
		return v, 0, false
	}

	return e.value, e.priority, true
}

// Len reports the number of queued entries, stale ones included.
func (q *Queue[T]) Len() int {
	return q.tree.Len()
}

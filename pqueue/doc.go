// Package pqueue implements the priority queue used by the distance-graph
// propagation loops.
//
// The queue is an ordered set of (priority, sequence, value) entries kept in a
// github.com/tidwall/btree BTreeG. It deliberately has no decrease-key
// operation: callers re-insert an element whenever its priority improves and
// discard stale entries when they are popped (lazy decrease-key).
//
// Ordering:
//
//   - Lowest priority first.
//   - Equal priorities pop in insertion order (a monotonic sequence number is
//     part of the key), so two runs over identical input pop identical
//     sequences.
//
// Complexity:
//
//   - Insert:  O(log N)
//   - PopMin:  O(log N)
//   - Reset:   O(1) amortized (the tree is cleared, not reallocated)
//
// A Queue is not safe for concurrent use.
package pqueue

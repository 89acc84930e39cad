// File: query.go
// Role: Bounded distance test (IsDistanceLessThan): a zero-length
//       depth-first search and the best-first trial search behind it.
// Determinism:
//   - Children are scanned in reverse adjacency order and queue ties break
//     by insertion order, so answers depend only on the edit history.

package distgraph

import "fmt"

// IsDistanceLessThan reports whether the shortest src→targ distance is
// below bound, phrased as: would adding targ→src with length −bound create a
// negative cycle? Potentials, distances and generations are left untouched;
// only marks and the trial scratch value are used.
//
// Modes:
//
//   - bound == 1 (zero-duration separation, the common case): a depth-first
//     search over zero-length edges. A hit answers true immediately.
//   - Otherwise, or when the zero-length search finds nothing, a best-first
//     trial search simulates the potential drop the reverse edge would cause and
//     follows only edges that improve on a node's real potential.
//
// The trial search queues each node at most once (marks form the visited set), so a
// later, larger improvement through an already-queued node is not followed.
// This is an approximation: it can miss a path and answer false, never the
// reverse. Children are scanned in reverse adjacency order.
//
// The result is meaningful only when potentials are feasible (after a
// successful propagation).
//
// Steps:
//  1. Validate both handles and the bound.
//  2. src == targ: the empty path has length 0.
//  3. bound == 1: zero-length depth-first search from src.
//  4. Best-first trial search from src seeded with potential(targ) − bound;
//     true as soon as targ's own potential would improve.
//
// Complexity: O(V + E) for the zero-length search, O((V + E) log V) for the
// trial search.
//
// Errors:
//   - ErrInvalidHandle if src or targ is not a live node of this graph.
//   - ErrOutOfBounds if bound is outside [MinLength, MaxLength].
func (g *Graph) IsDistanceLessThan(src, targ NodeID, bound Time) (bool, error) {
	if _, err := g.node(src); err != nil {
		return false, err
	}
	if _, err := g.node(targ); err != nil {
		return false, err
	}
	if !inBounds(bound) {
		return false, fmt.Errorf("%w: bound %d", ErrOutOfBounds, int64(bound))
	}

	if src == targ {
		return 0 < bound, nil
	}
	if bound == 1 {
		g.unmarkAll()
		if g.zeroPathTo(src.slot, targ.slot) {
			return true, nil
		}
	}

	return g.trialDrop(src.slot, targ.slot, bound), nil
}

// zeroPathTo searches depth-first for a path of zero-length edges.
func (g *Graph) zeroPathTo(at, targ int32) bool {
	g.mark(at)
	for _, es := range g.nodes[at].out {
		e := &g.edges[es]
		if e.length != 0 || g.isMarked(e.to) {
			continue
		}
		if e.to == targ || g.zeroPathTo(e.to, targ) {
			return true
		}
	}

	return false
}

// trialDrop runs the bounded best-first simulation described on IsDistanceLessThan.
func (g *Graph) trialDrop(src, targ int32, bound Time) bool {
	// 1) Simulated potential of src once targ→src (−bound) exists.
	//    If src does not improve, no new cycle can be negative.
	start := g.nodes[targ].potential.Add(-bound)
	if start >= g.nodes[src].potential {
		return false
	}

	// 2) Best-first by improvement delta (trial − potential)
	g.unmarkAll()
	g.queue.Reset()
	g.nodes[src].trial = start
	g.mark(src)
	g.queue.Insert(src, int64(start-g.nodes[src].potential))

	for {
		slot, _, ok := g.queue.PopMin()
		if !ok {
			return false
		}
		u := &g.nodes[slot]
		for i := len(u.out) - 1; i >= 0; i-- {
			e := &g.edges[u.out[i]]
			if e.length >= MaxLength {
				continue
			}
			v := &g.nodes[e.to]
			np := u.trial.Add(e.length)
			if np >= v.potential {
				continue // no improvement: the real potential already implies it
			}
			if e.to == targ {
				return true
			}
			if g.isMarked(e.to) {
				continue
			}
			g.mark(e.to)
			v.trial = np
			g.queue.Insert(e.to, int64(np-v.potential))
		}
	}
}

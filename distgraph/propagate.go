// File: propagate.go
// Role: Full and incremental Bellman-Ford propagation of potentials, and
//       negative-cycle (nogood) extraction.
// Determinism:
//   - Seeds are queued in slot order (full) or enqueue order (incremental);
//     the queue breaks priority ties by insertion order, so identical edit
//     sequences yield identical relaxation orders and identical nogoods.

package distgraph

import (
	"fmt"
	"time"
)

// Enqueue seeds n for the next IncrementalPropagate. AddEdgeSpec already does
// this for the source of every tightened edge; callers only need it after
// changing the network through other means.
func (g *Graph) Enqueue(n NodeID) error {
	if _, err := g.node(n); err != nil {
		return err
	}
	g.pending = append(g.pending, n.slot)

	return nil
}

// FullPropagate recomputes every potential from scratch as the shortest
// distance from a virtual zero node with a zero-length edge to every node.
//
// Steps:
//  1. Start a new generation and clear the queue and pending seeds.
//  2. For each live node: cache its potential in distance, reset the potential
//     to 0 and queue it with priority potential − distance.
//  3. Run the relaxation loop.
//
// Returns a wrapped ErrInconsistent if a negative cycle exists; Nogood then
// lists the cycle.
//
// Complexity: O(V·E·log V) worst case.
func (g *Graph) FullPropagate() error {
	start := time.Now()

	// 1) Fresh epoch
	g.nextGeneration()
	g.queue.Reset()
	g.pending = g.pending[:0]
	g.nogood = nil

	// 2) Seed every node from the virtual zero node
	seeds := 0
	for i := range g.nodes {
		n := &g.nodes[i]
		if !n.live {
			continue
		}
		g.touch(n)
		n.potential = 0
		g.queue.Insert(int32(i), int64(n.potential-n.distance))
		seeds++
	}

	// 3) Relax
	return g.finish(FullPropagation, seeds, start)
}

// IncrementalPropagate restores consistency after edits by propagating only
// from the nodes enqueued since the previous run. Potentials that were
// feasible before the edits stay the starting point, so the work is
// proportional to the region the edits actually affect.
//
// After a failed propagation the potentials are no longer feasible and the
// next call falls back to FullPropagate.
func (g *Graph) IncrementalPropagate() error {
	if g.stale {
		return g.FullPropagate()
	}
	start := time.Now()

	g.nextGeneration()
	g.queue.Reset()
	g.nogood = nil

	seeds := 0
	for _, slot := range g.pending {
		n := &g.nodes[slot]
		if !n.live || n.generation == g.generation {
			continue // deleted since, or already seeded
		}
		g.touch(n)
		g.queue.Insert(slot, 0)
		seeds++
	}
	g.pending = g.pending[:0]

	return g.finish(IncrementalPropagation, seeds, start)
}

// finish runs the relaxation loop and reports the outcome.
func (g *Graph) finish(kind PropagationKind, seeds int, start time.Time) error {
	stats := PropagationStats{Kind: kind, Seeds: seeds}
	ok := g.bellmanFord(&stats)
	stats.Consistent = ok
	stats.NogoodSize = len(g.nogood)
	stats.Duration = time.Since(start)
	g.stale = !ok
	if g.observer != nil {
		g.observer.ObservePropagation(stats)
	}
	if ok {
		return nil
	}

	g.logger.Debug("distgraph: negative cycle",
		"kind", kind.String(), "cycle", len(g.nogood), "relaxations", stats.Relaxations)

	return fmt.Errorf("%w: negative cycle of %d edges", ErrInconsistent, len(g.nogood))
}

// bellmanFord drains the queue, relaxing out-edges of every popped node.
// A popped entry is stale when its priority no longer equals the node's
// current delta (potential − distance); stale entries are skipped.
//
// A node whose depth exceeds the node count has an over-long predecessor
// chain. If that chain closes into a cycle the cycle is the nogood; if it
// does not (yet), the loop continues: a negative cycle keeps lowering
// potentials until its predecessor edges close up.
func (g *Graph) bellmanFord(stats *PropagationStats) bool {
	limit := g.liveNodes
	for {
		slot, prio, ok := g.queue.PopMin()
		if !ok {
			return true
		}
		stats.Pops++

		u := &g.nodes[slot]
		if !u.live || prio != int64(u.potential-u.distance) {
			continue
		}

		for _, es := range u.out {
			e := &g.edges[es]
			if e.length >= MaxLength {
				continue
			}
			v := &g.nodes[e.to]
			g.touch(v)

			np := u.potential.Add(e.length)
			if np >= v.potential {
				continue
			}
			v.potential = np
			v.predecessor = es
			v.depth = u.depth + 1
			stats.Relaxations++

			if (v.depth > limit || np <= MinLength) && g.extractNogood(e.to) {
				return false
			}
			g.queue.Insert(e.to, int64(np-v.distance))
		}
	}
}

// Nogood returns the edges of the last negative cycle in cycle order: each
// edge's To is the next edge's From, and the last edge returns to the first
// edge's From. It is empty after a successful propagation.
func (g *Graph) Nogood() []EdgeID {
	return append([]EdgeID(nil), g.nogood...)
}

// extractNogood walks predecessor edges back from slot. The first node seen
// twice lies on a cycle; the cycle is then walked once more to collect its
// edges. Reports false when the walk reaches a root instead.
func (g *Graph) extractNogood(slot int32) bool {
	// 1) Find a node on the cycle
	g.unmarkAll()
	x := slot
	for !g.isMarked(x) {
		g.mark(x)
		p := g.nodes[x].predecessor
		if p == noEdge {
			return false
		}
		x = g.edges[p].from
	}

	// 2) Collect the cycle backwards
	var cycle []EdgeID
	for at := x; ; {
		p := g.nodes[at].predecessor
		cycle = append(cycle, g.edgeID(p))
		at = g.edges[p].from
		if at == x {
			break
		}
	}

	// 3) Reverse into forward order
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}
	g.nogood = cycle

	return true
}

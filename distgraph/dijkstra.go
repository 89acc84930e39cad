// File: dijkstra.go
// Role: Single-source shortest paths over potential-reduced lengths and the
//       generation-scoped distance cache behind Distance.
// Determinism:
//   - Queue ties break by insertion order; out-edges are relaxed in
//     adjacency order.

package distgraph

// ShortestPath returns the length of the shortest src→dst path, or MaxLength
// when dst is unreachable. The search stops as soon as dst is settled.
//
// Edge lengths may be negative. The search runs on potential-reduced lengths
// (length + potential(u) − potential(v) ≥ 0), so it is exact whenever the
// potentials are feasible, i.e. after a successful propagation with no
// tightening edits since.
//
// A new generation is started: afterwards Distance(n) is valid for every node
// reached by this search and MaxLength for the others.
//
// Complexity: O((V + E) log V).
//
// Errors:
//   - ErrInvalidHandle if src or dst is not a live node of this graph.
func (g *Graph) ShortestPath(src, dst NodeID) (Time, error) {
	if _, err := g.node(src); err != nil {
		return MaxLength, err
	}
	if _, err := g.node(dst); err != nil {
		return MaxLength, err
	}
	g.dijkstra(src.slot, dst.slot)

	return g.Distance(dst), nil
}

// DistancesFrom runs the same search as ShortestPath without a target, so
// that Distance(n) afterwards holds the shortest src→n distance for every node.
//
// Complexity: O((V + E) log V).
//
// Errors:
//   - ErrInvalidHandle if src is not a live node of this graph.
func (g *Graph) DistancesFrom(src NodeID) error {
	if _, err := g.node(src); err != nil {
		return err
	}
	g.dijkstra(src.slot, noEdge)

	return nil
}

// Distance returns the distance cached by the most recent ShortestPath or
// DistancesFrom, or MaxLength if n was not reached by it (or is not live).
func (g *Graph) Distance(n NodeID) Time {
	nd, err := g.node(n)
	if err != nil || nd.generation != g.generation {
		return MaxLength
	}

	return nd.distance
}

// dijkstra settles nodes in order of reduced distance (distance − potential).
// dst < 0 means no early stop. Stale queue entries are recognised by a
// priority that no longer matches the node's current key.
func (g *Graph) dijkstra(src, dst int32) {
	gen := g.nextGeneration()
	g.queue.Reset()

	s := &g.nodes[src]
	s.generation = gen
	s.distance = 0
	s.depth = 0
	s.predecessor = noEdge
	g.queue.Insert(src, int64(s.distance-s.potential))

	for {
		slot, prio, ok := g.queue.PopMin()
		if !ok {
			return
		}
		u := &g.nodes[slot]
		if prio != int64(u.distance-u.potential) {
			continue // superseded by a shorter distance
		}
		if slot == dst {
			return
		}

		for _, es := range u.out {
			e := &g.edges[es]
			if e.length >= MaxLength {
				continue
			}
			v := &g.nodes[e.to]
			nd := u.distance.Add(e.length)
			if v.generation == gen && nd >= v.distance {
				continue
			}
			v.generation = gen
			v.distance = nd
			v.depth = u.depth + 1
			v.predecessor = es
			g.queue.Insert(e.to, int64(nd-v.potential))
		}
	}
}

// File: edges.go
// Role: Edge-spec algebra (AddEdgeSpec / RemoveEdgeSpec), physical edge
//       lifecycle and the doubling adjacency arrays.
// Invariants:
//   - At most one live edge per ordered (from, to) pair.
//   - edge.length == min(edge.specs) and len(edge.specs) > 0 for live edges.
//   - Every live edge slot appears exactly once in nodes[from].out and once in
//     nodes[to].in. A violation panics.

package distgraph

import "fmt"

// FindEdge returns the physical edge from→to, if any.
//
// Complexity: O(out-degree(from)).
func (g *Graph) FindEdge(from, to NodeID) (EdgeID, bool, error) {
	if _, err := g.node(from); err != nil {
		return EdgeID{}, false, err
	}
	if _, err := g.node(to); err != nil {
		return EdgeID{}, false, err
	}

	slot := g.findEdge(from.slot, to.slot)
	if slot == noEdge {
		return EdgeID{}, false, nil
	}

	return g.edgeID(slot), true, nil
}

// AddEdgeSpec records the constraint time(to) − time(from) ≤ length.
//
// Steps:
//  1. Validate both handles and the length bounds (no mutation on failure).
//  2. Reuse the existing from→to edge or create one.
//  3. Append length to the specs; lower the effective length if it is a new minimum.
//  4. If the edge tightened, enqueue from for the next IncrementalPropagate.
//
// Propagation is never triggered here.
//
// Complexity: O(out-degree(from)) amortized.
func (g *Graph) AddEdgeSpec(from, to NodeID, length Time) (EdgeID, error) {
	// 1) Validation
	if _, err := g.node(from); err != nil {
		return EdgeID{}, err
	}
	if _, err := g.node(to); err != nil {
		return EdgeID{}, err
	}
	if !inBounds(length) {
		return EdgeID{}, fmt.Errorf("%w: %d", ErrOutOfBounds, int64(length))
	}

	// 2) Physical edge lookup or creation
	slot := g.findEdge(from.slot, to.slot)
	tightened := false
	if slot == noEdge {
		slot = g.createEdge(from.slot, to.slot, length)
		tightened = true
	} else {
		// 3) Spec bookkeeping on the existing edge
		e := &g.edges[slot]
		e.specs = append(e.specs, length)
		if length < e.length {
			e.length = length
			tightened = true
		}
	}

	// 4) Seed the next incremental run
	if tightened && length < MaxLength {
		g.pending = append(g.pending, from.slot)
	}

	return g.edgeID(slot), nil
}

// RemoveEdgeSpec retracts one occurrence of length from the from→to edge.
// When the last spec goes the edge is deleted; otherwise the effective length
// is recomputed as the minimum of the remaining specs.
//
// Removing a constraint only loosens the network, so potentials stay feasible
// and nothing is enqueued.
//
// Complexity: O(out-degree(from) + specs).
func (g *Graph) RemoveEdgeSpec(from, to NodeID, length Time) error {
	if _, err := g.node(from); err != nil {
		return err
	}
	if _, err := g.node(to); err != nil {
		return err
	}
	if !inBounds(length) {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, int64(length))
	}

	slot := g.findEdge(from.slot, to.slot)
	if slot == noEdge {
		return fmt.Errorf("%w: no edge %v→%v", ErrEdgeNotFound, from, to)
	}
	e := &g.edges[slot]
	idx := -1
	for i, s := range e.specs {
		if s == length {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %v→%v has no spec %d", ErrEdgeNotFound, from, to, int64(length))
	}

	// Remove while keeping insertion order of the remaining specs.
	e.specs = append(e.specs[:idx], e.specs[idx+1:]...)
	if len(e.specs) == 0 {
		g.deleteEdge(slot)
		return nil
	}
	e.length = minSpec(e.specs)

	return nil
}

// DeleteEdge removes a physical edge together with all of its specs.
func (g *Graph) DeleteEdge(e EdgeID) error {
	if _, err := g.edge(e); err != nil {
		return err
	}
	g.deleteEdge(e.slot)

	return nil
}

// findEdge scans the out-list of from for an edge ending at to.
func (g *Graph) findEdge(from, to int32) int32 {
	for _, s := range g.nodes[from].out {
		if g.edges[s].to == to {
			return s
		}
	}

	return noEdge
}

// createEdge allocates an edge slot and links it into both adjacency lists.
func (g *Graph) createEdge(from, to int32, length Time) int32 {
	var slot int32
	if k := len(g.freeEdges); k > 0 {
		slot = g.freeEdges[k-1]
		g.freeEdges = g.freeEdges[:k-1]
	} else {
		g.edges = append(g.edges, edge{})
		slot = int32(len(g.edges) - 1)
	}

	e := &g.edges[slot]
	*e = edge{
		version: e.version + 1,
		live:    true,
		from:    from,
		to:      to,
		length:  length,
		specs:   []Time{length},
	}
	g.nodes[from].out = appendSlot(g.nodes[from].out, slot)
	g.nodes[to].in = appendSlot(g.nodes[to].in, slot)
	g.liveEdges++

	return slot
}

// deleteEdge unlinks and frees an edge slot.
func (g *Graph) deleteEdge(slot int32) {
	e := &g.edges[slot]

	var ok bool
	if g.nodes[e.from].out, ok = removeSlot(g.nodes[e.from].out, slot); !ok {
		panic(fmt.Sprintf("distgraph: edge e%d missing from out-list of n%d", slot, e.from))
	}
	if g.nodes[e.to].in, ok = removeSlot(g.nodes[e.to].in, slot); !ok {
		panic(fmt.Sprintf("distgraph: edge e%d missing from in-list of n%d", slot, e.to))
	}

	*e = edge{version: e.version}
	g.freeEdges = append(g.freeEdges, slot)
	g.liveEdges--
	if g.liveEdges < 0 {
		panic("distgraph: negative edge count")
	}
}

// appendSlot appends s, growing the backing array by doubling from a
// capacity of one. Burst loading of constraints then costs O(1) amortized
// per edge without the append heuristics of large slices.
func appendSlot(list []int32, s int32) []int32 {
	if len(list) == cap(list) {
		newCap := 2 * cap(list)
		if newCap == 0 {
			newCap = 1
		}
		grown := make([]int32, len(list), newCap)
		copy(grown, list)
		list = grown
	}

	return append(list, s)
}

// removeSlot deletes the first occurrence of s by shifting the tail left.
// Degrees are small in temporal networks, so O(degree) is fine.
func removeSlot(list []int32, s int32) ([]int32, bool) {
	for i, x := range list {
		if x == s {
			copy(list[i:], list[i+1:])
			return list[:len(list)-1], true
		}
	}

	return list, false
}

func minSpec(specs []Time) Time {
	m := specs[0]
	for _, s := range specs[1:] {
		if s < m {
			m = s
		}
	}

	return m
}

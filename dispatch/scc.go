// File: scc.go
// Role: Snapshot of the base graph, rigid components of its tight graph
//       (Kosaraju) and the member chains that replace them.
// Determinism:
//   - Both passes scan nodes in ascending slot order and edges in adjacency
//     order; members are ordered by (potential, slot).

package dispatch

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stnet/distgraph"
)

// arc is one finite edge between live nodes, by slot.
type arc struct {
	from, to int32
	length   distgraph.Time
}

// snapshot is the base graph indexed by node slot. Potentials are copied so
// later queries cannot disturb them.
type snapshot struct {
	source int32
	ids    []distgraph.NodeID // zero handle for deleted slots
	pot    []distgraph.Time
	order  []int32 // live slots, ascending
	arcs   []arc

	tightOut [][]int32
	tightIn  [][]int32
}

// takeSnapshot copies every live node with its potential, the finite arcs
// and the tight subset of them. Potentials must be feasible.
//
// Every node is kept whether or not source reaches it: a timepoint outside
// the source's reach can still bound one inside it through a negative edge.
func takeSnapshot(g *distgraph.Graph, source distgraph.NodeID) (*snapshot, error) {
	// 1) Nodes
	if !g.IsValidNode(source) {
		return nil, fmt.Errorf("%w: source %v", distgraph.ErrInvalidHandle, source)
	}
	nodes := g.Nodes()
	size := nodes[len(nodes)-1].Index() + 1
	s := &snapshot{
		source:   int32(source.Index()),
		ids:      make([]distgraph.NodeID, size),
		pot:      make([]distgraph.Time, size),
		order:    make([]int32, 0, len(nodes)),
		tightOut: make([][]int32, size),
		tightIn:  make([][]int32, size),
	}
	for _, n := range nodes {
		p, err := g.Potential(n)
		if err != nil {
			return nil, err
		}
		slot := int32(n.Index())
		s.ids[slot] = n
		s.pot[slot] = p
		s.order = append(s.order, slot)
	}

	// 2) Arcs and the tight subset
	for _, u := range s.order {
		out, err := g.OutEdges(s.ids[u])
		if err != nil {
			return nil, err
		}
		for _, id := range out {
			e, err := g.Edge(id)
			if err != nil {
				return nil, err
			}
			v := int32(e.To.Index())
			if e.Length.IsInf() || v == u {
				continue // no constraint, or a non-negative self-loop
			}
			s.arcs = append(s.arcs, arc{from: u, to: v, length: e.Length})
			if s.pot[u]+e.Length == s.pot[v] {
				s.tightOut[u] = append(s.tightOut[u], v)
				s.tightIn[v] = append(s.tightIn[v], u)
			}
		}
	}

	return s, nil
}

// components is the partition of the live nodes into rigid components.
type components struct {
	of      []int32   // component per slot, -1 for deleted slots
	members [][]int32 // slots per component, ordered by (potential, slot)
	leaders []int32   // leader slot per component
}

// offset is u's fixed distance from its component leader.
func (s *snapshot) offset(c *components, u int32) distgraph.Time {
	return s.pot[u] - s.pot[c.leaders[c.of[u]]]
}

// kosaraju holds the traversal state of the two passes.
type kosaraju struct {
	s    *snapshot
	seen []bool
	post []int32
	c    *components
}

// components partitions the live nodes by strongly connected
// components of the tight graph.
//
// Complexity: O(V + E).
func (s *snapshot) components() *components {
	k := &kosaraju{
		s:    s,
		seen: make([]bool, len(s.ids)),
		post: make([]int32, 0, len(s.order)),
		c:    &components{of: make([]int32, len(s.ids))},
	}

	// 1) Postorder over tight out-edges
	for _, u := range s.order {
		if !k.seen[u] {
			k.finish(u)
		}
	}

	// 2) Reverse tight graph, roots taken in reverse postorder
	for i := range k.c.of {
		k.c.of[i] = -1
	}
	for i := len(k.post) - 1; i >= 0; i-- {
		u := k.post[i]
		if k.c.of[u] >= 0 {
			continue
		}
		id := int32(len(k.c.members))
		k.c.members = append(k.c.members, nil)
		k.c.leaders = append(k.c.leaders, u)
		k.collect(u, id)
	}

	// 3) The source leads its own component; members in potential order
	k.c.leaders[k.c.of[s.source]] = s.source
	for _, m := range k.c.members {
		sort.Slice(m, func(i, j int) bool {
			if s.pot[m[i]] != s.pot[m[j]] {
				return s.pot[m[i]] < s.pot[m[j]]
			}
			return m[i] < m[j]
		})
	}

	return k.c
}

func (k *kosaraju) finish(u int32) {
	k.seen[u] = true
	for _, v := range k.s.tightOut[u] {
		if !k.seen[v] {
			k.finish(v)
		}
	}
	k.post = append(k.post, u)
}

func (k *kosaraju) collect(u, id int32) {
	k.c.of[u] = id
	k.c.members[id] = append(k.c.members[id], u)
	for _, v := range k.s.tightIn[u] {
		if k.c.of[v] < 0 {
			k.collect(v, id)
		}
	}
}

// emitChains links consecutive members of every rigid component with an
// edge each way whose lengths are the exact offsets between them.
func (s *snapshot) emitChains(c *components, sink EdgeSink) {
	for _, m := range c.members {
		for i := 1; i < len(m); i++ {
			a, b := m[i-1], m[i]
			delta := s.pot[b] - s.pot[a]
			sink.KeepEdge(s.ids[a], s.ids[b], delta)
			sink.KeepEdge(s.ids[b], s.ids[a], -delta)
		}
	}
}

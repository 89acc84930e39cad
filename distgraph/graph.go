// File: graph.go
// Role: Graph arena: construction, node lifecycle, handle validation and
//       read-only accessors.
// Determinism:
//   - Nodes() and Edges() enumerate live slots in ascending slot order.
//   - Freed slots are reused LIFO with a bumped version.

package distgraph

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/stnet/pqueue"
)

// noEdge marks an absent predecessor.
const noEdge int32 = -1

// graphIDs issues instance ids; 0 is reserved for zero handles.
var graphIDs atomic.Uint64

// node is one timepoint slot.
type node struct {
	version uint32
	live    bool

	potential Time // feasible lower bound from the virtual zero node
	distance  Time // Dijkstra distance, or pre-update potential during Bellman-Ford
	trial     Time // simulated potential used by IsDistanceLessThan

	generation  uint64 // epoch in which distance/depth/predecessor were set
	mark        uint64 // equals Graph.markGlobal when marked
	depth       int    // edges from the propagation root
	predecessor int32  // edge slot last relaxed into this node

	out []int32 // outgoing edge slots
	in  []int32 // incoming edge slots
}

// edge is one physical edge slot.
type edge struct {
	version uint32
	live    bool

	from, to int32
	length   Time
	specs    []Time
}

// Graph is a distance graph over timepoints. See the package documentation.
type Graph struct {
	id uint64

	nodes     []node
	freeNodes []int32
	liveNodes int

	edges     []edge
	freeEdges []int32
	liveEdges int

	generation uint64
	markGlobal uint64
	epochLimit uint64 // counters roll over when they reach this value

	queue   *pqueue.Queue[int32]
	pending []int32 // seeds for the next incremental propagation
	stale   bool    // potentials are infeasible after a failed propagation
	nogood  []EdgeID

	logger       *slog.Logger
	observer     Observer
	capacityHint int
}

// NewGraph returns an empty Graph.
//
// Complexity: O(1) plus any preallocation requested by WithCapacity.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		id:         graphIDs.Add(1),
		epochLimit: math.MaxUint64,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.queue = pqueue.New[int32](g.capacityHint)

	return g
}

// CreateNode allocates a timepoint with potential 0 and no edges.
//
// Complexity: O(1) amortized.
func (g *Graph) CreateNode() NodeID {
	var slot int32
	if k := len(g.freeNodes); k > 0 {
		slot = g.freeNodes[k-1]
		g.freeNodes = g.freeNodes[:k-1]
	} else {
		if len(g.nodes) >= math.MaxInt32 {
			panic("distgraph: node arena exhausted")
		}
		g.nodes = append(g.nodes, node{})
		slot = int32(len(g.nodes) - 1)
	}

	n := &g.nodes[slot]
	version := n.version + 1
	*n = node{version: version, live: true, predecessor: noEdge}
	g.liveNodes++

	return NodeID{graph: g.id, slot: slot, version: version}
}

// DeleteNode removes a timepoint after deleting every incident edge.
//
// Complexity: O(Σ degree of the neighbours touched).
func (g *Graph) DeleteNode(h NodeID) error {
	if _, err := g.node(h); err != nil {
		return err
	}

	// 1) Detach outgoing edges, then incoming ones. deleteEdge shrinks the
	//    lists, so always take the last element.
	for len(g.nodes[h.slot].out) > 0 {
		out := g.nodes[h.slot].out
		g.deleteEdge(out[len(out)-1])
	}
	for len(g.nodes[h.slot].in) > 0 {
		in := g.nodes[h.slot].in
		g.deleteEdge(in[len(in)-1])
	}

	// 2) Free the slot; the version survives so old handles stay invalid.
	n := &g.nodes[h.slot]
	*n = node{version: n.version, predecessor: noEdge}
	g.freeNodes = append(g.freeNodes, h.slot)
	g.liveNodes--

	return nil
}

// IsValidNode reports whether h is a live node of this graph.
func (g *Graph) IsValidNode(h NodeID) bool {
	_, err := g.node(h)

	return err == nil
}

// IsValidEdge reports whether e is a live edge of this graph.
func (g *Graph) IsValidEdge(e EdgeID) bool {
	_, err := g.edge(e)

	return err == nil
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return g.liveNodes }

// EdgeCount returns the number of live physical edges.
func (g *Graph) EdgeCount() int { return g.liveEdges }

// Nodes returns every live node handle in slot order.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, g.liveNodes)
	for i := range g.nodes {
		if g.nodes[i].live {
			out = append(out, g.nodeID(int32(i)))
		}
	}

	return out
}

// Edges returns every live edge handle in slot order.
func (g *Graph) Edges() []EdgeID {
	out := make([]EdgeID, 0, g.liveEdges)
	for i := range g.edges {
		if g.edges[i].live {
			out = append(out, g.edgeID(int32(i)))
		}
	}

	return out
}

// OutEdges returns the edges leaving h, in adjacency order.
func (g *Graph) OutEdges(h NodeID) ([]EdgeID, error) {
	n, err := g.node(h)
	if err != nil {
		return nil, err
	}

	return g.edgeIDs(n.out), nil
}

// InEdges returns the edges entering h, in adjacency order.
func (g *Graph) InEdges(h NodeID) ([]EdgeID, error) {
	n, err := g.node(h)
	if err != nil {
		return nil, err
	}

	return g.edgeIDs(n.in), nil
}

// Potential returns the node's potential: after a successful propagation,
// its shortest distance from the virtual zero node (always ≤ 0).
func (g *Graph) Potential(h NodeID) (Time, error) {
	n, err := g.node(h)
	if err != nil {
		return 0, err
	}

	return n.potential, nil
}

// Edge returns a snapshot of the edge e.
func (g *Graph) Edge(e EdgeID) (Edge, error) {
	ed, err := g.edge(e)
	if err != nil {
		return Edge{}, err
	}

	return Edge{
		ID:     e,
		From:   g.nodeID(ed.from),
		To:     g.nodeID(ed.to),
		Length: ed.length,
		Specs:  append([]Time(nil), ed.specs...),
	}, nil
}

// node resolves a handle to its live slot.
func (g *Graph) node(h NodeID) (*node, error) {
	if h.graph != g.id || h.slot < 0 || int(h.slot) >= len(g.nodes) {
		return nil, fmt.Errorf("%w: node %v", ErrInvalidHandle, h)
	}
	n := &g.nodes[h.slot]
	if !n.live || n.version != h.version {
		return nil, fmt.Errorf("%w: node %v", ErrInvalidHandle, h)
	}

	return n, nil
}

// edge resolves a handle to its live slot.
func (g *Graph) edge(e EdgeID) (*edge, error) {
	if e.graph != g.id || e.slot < 0 || int(e.slot) >= len(g.edges) {
		return nil, fmt.Errorf("%w: edge %v", ErrInvalidHandle, e)
	}
	ed := &g.edges[e.slot]
	if !ed.live || ed.version != e.version {
		return nil, fmt.Errorf("%w: edge %v", ErrInvalidHandle, e)
	}

	return ed, nil
}

func (g *Graph) nodeID(slot int32) NodeID {
	return NodeID{graph: g.id, slot: slot, version: g.nodes[slot].version}
}

func (g *Graph) edgeID(slot int32) EdgeID {
	return EdgeID{graph: g.id, slot: slot, version: g.edges[slot].version}
}

func (g *Graph) edgeIDs(slots []int32) []EdgeID {
	out := make([]EdgeID, len(slots))
	for i, s := range slots {
		out[i] = g.edgeID(s)
	}

	return out
}

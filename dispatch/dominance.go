// File: dominance.go
// Role: Reduced graph over component leaders and the per-leader dominance
//       passes that decide which leader→X edges are kept.

package dispatch

import (
	"sort"

	"github.com/katalvlaran/stnet/distgraph"
)

// filterLeaders builds the reduced graph and emits the non-dominated edges
// of every leader: the source's leader first, then by leader slot. Within a
// pass edges are emitted by target leader slot.
//
// Steps:
//  1. One reduced node per component. Each arc between components becomes
//     leader(u)→leader(v) with length + offset(u) − offset(v).
//  2. FullPropagate the reduced graph so Dijkstra can run on it.
//  3. Per leader A: distances, tight DAG, ancestor sweeps, then keep A→X
//     unless lower or upper dominance drops it.
//
// Complexity: O(E) to build, O(L·(L + E)·log L) for the passes over L
// leaders.
//
// Errors:
//   - ctx.Err() when the context is done between passes.
//   - Reduced-graph errors, wrapped with "dispatch: reduced graph". None are
//     expected on feasible base potentials.
func (d *Graph) filterLeaders(s *snapshot, c *components, sink EdgeSink) error {
	k := len(c.leaders)

	// 1) Reduced graph, one node per component
	rg := distgraph.NewGraph(distgraph.WithLogger(d.logger), distgraph.WithCapacity(k))
	nodes := make([]distgraph.NodeID, k)
	for i := range nodes {
		nodes[i] = rg.CreateNode()
	}
	for _, a := range s.arcs {
		cu, cv := c.of[a.from], c.of[a.to]
		if cu == cv {
			continue // implied by the member chain
		}
		length := a.length + s.offset(c, a.from) - s.offset(c, a.to)
		if _, err := rg.AddEdgeSpec(nodes[cu], nodes[cv], length); err != nil {
			return wrapReduced(err)
		}
	}
	if err := rg.FullPropagate(); err != nil {
		return wrapReduced(err)
	}

	// 2) Pass order
	byLeader := make([]int32, k)
	for i := range byLeader {
		byLeader[i] = int32(i)
	}
	sort.Slice(byLeader, func(i, j int) bool {
		return c.leaders[byLeader[i]] < c.leaders[byLeader[j]]
	})
	first := c.of[s.source]
	passes := append(make([]int32, 0, k), first)
	for _, x := range byLeader {
		if x != first {
			passes = append(passes, x)
		}
	}

	// 3) One dominance pass per leader
	p := newLeaderPass(rg, nodes)
	for _, a := range passes {
		if err := d.ctx.Err(); err != nil {
			return err
		}
		if err := p.run(a); err != nil {
			return wrapReduced(err)
		}
		for _, x := range byLeader {
			if p.keep(a, x) {
				sink.KeepEdge(s.ids[c.leaders[a]], s.ids[c.leaders[x]], p.dist[x])
			}
		}
	}

	return nil
}

// leaderPass holds the per-leader scratch state, reused across passes.
// Index i is reduced node i (and component i).
type leaderPass struct {
	g     *distgraph.Graph
	nodes []distgraph.NodeID

	dist     []distgraph.Time
	seen     []bool
	children [][]int32 // tight out-neighbours from the current leader
	topo     []int32

	negAnc []bool           // some ancestor other than the leader is at a negative distance
	minAnc []distgraph.Time // least distance over ancestors other than the leader
}

func newLeaderPass(g *distgraph.Graph, nodes []distgraph.NodeID) *leaderPass {
	k := len(nodes)
	return &leaderPass{
		g:        g,
		nodes:    nodes,
		dist:     make([]distgraph.Time, k),
		seen:     make([]bool, k),
		children: make([][]int32, k),
		topo:     make([]int32, 0, k),
		negAnc:   make([]bool, k),
		minAnc:   make([]distgraph.Time, k),
	}
}

// run computes distances from leader a, orders the shortest-path DAG
// topologically and sweeps the ancestor summaries down it.
func (p *leaderPass) run(a int32) error {
	// 1) Distances
	if err := p.g.DistancesFrom(p.nodes[a]); err != nil {
		return err
	}
	for i, n := range p.nodes {
		p.dist[i] = p.g.Distance(n)
		p.seen[i] = false
		p.children[i] = p.children[i][:0]
		p.negAnc[i] = false
		p.minAnc[i] = distgraph.MaxLength
	}

	// 2) Reverse postorder of the tight DAG
	p.topo = p.topo[:0]
	if err := p.visit(a); err != nil {
		return err
	}
	for i, j := 0, len(p.topo)-1; i < j; i, j = i+1, j-1 {
		p.topo[i], p.topo[j] = p.topo[j], p.topo[i]
	}

	// 3) Lower and upper sweeps in one pass
	for _, x := range p.topo {
		neg, low := p.negAnc[x], p.minAnc[x]
		if x != a {
			if p.dist[x] < 0 {
				neg = true
			}
			if p.dist[x] < low {
				low = p.dist[x]
			}
		}
		for _, y := range p.children[x] {
			p.negAnc[y] = p.negAnc[y] || neg
			if low < p.minAnc[y] {
				p.minAnc[y] = low
			}
		}
	}

	return nil
}

// visit records x's tight children and appends x in postorder. The tight
// graph from a leader is acyclic because rigid components are collapsed.
func (p *leaderPass) visit(x int32) error {
	p.seen[x] = true
	out, err := p.g.OutEdges(p.nodes[x])
	if err != nil {
		return err
	}
	for _, id := range out {
		e, err := p.g.Edge(id)
		if err != nil {
			return err
		}
		if e.Length.IsInf() {
			continue
		}
		y := int32(e.To.Index())
		if p.dist[x]+e.Length != p.dist[y] {
			continue
		}
		p.children[x] = append(p.children[x], y)
		if !p.seen[y] {
			if err := p.visit(y); err != nil {
				return err
			}
		}
	}
	p.topo = append(p.topo, x)

	return nil
}

// keep reports whether a→x survives both dominance tests.
func (p *leaderPass) keep(a, x int32) bool {
	d := p.dist[x]
	if x == a || d.IsInf() {
		return false
	}
	if d < 0 {
		return !p.negAnc[x]
	}

	return p.minAnc[x] > d
}

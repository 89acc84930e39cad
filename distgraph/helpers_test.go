// Package distgraph_test holds fixtures shared by the distgraph tests.
//
// Purpose:
//   - Build small named networks and random consistent networks
//     deterministically (fixed seeds).
//   - Check the structural properties every nogood must satisfy.

package distgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stnet/distgraph"
)

// Common lengths used across tests (avoid magic numbers in test bodies).
const (
	Len0  distgraph.Time = 0
	Len3  distgraph.Time = 3
	Len5  distgraph.Time = 5
	Len8  distgraph.Time = 8
	Len10 distgraph.Time = 10
)

// triangle builds A→B(5), B→C(3), A→C(10).
func triangle(t *testing.T) (g *distgraph.Graph, a, b, c distgraph.NodeID) {
	t.Helper()
	g = distgraph.NewGraph()
	a, b, c = g.CreateNode(), g.CreateNode(), g.CreateNode()
	mustAdd(t, g, a, b, Len5)
	mustAdd(t, g, b, c, Len3)
	mustAdd(t, g, a, c, Len10)

	return g, a, b, c
}

func mustAdd(t *testing.T, g *distgraph.Graph, from, to distgraph.NodeID, length distgraph.Time) distgraph.EdgeID {
	t.Helper()
	e, err := g.AddEdgeSpec(from, to, length)
	require.NoError(t, err)

	return e
}

// network is a random consistent network together with the witness schedule
// that satisfies every edge.
type network struct {
	g     *distgraph.Graph
	nodes []distgraph.NodeID
	times []int64
	rng   *rand.Rand
}

// randomConsistent builds n nodes and m edges u→v (u≠v) whose lengths are
// times[v]−times[u] plus a slack in [0,3]; slack 0 makes the edge rigid in
// that direction.
func randomConsistent(t *testing.T, seed int64, n, m int) *network {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	nw := &network{g: distgraph.NewGraph(), rng: rng}
	for i := 0; i < n; i++ {
		nw.nodes = append(nw.nodes, nw.g.CreateNode())
		nw.times = append(nw.times, int64(rng.Intn(100)))
	}
	for k := 0; k < m; k++ {
		nw.addConsistent(t)
	}

	return nw
}

// addConsistent adds one random edge satisfied by the witness schedule.
func (nw *network) addConsistent(t *testing.T) distgraph.EdgeID {
	t.Helper()
	u, v := nw.pair()
	length := distgraph.Time(nw.times[v] - nw.times[u] + int64(nw.rng.Intn(4)))

	return mustAdd(t, nw.g, nw.nodes[u], nw.nodes[v], length)
}

// pair returns two distinct random node positions.
func (nw *network) pair() (int, int) {
	u := nw.rng.Intn(len(nw.nodes))
	v := nw.rng.Intn(len(nw.nodes) - 1)
	if v >= u {
		v++
	}

	return u, v
}

// potentials snapshots every node's potential in node order.
func potentials(t *testing.T, g *distgraph.Graph, nodes []distgraph.NodeID) []distgraph.Time {
	t.Helper()
	out := make([]distgraph.Time, len(nodes))
	for i, n := range nodes {
		p, err := g.Potential(n)
		require.NoError(t, err)
		out[i] = p
	}

	return out
}

// requireNegativeCycle asserts that edges form a closed walk whose total
// length is strictly negative.
func requireNegativeCycle(t *testing.T, g *distgraph.Graph, edges []distgraph.EdgeID) {
	t.Helper()
	require.NotEmpty(t, edges)

	var sum distgraph.Time
	for i, id := range edges {
		e, err := g.Edge(id)
		require.NoError(t, err)
		next, err := g.Edge(edges[(i+1)%len(edges)])
		require.NoError(t, err)
		require.Equal(t, e.To, next.From, "edge %d does not chain into edge %d", i, (i+1)%len(edges))
		sum += e.Length
	}
	require.Less(t, int64(sum), int64(0), "cycle length must be negative")
}

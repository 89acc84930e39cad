// Package distgraph_test provides runnable examples for the distance graph.
package distgraph_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stnet/distgraph"
)

// ExampleGraph_ShortestPath builds A→B(5), B→C(3), A→C(10) and queries the
// A→C distance.
func ExampleGraph_ShortestPath() {
	// 1) Three timepoints and their constraints
	g := distgraph.NewGraph()
	a, b, c := g.CreateNode(), g.CreateNode(), g.CreateNode()
	_, _ = g.AddEdgeSpec(a, b, 5)
	_, _ = g.AddEdgeSpec(b, c, 3)
	_, _ = g.AddEdgeSpec(a, c, 10)

	// 2) Potentials must be feasible before querying
	if err := g.FullPropagate(); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) A→B→C beats the direct edge
	d, _ := g.ShortestPath(a, c)
	fmt.Println("A→C:", d)
	// Output: A→C: 8
}

// ExampleGraph_Nogood closes the triangle with C→A(−9) and prints the
// negative cycle that explains the inconsistency.
func ExampleGraph_Nogood() {
	g := distgraph.NewGraph()
	a, b, c := g.CreateNode(), g.CreateNode(), g.CreateNode()
	_, _ = g.AddEdgeSpec(a, b, 5)
	_, _ = g.AddEdgeSpec(b, c, 3)
	_, _ = g.AddEdgeSpec(a, c, 10)
	_ = g.FullPropagate()

	_, _ = g.AddEdgeSpec(c, a, -9)
	err := g.IncrementalPropagate()
	fmt.Println("inconsistent:", errors.Is(err, distgraph.ErrInconsistent))

	for _, id := range g.Nogood() {
		e, _ := g.Edge(id)
		fmt.Printf("%v -> %v (%v)\n", e.From, e.To, e.Length)
	}
	// Output:
	// inconsistent: true
	// n0 -> n1 (5)
	// n1 -> n2 (3)
	// n2 -> n0 (-9)
}

// ExampleGraph_IsDistanceLessThan asks whether C can follow A by less than a
// given amount without computing the full distance.
func ExampleGraph_IsDistanceLessThan() {
	g := distgraph.NewGraph()
	a, b, c := g.CreateNode(), g.CreateNode(), g.CreateNode()
	_, _ = g.AddEdgeSpec(a, b, 5)
	_, _ = g.AddEdgeSpec(b, c, 3)
	_ = g.FullPropagate()

	below9, _ := g.IsDistanceLessThan(a, c, 9)
	below8, _ := g.IsDistanceLessThan(a, c, 8)
	fmt.Println(below9, below8)
	// Output: true false
}

// ExampleGraph_String dumps the edges, one "from to length" line each.
func ExampleGraph_String() {
	g := distgraph.NewGraph()
	a, b := g.CreateNode(), g.CreateNode()
	_, _ = g.AddEdgeSpec(a, b, 5)
	_, _ = g.AddEdgeSpec(b, a, -3)
	_, _ = g.AddEdgeSpec(b, a, distgraph.MaxLength)
	fmt.Print(g.String())
	// Output:
	// 0 1 5
	// 1 0 -3
}

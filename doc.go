// Package stnet is an incremental Simple Temporal Network engine: timepoints,
// difference constraints between them, and the machinery to keep such a
// network consistent while it is edited.
//
// What is a Simple Temporal Network?
//
//	Every constraint "lo ≤ t(b) − t(a) ≤ hi" becomes two edges of a distance
//	graph, a→b with length hi and b→a with length −lo. The network is
//	consistent exactly when that graph has no negative cycle, and the
//	shortest a→b distance is the tightest bound the network implies on
//	t(b) − t(a).
//
// Packages:
//
//	pqueue      min-priority queue with stable ties and lazy decrease-key
//	distgraph   distance graph with edge specs, full and incremental
//	            Bellman-Ford, nogood extraction, Dijkstra and bounded trial searches
//	dispatch    minimal dispatchable network filter
//	metrics     Prometheus observer for propagations and dispatch runs
//	netfile     YAML network description loader
//	cmd/stnctl  command line front end over the packages above
//
// Quick example:
//
//	g := distgraph.NewGraph()
//	a, b := g.CreateNode(), g.CreateNode()
//	g.AddEdgeSpec(a, b, 10) // t(b) − t(a) ≤ 10
//	g.AddEdgeSpec(b, a, -5) // t(b) − t(a) ≥ 5
//	if err := g.IncrementalPropagate(); err != nil { ... }
//	d, _ := g.ShortestPath(a, b) // 10
package stnet

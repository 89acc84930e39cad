// Package distgraph implements the distance graph at the heart of a Simple
// Temporal Network (STN): a mutable, directed, weighted graph of timepoints
// whose edges are upper bounds on time differences,
//
//	from ──length──▶ to    means    time(to) − time(from) ≤ length.
//
// The graph must stay consistent (no negative cycle) while constraints are
// added and retracted one at a time, answer shortest-distance questions
// cheaply, and explain an inconsistency as the precise cycle of edges that
// caused it.
//
// Building blocks:
//
//   - Arena storage: nodes and edges live in slot slices addressed by NodeID
//     and EdgeID handles. A handle carries the owning graph's instance id, the
//     slot index and the slot version, so a deleted or foreign handle is
//     detected (ErrInvalidHandle) rather than silently aliasing a new entity.
//   - Edge specs: many logical constraints can map onto one physical edge per
//     ordered pair. The edge keeps every spec and its effective length is the
//     minimum of them (AddEdgeSpec / RemoveEdgeSpec).
//   - Potentials: after a successful propagation every node's potential is its
//     shortest distance from a virtual zero node connected to every node with a
//     zero-length edge. Potentials are a feasible solution of the network and
//     the reweighting used by Dijkstra.
//   - Generations and marks: per-node epoch stamps compared against graph-wide
//     counters give O(1) "reset every node" for propagation scratch state and
//     visited sets.
//
// Propagation:
//
//   - FullPropagate: Bellman-Ford over all nodes from the virtual zero node.
//   - IncrementalPropagate: the same loop seeded only by the nodes whose
//     outgoing edges tightened since the last run (or that were Enqueue'd).
//     Both order relaxations by the improvement delta (newPotential −
//     oldPotential) through a pqueue.Queue, so stronger updates go first and
//     superseded work is minimized.
//   - A node whose propagation depth exceeds the node count lies downstream of
//     a negative cycle; the cycle is recovered from the predecessor edges and
//     published through Nogood, and ErrInconsistent is returned.
//
// Queries:
//
//   - ShortestPath / DistancesFrom: Dijkstra on potential-reduced lengths.
//     Valid after a successful propagation with no edits in between.
//   - Distance: the cached result of the last Dijkstra run.
//   - IsDistanceLessThan: does adding targ→src of length −bound create a
//     negative cycle? Answered without touching potentials.
//
// Complexity (V nodes, E edges):
//
//   - AddEdgeSpec / RemoveEdgeSpec: O(out-degree(from) + specs)
//   - FullPropagate: O(V·E·log V) worst case, typically near O(E log V)
//   - ShortestPath: O((V + E) log V)
//
// Concurrency: a Graph assumes exclusive, non-reentrant access. It holds no
// locks; callers serialize.
package distgraph

// Package dispatch reduces a consistent distance graph to its minimal
// dispatchable form: the smallest set of edges that still lets an executor
// fix timepoints one at a time, propagating only to direct neighbours,
// without ever violating a constraint.
//
// What:
//
//   - Filter(source, sink) recomputes potentials, analyses every live
//     timepoint and hands every kept edge to an EdgeSink. The source only
//     fixes order: its component's leader is the source and its edges come
//     first. Timepoints the source cannot reach still matter, since a
//     negative edge out of one of them bounds nodes the source does reach.
//
// How:
//
//  1. Tight graph: an edge u→v is tight when potential(u) + length equals
//     potential(v). Cycles of tight edges have length 0; their nodes are
//     rigidly bound to each other.
//  2. Rigid components: strongly connected components of the tight graph
//     (Kosaraju, two depth-first passes). Each gets a leader (the source if
//     it is a member, otherwise the first node discovered). Members are
//     chained to each other in potential order by edges in both directions.
//  3. Reduced graph: every remaining edge is moved onto the leaders of its
//     endpoints with a length adjusted by the members' offsets, into an
//     internal distgraph.Graph that has no zero-length cycles.
//  4. Dominance: for each leader A, Dijkstra over the reduced graph yields
//     d(A, X) and the DAG of shortest paths. An edge A→X is dropped when a
//     node Y≠A on a shortest A→X path makes it redundant:
//     lower dominance when d(A, X) < 0 and d(A, Y) < 0,
//     upper dominance when d(A, X) ≥ 0 and d(A, Y) ≤ d(A, X).
//
// Complexity:
//
//   - Rigid components: O(V + E)
//   - Dominance: O(L · (V + E) log V) for L leaders
//
// Errors:
//
//   - distgraph.ErrInconsistent  the base network has a negative cycle
//   - distgraph.ErrInvalidHandle source does not belong to the graph
//   - ErrNilGraph, ErrNilSink    missing inputs
//   - context errors             cancellation via WithContext
package dispatch

// Package netfile reads a temporal network from YAML and loads it into a
// distgraph.Graph.
//
// Format:
//
//	origin: start            # optional, defaults to the first timepoint
//	timepoints: [start, load, ship]
//	constraints:
//	  - {from: start, to: load, min: 5, max: 10}   # 5 ≤ load − start ≤ 10
//	  - {from: load, to: ship, min: 0}             # ship not before load
//
// A constraint needs at least one of min and max. max becomes the edge
// from→to with length max, min becomes to→from with length −min. Several
// constraints on the same pair become specs of the same edge.
//
// Errors:
//
//   - ErrInvalid          malformed document or a failed field rule
//   - ErrUnknownTimepoint a constraint or the origin names an undeclared timepoint
package netfile

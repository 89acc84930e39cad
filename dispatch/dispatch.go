// File: dispatch.go
// Role: Graph wrapper and the Filter pipeline: propagate, snapshot, collapse
//       rigid components, then run the leader dominance passes.

package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/stnet/distgraph"
)

// Graph filters a distance graph into its minimal dispatchable edges.
// It borrows the distance graph; Filter re-propagates it but never edits it.
type Graph struct {
	base   *distgraph.Graph
	logger *slog.Logger
	ctx    context.Context
	stats  Stats
}

// NewGraph wraps base.
func NewGraph(base *distgraph.Graph, opts ...Option) *Graph {
	d := &Graph{
		base:   base,
		logger: slog.Default(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Filter hands the minimal dispatchable network of the base graph to sink.
// Rigid components contribute their member chains, then every leader
// contributes its non-dominated outgoing edges, the source's leader first.
// Replaying the kept edges into an empty graph reproduces the potentials
// and shortest distances of every timepoint.
//
// Steps:
//  1. FullPropagate the base graph; inconsistency is returned as is.
//  2. Snapshot every live node and its potential.
//  3. Collapse rigid components and emit their chains.
//  4. Build the reduced graph over leaders and run the dominance passes.
//
// Complexity: O(V + E) for steps 2-3, O(L·(V + E)·log V) for L leaders.
//
// Errors: distgraph.ErrInconsistent, distgraph.ErrInvalidHandle for a
// source from another graph, ErrNilGraph, ErrNilSink, or ctx.Err().
func (d *Graph) Filter(source distgraph.NodeID, sink EdgeSink) error {
	if d.base == nil {
		return ErrNilGraph
	}
	if sink == nil {
		return ErrNilSink
	}
	d.stats = Stats{}
	counted := KeepFunc(func(from, to distgraph.NodeID, length distgraph.Time) {
		d.stats.Kept++
		sink.KeepEdge(from, to, length)
	})

	// 1) Feasible potentials
	if err := d.base.FullPropagate(); err != nil {
		return err
	}

	// 2) Snapshot
	s, err := takeSnapshot(d.base, source)
	if err != nil {
		return err
	}
	d.stats.Timepoints = len(s.order)

	// 3) Rigid components
	comps := s.components()
	d.stats.Components = len(comps.leaders)
	for _, members := range comps.members {
		if len(members) > 1 {
			d.stats.Rigid++
		}
	}
	s.emitChains(comps, counted)

	// 4) Dominance over the reduced graph
	if err := d.filterLeaders(s, comps, counted); err != nil {
		return err
	}

	d.logger.Debug("dispatch: filtered",
		"timepoints", d.stats.Timepoints,
		"components", d.stats.Components,
		"rigid", d.stats.Rigid,
		"kept", d.stats.Kept)

	return nil
}

// Stats reports the counters of the last Filter call.
func (d *Graph) Stats() Stats { return d.stats }

// wrapReduced annotates errors coming from the internal reduced graph.
func wrapReduced(err error) error {
	return fmt.Errorf("dispatch: reduced graph: %w", err)
}

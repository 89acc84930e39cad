// File: types.go
// Role: Sentinel errors, the EdgeSink contract with its adapters, run
//       statistics and options.

package dispatch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/stnet/distgraph"
)

var (
	// ErrNilGraph is returned when the dispatch graph wraps no distance graph.
	ErrNilGraph = errors.New("dispatch: distance graph is nil")

	// ErrNilSink is returned when Filter is called without an EdgeSink.
	ErrNilSink = errors.New("dispatch: edge sink is nil")
)

// EdgeSink receives the edges of the minimal dispatchable network.
type EdgeSink interface {
	KeepEdge(from, to distgraph.NodeID, length distgraph.Time)
}

// KeepFunc adapts a function to the EdgeSink interface.
type KeepFunc func(from, to distgraph.NodeID, length distgraph.Time)

// KeepEdge calls f(from, to, length).
func (f KeepFunc) KeepEdge(from, to distgraph.NodeID, length distgraph.Time) { f(from, to, length) }

// KeptEdge is one edge handed to an EdgeSink.
type KeptEdge struct {
	From, To distgraph.NodeID
	Length   distgraph.Time
}

// EdgeList is an EdgeSink that collects edges in emission order.
type EdgeList []KeptEdge

// KeepEdge appends the edge.
func (l *EdgeList) KeepEdge(from, to distgraph.NodeID, length distgraph.Time) {
	*l = append(*l, KeptEdge{From: from, To: to, Length: length})
}

// Stats summarizes the last Filter run.
type Stats struct {
	Timepoints int // live nodes analysed
	Components int // rigid components (leaders)
	Rigid      int // components with more than one member
	Kept       int // edges handed to the sink
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger used for Debug summaries. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(d *Graph) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithContext makes Filter check ctx between leader passes. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(d *Graph) {
		if ctx != nil {
			d.ctx = ctx
		}
	}
}

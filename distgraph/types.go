// File: types.go
// Role: Time arithmetic, handles, sentinel errors, propagation statistics
//       and options.

package distgraph

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Sentinel errors returned by Graph operations.
var (
	// ErrInvalidHandle indicates a NodeID or EdgeID that is not live in this
	// graph: never issued, already deleted, or issued by another Graph.
	ErrInvalidHandle = errors.New("distgraph: invalid handle")

	// ErrOutOfBounds indicates a length or bound outside [MinLength, MaxLength].
	ErrOutOfBounds = errors.New("distgraph: length out of bounds")

	// ErrEdgeNotFound indicates RemoveEdgeSpec referenced an edge or a spec
	// that does not exist.
	ErrEdgeNotFound = errors.New("distgraph: edge spec not found")

	// ErrInconsistent indicates propagation found a negative cycle.
	// Nogood returns the cycle's edges.
	ErrInconsistent = errors.New("distgraph: network is inconsistent")
)

// Time is a bounded, saturating temporal quantity.
type Time int64

const (
	// MaxLength is the +infinity sentinel. An edge of this length constrains nothing.
	MaxLength Time = math.MaxInt64 / 4

	// MinLength is the −infinity sentinel.
	MinLength Time = -MaxLength
)

// Add returns t+d saturated to [MinLength, MaxLength].
// +infinity absorbs everything, so an unreachable distance never becomes finite.
func (t Time) Add(d Time) Time {
	if t >= MaxLength || d >= MaxLength {
		return MaxLength
	}
	if t <= MinLength || d <= MinLength {
		return MinLength
	}
	s := t + d // cannot overflow: both operands are within ±MaxInt64/4
	if s >= MaxLength {
		return MaxLength
	}
	if s <= MinLength {
		return MinLength
	}

	return s
}

// IsInf reports whether t is the +infinity sentinel.
func (t Time) IsInf() bool { return t >= MaxLength }

// String renders infinities as "+inf" / "-inf".
func (t Time) String() string {
	switch {
	case t >= MaxLength:
		return "+inf"
	case t <= MinLength:
		return "-inf"
	default:
		return fmt.Sprintf("%d", int64(t))
	}
}

// inBounds reports whether t is an acceptable edge length or query bound.
func inBounds(t Time) bool {
	return t >= MinLength && t <= MaxLength
}

// NodeID is an opaque handle to a timepoint of one Graph.
// The zero NodeID is never valid.
type NodeID struct {
	graph   uint64
	slot    int32
	version uint32
}

// IsZero reports whether n is the zero handle.
func (n NodeID) IsZero() bool { return n.graph == 0 }

// Index returns the arena slot of n. Slots are dense, start at 0 and may be
// reused (with a new version) after DeleteNode.
func (n NodeID) Index() int { return int(n.slot) }

// String returns "n<slot>".
func (n NodeID) String() string { return fmt.Sprintf("n%d", n.slot) }

// EdgeID is an opaque handle to a physical edge of one Graph.
type EdgeID struct {
	graph   uint64
	slot    int32
	version uint32
}

// IsZero reports whether e is the zero handle.
func (e EdgeID) IsZero() bool { return e.graph == 0 }

// String returns "e<slot>".
func (e EdgeID) String() string { return fmt.Sprintf("e%d", e.slot) }

// Edge is a read-only view of a physical edge.
type Edge struct {
	// ID is the edge handle.
	ID EdgeID

	// From and To are the endpoints: time(To) − time(From) ≤ Length.
	From, To NodeID

	// Length is the effective bound, the minimum of Specs.
	Length Time

	// Specs lists every logical length mapped onto this edge, in insertion order.
	Specs []Time
}

// PropagationKind tells full and incremental propagation apart in PropagationStats.
type PropagationKind int

const (
	// FullPropagation is a Bellman-Ford run over every node.
	FullPropagation PropagationKind = iota
	// IncrementalPropagation is a run seeded by the enqueued nodes only.
	IncrementalPropagation
)

// String returns "full" or "incremental".
func (k PropagationKind) String() string {
	if k == FullPropagation {
		return "full"
	}

	return "incremental"
}

// PropagationStats summarizes one propagation run.
type PropagationStats struct {
	Kind        PropagationKind
	Seeds       int           // nodes queued before the loop started
	Pops        int           // queue entries popped, stale ones included
	Relaxations int           // successful potential improvements
	Consistent  bool          // false when a negative cycle was found
	NogoodSize  int           // edges in the extracted cycle
	Duration    time.Duration // wall time of the run
}

// Observer receives a PropagationStats value after every propagation.
// It is called synchronously on the propagating goroutine.
type Observer interface {
	ObservePropagation(PropagationStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(PropagationStats)

// ObservePropagation calls f(s).
func (f ObserverFunc) ObservePropagation(s PropagationStats) { f(s) }

// Option configures a Graph at construction.
type Option func(*Graph)

// WithLogger sets the logger used for debug diagnostics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithObserver installs an Observer notified after each propagation.
func WithObserver(o Observer) Option {
	return func(g *Graph) { g.observer = o }
}

// WithCapacity preallocates room for n nodes and 2n edges.
func WithCapacity(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]node, 0, n)
			g.edges = make([]edge, 0, 2*n)
			g.capacityHint = n
		}
	}
}

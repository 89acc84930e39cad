// Package metrics exports distance-graph and dispatch activity as
// Prometheus metrics. A Collector is a distgraph.Observer:
//
//	reg := prometheus.NewRegistry()
//	c := metrics.NewCollector(reg, "stn")
//	g := distgraph.NewGraph(distgraph.WithObserver(c))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/stnet/dispatch"
	"github.com/katalvlaran/stnet/distgraph"
)

// Result label values of propagations_total.
const (
	ResultConsistent   = "consistent"
	ResultInconsistent = "inconsistent"
)

// Collector records propagation and dispatch statistics.
type Collector struct {
	propagations *prometheus.CounterVec
	relaxations  *prometheus.HistogramVec
	nogoodEdges  prometheus.Histogram
	duration     *prometheus.HistogramVec

	components prometheus.Gauge
	keptEdges  prometheus.Gauge
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// falls back to prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		// 1. Propagations (Counter), by kind and outcome
		propagations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "propagations_total",
				Help:      "Number of potential propagations",
			},
			[]string{"kind", "result"},
		),

		// 2. Relaxations per propagation (Histogram)
		relaxations: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "relaxations",
				Help:      "Edge relaxations performed by one propagation",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"kind"},
		),

		// 3. Nogood size (Histogram), inconsistent runs only
		nogoodEdges: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "nogood_edges",
				Help:      "Edges in the negative cycle reported by a failed propagation",
				Buckets:   prometheus.LinearBuckets(1, 2, 10),
			},
		),

		// 4. Wall time (Histogram)
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "propagation_duration_seconds",
				Help:      "Duration of one propagation in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"kind"},
		),

		// 5. Last dispatch filter (Gauges)
		components: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dispatch_components",
				Help:      "Rigid components found by the last dispatch filter",
			},
		),
		keptEdges: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dispatch_kept_edges",
				Help:      "Edges kept by the last dispatch filter",
			},
		),
	}
}

// ObservePropagation implements distgraph.Observer.
func (c *Collector) ObservePropagation(s distgraph.PropagationStats) {
	kind := s.Kind.String()
	result := ResultConsistent
	if !s.Consistent {
		result = ResultInconsistent
		c.nogoodEdges.Observe(float64(s.NogoodSize))
	}
	c.propagations.WithLabelValues(kind, result).Inc()
	c.relaxations.WithLabelValues(kind).Observe(float64(s.Relaxations))
	c.duration.WithLabelValues(kind).Observe(s.Duration.Seconds())
}

// ObserveFilter records the outcome of a dispatch filter run.
func (c *Collector) ObserveFilter(s dispatch.Stats) {
	c.components.Set(float64(s.Components))
	c.keptEdges.Set(float64(s.Kept))
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/stnet/distgraph"
	"github.com/katalvlaran/stnet/metrics"
	"github.com/katalvlaran/stnet/netfile"
)

// session is a loaded network ready for queries.
type session struct {
	opts *RootOptions
	net  *netfile.Network
	idx  *netfile.Index
	g    *distgraph.Graph

	reg       *prometheus.Registry
	collector *metrics.Collector
}

// openSession loads path and builds its distance graph.
func openSession(opts *RootOptions, path string) (*session, error) {
	n, err := netfile.Load(path)
	if err != nil {
		return nil, commandError("cannot load network", err)
	}

	if opts.logger == nil {
		opts.logger = slog.Default()
	}
	s := &session{opts: opts, net: n}
	graphOpts := []distgraph.Option{
		distgraph.WithLogger(opts.logger),
		distgraph.WithCapacity(len(n.Timepoints)),
	}
	if opts.Metrics {
		s.reg = prometheus.NewRegistry()
		s.collector = metrics.NewCollector(s.reg, "stn")
		graphOpts = append(graphOpts, distgraph.WithObserver(s.collector))
	}
	s.g = distgraph.NewGraph(graphOpts...)

	if s.idx, err = n.Build(s.g); err != nil {
		return nil, commandError("cannot build network", err)
	}
	opts.logger.Info("network loaded",
		"path", path, "timepoints", s.g.NodeCount(), "edges", s.g.EdgeCount())

	return s, nil
}

// node resolves a timepoint name given on the command line.
func (s *session) node(name string) (distgraph.NodeID, error) {
	id, err := s.idx.Node(name)
	if err != nil {
		return id, commandError("bad timepoint", err)
	}

	return id, nil
}

// edgeLine renders an edge with timepoint names.
func (s *session) edgeLine(from, to distgraph.NodeID, length distgraph.Time) string {
	return fmt.Sprintf("%s -> %s %v", s.idx.Name(from), s.idx.Name(to), length)
}

// writeMetrics prints the registry in the Prometheus text format when
// --metrics is set.
func (s *session) writeMetrics(w io.Writer) error {
	if s.reg == nil {
		return nil
	}
	families, err := s.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

// writeJSON encodes v indented.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stnet/dispatch"
	"github.com/katalvlaran/stnet/distgraph"
)

type dispatchOptions struct {
	source string
}

// DispatchResult is the JSON form of the dispatch command.
type DispatchResult struct {
	Source string         `json:"source"`
	Edges  []string       `json:"edges"`
	Stats  dispatch.Stats `json:"stats"`
}

// NewDispatchCommand creates the dispatch command.
func NewDispatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &dispatchOptions{}
	cmd := &cobra.Command{
		Use:   "dispatch <network.yaml>",
		Short: "Print the minimal dispatchable network",
		Long: `Reduce the network to the minimal set of edges an executor needs to
propagate when timepoints are fixed one at a time. Edges leaving the
source (the origin by default) are printed first.`,
		Args:         exactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(rootOpts, opts, cmd, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.source, "source", "", "source timepoint (default: the network origin)")

	return cmd
}

func runDispatch(root *RootOptions, opts *dispatchOptions, cmd *cobra.Command, path string) error {
	s, err := openSession(root, path)
	if err != nil {
		return err
	}
	name := opts.source
	if name == "" {
		name = s.net.OriginName()
	}
	source, err := s.node(name)
	if err != nil {
		return err
	}

	res := DispatchResult{Source: name, Edges: []string{}}
	d := dispatch.NewGraph(s.g, dispatch.WithLogger(root.logger), dispatch.WithContext(cmd.Context()))
	err = d.Filter(source, dispatch.KeepFunc(func(from, to distgraph.NodeID, length distgraph.Time) {
		res.Edges = append(res.Edges, s.edgeLine(from, to, length))
	}))
	if err != nil {
		return failure("dispatch filter failed", err)
	}
	res.Stats = d.Stats()
	if s.collector != nil {
		s.collector.ObserveFilter(res.Stats)
	}

	out := cmd.OutOrStdout()
	if root.Format == "json" {
		if err := writeJSON(out, res); err != nil {
			return err
		}
	} else {
		for _, line := range res.Edges {
			fmt.Fprintln(out, line)
		}
		fmt.Fprintf(out, "# %d timepoints, %d components (%d rigid), %d edges\n",
			res.Stats.Timepoints, res.Stats.Components, res.Stats.Rigid, res.Stats.Kept)
	}

	return s.writeMetrics(out)
}

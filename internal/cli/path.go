package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stnet/distgraph"
)

type pathOptions struct {
	below int64
}

// NewPathCommand creates the path command.
func NewPathCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &pathOptions{}
	cmd := &cobra.Command{
		Use:   "path <network.yaml> <from> <to>",
		Short: "Print the tightest upper bound on to − from",
		Long: `Print the shortest-path distance from one timepoint to another, the
tightest upper bound the network implies on their difference ("+inf" when
unbounded). With --below N, only test whether that distance is below N.`,
		Args:         exactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(rootOpts, opts, cmd, args)
		},
	}
	cmd.Flags().Int64Var(&opts.below, "below", 0, "only test whether the distance is below this bound")

	return cmd
}

func runPath(root *RootOptions, opts *pathOptions, cmd *cobra.Command, args []string) error {
	s, err := openSession(root, args[0])
	if err != nil {
		return err
	}
	from, err := s.node(args[1])
	if err != nil {
		return err
	}
	to, err := s.node(args[2])
	if err != nil {
		return err
	}
	if err := s.g.FullPropagate(); err != nil {
		return failure("network is inconsistent", err)
	}
	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("below") {
		ok, err := s.g.IsDistanceLessThan(from, to, distgraph.Time(opts.below))
		if err != nil {
			return commandError("bad bound", err)
		}
		if root.Format == "json" {
			err = writeJSON(out, map[string]bool{"below": ok})
		} else {
			_, err = fmt.Fprintln(out, ok)
		}
		if err != nil {
			return err
		}

		return s.writeMetrics(out)
	}

	d, err := s.g.ShortestPath(from, to)
	if err != nil {
		return err
	}
	if root.Format == "json" {
		err = writeJSON(out, map[string]string{"distance": d.String()})
	} else {
		_, err = fmt.Fprintln(out, d)
	}
	if err != nil {
		return err
	}

	return s.writeMetrics(out)
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stnet/distgraph"
)

// CheckResult is the JSON form of the check command.
type CheckResult struct {
	Consistent bool             `json:"consistent"`
	Potentials map[string]int64 `json:"potentials,omitempty"`
	Nogood     []string         `json:"nogood,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <network.yaml>",
		Short: "Check consistency and print a feasible schedule",
		Long: `Propagate the network. A consistent network prints one feasible
time per timepoint (its potential); an inconsistent one prints the negative
cycle of constraints that explains the conflict and exits with status 1.`,
		Args:         exactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	s, err := openSession(opts, path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	res := CheckResult{Consistent: true}
	perr := s.g.FullPropagate()
	switch {
	case perr == nil:
		res.Potentials = make(map[string]int64, len(s.net.Timepoints))
		for _, name := range s.idx.Names() {
			id, _ := s.idx.Node(name)
			p, err := s.g.Potential(id)
			if err != nil {
				return err
			}
			res.Potentials[name] = int64(p)
		}
	case errors.Is(perr, distgraph.ErrInconsistent):
		res.Consistent = false
		for _, id := range s.g.Nogood() {
			e, err := s.g.Edge(id)
			if err != nil {
				return err
			}
			res.Nogood = append(res.Nogood, s.edgeLine(e.From, e.To, e.Length))
		}
	default:
		return perr
	}

	if opts.Format == "json" {
		if err := writeJSON(out, res); err != nil {
			return err
		}
	} else if res.Consistent {
		fmt.Fprintln(out, "consistent")
		for _, name := range s.idx.Names() {
			fmt.Fprintf(out, "  %s %d\n", name, res.Potentials[name])
		}
	} else {
		fmt.Fprintln(out, "inconsistent; negative cycle:")
		for _, line := range res.Nogood {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}

	if err := s.writeMetrics(out); err != nil {
		return err
	}
	if !res.Consistent {
		return failure("network is inconsistent", perr)
	}

	return nil
}

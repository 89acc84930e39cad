package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <network.yaml>",
		Short: "Print the distance graph edge by edge",
		Long: `Print the distance graph built from the network: a legend mapping node
indexes to timepoint names, then one "from to length" line per edge.`,
		Args:         exactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range s.idx.Names() {
				id, _ := s.idx.Node(name)
				fmt.Fprintf(out, "# %d %s\n", id.Index(), name)
			}
			fmt.Fprint(out, s.g.String())

			return s.writeMetrics(out)
		},
	}

	return cmd
}

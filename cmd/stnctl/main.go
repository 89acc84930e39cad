// Command stnctl checks, queries and dispatches simple temporal networks
// described in YAML.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/stnet/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

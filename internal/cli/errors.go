package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// Process exit statuses of stnctl.
const (
	ExitSuccess      = 0 // The command ran and the network is consistent
	ExitFailure      = 1 // The network is inconsistent or the dispatch filter failed
	ExitCommandError = 2 // Bad arguments or flags, unreadable or invalid network file
)

// ExitError tags an error with the status stnctl exits with.
type ExitError struct {
	Code int
	Op   string // what the command was doing
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Op
	}

	return e.Op + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// commandError reports a problem with the invocation or its input file.
func commandError(op string, err error) error {
	return &ExitError{Code: ExitCommandError, Op: op, Err: err}
}

// failure reports a well-formed network the command could not satisfy.
func failure(op string, err error) error {
	return &ExitError{Code: ExitFailure, Op: op, Err: err}
}

// usageError maps cobra's own flag and argument errors to ExitCommandError.
// It is installed as the root's flag error func and inherited by every
// subcommand.
func usageError(cmd *cobra.Command, err error) error {
	return commandError(cmd.CommandPath(), err)
}

// exactArgs is cobra.ExactArgs with its error mapped by usageError.
func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

// ExitCode returns the status for err: ExitSuccess for nil, the tagged code
// for an ExitError anywhere in the chain, ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// Package cli wires the command line onto the tree renderer.
package cli

import (
	"errors"
	"fmt"
	"io"

	"dtree/internal/fs/tree"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	ExitOK       = 0
	ExitFatal    = 1
	ExitUsage    = 2
	DefaultPath  = "."
	commandName  = "dtree"
	commandShort = "A directory tree viewer"
)

type options struct {
	showFiles bool
}

// usageError marks argument and flag mistakes, as opposed to failures of
// the requested path.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func bindFlags(flags *pflag.FlagSet, o *options) {
	flags.BoolVarP(&o.showFiles, "files", "f", false, "Include files in the tree view")
}

// NewCommand returns the root command writing the tree to stdout.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	o := &options{}

	command := &cobra.Command{
		Use:   commandName + " [PATH]",
		Short: commandShort,
		Long:  commandShort + ".\n\nPATH is the directory to display and defaults to the current directory.",
		Args: func(cmd *cobra.Command, args []string) error {
			if e := cobra.MaximumNArgs(1)(cmd, args); e != nil {
				return &usageError{err: e}
			}

			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			if e := tree.Validate(path); e != nil {
				return e
			}

			renderer := tree.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), tree.WithFiles(o.showFiles))
			renderer.RenderRoot(path)

			return nil
		},
	}

	command.SetOut(stdout)
	command.SetErr(stderr)
	command.SetFlagErrorFunc(func(cmd *cobra.Command, e error) error {
		return &usageError{err: e}
	})
	command.CompletionOptions.DisableDefaultCmd = true

	bindFlags(command.Flags(), o)

	return command
}

// Execute runs the command with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	command := NewCommand(stdout, stderr)
	command.SetArgs(args)

	e := command.Execute()
	if e == nil {
		return ExitOK
	}

	fmt.Fprintf(stderr, "Error: %s\n", e.Error())

	var usage *usageError
	if errors.As(e, &usage) {
		return ExitUsage
	}

	return ExitFatal
}

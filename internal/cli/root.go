// Package cli provides the Cobra command tree for the versionstring generator.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/mhekkel/versionstring/internal/config"
)

// newRootCmd builds the top-level Cobra command.
// Callers must set stdout/stderr via cmd.SetOut / cmd.SetErr before Execute.
func newRootCmd() *cobra.Command {
	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	// INVARIANT: Cobra only executes the innermost PersistentPreRunE in the
	// command chain. If a future subcommand defines its own PersistentPreRunE,
	// the root hook will NOT run and d will be zero-valued. Do not add
	// PersistentPreRunE to any subcommand without also re-calling buildDeps.
	var d deps

	cmd := &cobra.Command{
		Use:   "versionstring",
		Short: "Stamp binaries with git-derived build provenance",
		Long: `versionstring derives a version descriptor from git history and writes a
generated Go file that registers the descriptor into a process-wide registry
before main runs. Run it once per build per component; an application and every
library it links each get their own descriptor, and the application prints the
collected chain with its --version flag.

The build number counts commits since the nearest reachable annotated tag
(default "build"). Lightweight tags of the same name are ignored.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := buildDeps(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d = *resolved
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newGenerateCmd(&d),
		newShowCmd(&d),
		newVersionCmd(&d),
	)

	return cmd
}

// Execute builds the root command and runs it with the given arguments.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

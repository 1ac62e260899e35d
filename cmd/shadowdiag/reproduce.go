// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"shadowdiag/internal/execrun"
	"shadowdiag/internal/issue"
	"shadowdiag/internal/repro"

	"github.com/spf13/cobra"
)

// reproduceCmd demonstrates the shadowing failure in a throwaway uv project.
var reproduceCmd = &cobra.Command{
	Use:   "reproduce",
	Short: "Demonstrate module shadowing in a throwaway uv project",
	Long: `Builds a temporary uv project, installs the target package, and shows
that a local file or directory with the package's import name breaks the
import while it exists and that removing it restores the import exactly.

Setup failures (uv missing, project init, dependency install) exit 1;
probe failures during the run are the demonstration itself and do not.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReproduce(cmd)
	},
}

func init() {
	reproduceCmd.Flags().BoolVar(&keepFlag, "keep", false, "keep the temporary reproduction project on disk")
}

// runReproduce resolves the tool configuration and runs the reproduction.
// Shared by the reproduce subcommand and the bare root invocation.
func runReproduce(cmd *cobra.Command) error {
	pkg, err := targetPackage()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	uvArgv, err := cfg.ResolveUvArgv(uvFlag)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	proc := &repro.Procedure{
		Runner:  execrun.NewExecRunner(),
		Uv:      uvArgv,
		Package: pkg,
		Keep:    keepFlag || cfg.KeepTemp,
		Out:     cmd.OutOrStdout(),
	}

	if _, err := proc.Run(cmd.Context()); err != nil {
		renderSetupError(cmd.ErrOrStderr(), err)
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// setupIssueId maps a setup failure to the catalog entry shown to the user.
// A binary that could not be started at all points at uv itself; any other
// failed setup command is a project setup problem.
func setupIssueId(err error) issue.Id {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return issue.UvNotFoundId
	}
	return issue.ProjectSetupFailedId
}

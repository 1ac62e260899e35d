// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"shadowdiag/internal/execrun"
	"shadowdiag/internal/issue"
	"shadowdiag/internal/pyprobe"
	"shadowdiag/internal/scan"

	"github.com/spf13/cobra"
)

// diagnoseCmd inspects an existing environment for shadow artifacts.
var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check the current environment for module shadowing",
	Long: `Scans the working directory and the interpreter's module search path
for files or directories that shadow the target package, then attempts
the import in a child interpreter to confirm.

The exit status is the number of issues found (0 means a clean
environment), so the command can gate CI steps or scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiagnose(cmd)
	},
}

// runDiagnose resolves the tool configuration and runs the diagnosis.
// Shared by the diagnose subcommand and the root --diagnose flag.
func runDiagnose(cmd *cobra.Command) error {
	pkg, err := targetPackage()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	pythonArgv, err := cfg.ResolvePythonArgv(pythonFlag)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	workDir, err := os.Getwd()
	if err != nil {
		wrapped := issue.WrapWithOperation(err, "determine working directory")
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(wrapped, verbose))
		return &ExitError{Code: 1, Err: wrapped}
	}

	prober := pyprobe.NewProber(execrun.NewExecRunner(), pythonArgv)
	report := scan.Run(cmd.Context(), prober, pkg, workDir)

	renderReport(cmd.OutOrStdout(), report)

	if count := report.IssueCount(); count > 0 {
		return &ExitError{Code: execrun.ClampCount(count)}
	}
	return nil
}
